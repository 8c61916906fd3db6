package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
)

// UploadRequest describes a multipart video upload. Fields mirror the
// upload form: plain text fields plus the video file and an optional
// thumbnail. Empty fields are omitted from the form.
type UploadRequest struct {
	Fields map[string]string

	VideoName string
	Video     io.Reader

	ThumbnailName string
	Thumbnail     io.Reader

	// Progress, when set, receives the number of body bytes sent so far
	// and the total body size. Called from the upload goroutine.
	Progress func(sent, total int64)
}

// Upload sends a multipart form to path and decodes the response into out.
// The form is buffered before sending so the total size is known to the
// progress callback and to Content-Length.
func (c *Client) Upload(ctx context.Context, path string, req UploadRequest, out any) error {
	if req.Video == nil {
		return setupError("video file is required", nil)
	}

	body, contentType, err := buildUploadForm(req)
	if err != nil {
		return setupError("build multipart form", err)
	}

	var reader io.Reader = body
	if req.Progress != nil {
		reader = &progressReader{r: body, total: int64(body.Len()), report: req.Progress}
	}

	headers := http.Header{}
	headers.Set(headerContentType, contentType)
	return c.dispatch(ctx, http.MethodPost, path, reader, headers, out)
}

func buildUploadForm(req UploadRequest) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	form := multipart.NewWriter(buf)

	for key, value := range req.Fields {
		if value == "" {
			continue
		}
		if err := form.WriteField(key, value); err != nil {
			return nil, "", err
		}
	}

	part, err := form.CreateFormFile("video", req.VideoName)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, req.Video); err != nil {
		return nil, "", err
	}

	if req.Thumbnail != nil {
		thumb, err := form.CreateFormFile("thumbnail", req.ThumbnailName)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(thumb, req.Thumbnail); err != nil {
			return nil, "", err
		}
	}

	if err := form.Close(); err != nil {
		return nil, "", err
	}
	return buf, form.FormDataContentType(), nil
}

// progressReader reports cumulative bytes read from the underlying form
// buffer as the transport consumes it.
type progressReader struct {
	r      io.Reader
	sent   int64
	total  int64
	report func(sent, total int64)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		p.report(p.sent, p.total)
	}
	return n, err
}
