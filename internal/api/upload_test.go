package api_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamwave/streamwave-go/internal/api"
	"github.com/streamwave/streamwave-go/internal/apitest"
)

func TestUpload_SendsMultipartForm(t *testing.T) {
	backend := apitest.NewServer(t)

	var fields map[string]string
	var videoBytes []byte
	var thumbName string
	backend.Handle("POST /api/creator/videos", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		fields = map[string]string{}
		for key := range r.MultipartForm.Value {
			fields[key] = r.FormValue(key)
		}

		video, header, err := r.FormFile("video")
		require.NoError(t, err)
		defer video.Close()
		assert.Equal(t, "clip.mp4", header.Filename)
		videoBytes, err = io.ReadAll(video)
		require.NoError(t, err)

		if _, header, err := r.FormFile("thumbnail"); err == nil {
			thumbName = header.Filename
		}

		apitest.WriteJSON(w, http.StatusCreated, map[string]any{"_id": "v1", "title": fields["title"]})
	})

	client, err := api.NewClient(api.Options{BaseURL: backend.URL})
	require.NoError(t, err)

	var sent, total int64
	var out struct {
		ID    string `json:"_id"`
		Title string `json:"title"`
	}
	err = client.Upload(context.Background(), "/api/creator/videos", api.UploadRequest{
		Fields: map[string]string{
			"title":       "My clip",
			"description": "a description",
			"genre":       "",
		},
		VideoName:     "clip.mp4",
		Video:         bytes.NewReader([]byte("fake video bytes")),
		ThumbnailName: "thumb.png",
		Thumbnail:     strings.NewReader("fake png"),
		Progress: func(s, tot int64) {
			sent, total = s, tot
		},
	}, &out)
	require.NoError(t, err)

	assert.Equal(t, "v1", out.ID)
	assert.Equal(t, "My clip", out.Title)
	assert.Equal(t, "My clip", fields["title"])
	assert.Equal(t, "a description", fields["description"])
	// Empty fields are omitted from the form entirely.
	_, present := fields["genre"]
	assert.False(t, present)

	assert.Equal(t, []byte("fake video bytes"), videoBytes)
	assert.Equal(t, "thumb.png", thumbName)

	assert.Positive(t, total)
	assert.Equal(t, total, sent)

	last, ok := backend.LastRequest()
	require.True(t, ok)
	assert.Contains(t, last.ContentType, "multipart/form-data")
}

func TestUpload_RequiresVideoReader(t *testing.T) {
	client, err := api.NewClient(api.Options{BaseURL: "http://localhost:5000"})
	require.NoError(t, err)

	err = client.Upload(context.Background(), "/api/creator/videos", api.UploadRequest{}, nil)
	require.Error(t, err)
	assert.Equal(t, api.KindRequestSetup, api.KindOf(err))
}
