package app

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/streamwave/streamwave-go/internal/api"
	"github.com/streamwave/streamwave-go/internal/domain/model"
)

// Upload size ceilings, matching the limits the upload form enforces
// before sending anything.
const (
	MaxVideoBytes     = 500 << 20
	MaxThumbnailBytes = 5 << 20
)

// CreatorController backs the creator studio screens: dashboard, video
// management, upload, and analytics.
type CreatorController struct {
	client *api.Client
	logger *slog.Logger
}

// NewCreatorController constructs a creator controller.
func NewCreatorController(client *api.Client, logger *slog.Logger) *CreatorController {
	return &CreatorController{client: client, logger: logger}
}

// DashboardView is the rendered state of the creator dashboard.
type DashboardView struct {
	Stats  model.CreatorDashboardStats
	Recent []model.Video
}

// Dashboard loads the aggregate stats and the five most recent uploads.
// The two fetches are independent and run concurrently.
func (c *CreatorController) Dashboard(ctx context.Context) (*DashboardView, error) {
	var stats model.CreatorDashboardStats
	var recent model.VideoList

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.client.Get(gctx, api.Endpoints.Creator.DashboardStats(), &stats)
	})
	g.Go(func() error {
		query := url.Values{"page": {"1"}, "limit": {"5"}}
		return c.client.Get(gctx, api.Endpoints.Creator.Videos(), &recent, api.RequestOptions{Query: query})
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DashboardView{Stats: stats, Recent: recent.Videos}, nil
}

// MyVideosParams filters the creator's video listing.
type MyVideosParams struct {
	Page   int
	Search string
}

// MyVideosView is the rendered state of the my-videos screen.
type MyVideosView struct {
	Videos     []model.Video
	TotalPages int
}

// MyVideos lists the creator's own uploads, ten per page.
func (c *CreatorController) MyVideos(ctx context.Context, params MyVideosParams) (*MyVideosView, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", "10")
	if params.Search != "" {
		query.Set("search", params.Search)
	}

	var list model.VideoList
	if err := c.client.Get(ctx, api.Endpoints.Creator.Videos(), &list, api.RequestOptions{Query: query}); err != nil {
		return nil, err
	}

	totalPages := list.TotalPages
	if totalPages == 0 {
		totalPages = list.Pagination.OrDefaults().TotalPages
	}
	return &MyVideosView{Videos: list.Videos, TotalPages: totalPages}, nil
}

// UploadParams describes a new upload. Title and the video file are
// required; everything else is optional.
type UploadParams struct {
	Title         string
	Description   string
	Genre         string
	Metadata      string
	VideoPath     string
	ThumbnailPath string
	// Progress receives (sent, total) body bytes during the upload.
	Progress func(sent, total int64)
}

// Upload validates the form client-side and sends the multipart request.
func (c *CreatorController) Upload(ctx context.Context, params UploadParams) (*model.Video, error) {
	if params.Title == "" || params.VideoPath == "" {
		return nil, &api.Error{Kind: api.KindRequestSetup, Message: "title and video file are required"}
	}

	video, err := openBounded(params.VideoPath, MaxVideoBytes, "video")
	if err != nil {
		return nil, err
	}
	defer video.Close()

	req := api.UploadRequest{
		Fields: map[string]string{
			"title":       params.Title,
			"description": params.Description,
			"genre":       params.Genre,
			"metadata":    params.Metadata,
		},
		VideoName: filepath.Base(params.VideoPath),
		Video:     video,
		Progress:  params.Progress,
	}

	if params.ThumbnailPath != "" {
		thumb, err := openBounded(params.ThumbnailPath, MaxThumbnailBytes, "thumbnail")
		if err != nil {
			return nil, err
		}
		defer thumb.Close()
		req.ThumbnailName = filepath.Base(params.ThumbnailPath)
		req.Thumbnail = thumb
	}

	var uploaded model.Video
	if err := c.client.Upload(ctx, api.Endpoints.Creator.Videos(), req, &uploaded); err != nil {
		return nil, err
	}
	c.logger.Info("video uploaded", slog.String("video_id", uploaded.ID), slog.String("title", uploaded.Title))
	return &uploaded, nil
}

// EditParams carries the editable video fields.
type EditParams struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	Metadata    string `json:"metadata"`
}

// Edit updates a video's metadata.
func (c *CreatorController) Edit(ctx context.Context, videoID string, params EditParams) error {
	return c.client.Put(ctx, api.Endpoints.Creator.Video(videoID), params, nil)
}

// Delete removes one of the creator's videos.
func (c *CreatorController) Delete(ctx context.Context, videoID string) error {
	return c.client.Delete(ctx, api.Endpoints.Creator.Video(videoID), nil)
}

// Analytics loads per-video analytics for the analytics modal.
func (c *CreatorController) Analytics(ctx context.Context, videoID string) (*model.VideoAnalytics, error) {
	var analytics model.VideoAnalytics
	if err := c.client.Get(ctx, api.Endpoints.Creator.Analytics(videoID), &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

// openBounded opens a local file for upload, rejecting files over the
// given ceiling before any bytes go on the wire.
func openBounded(path string, limit int64, label string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &api.Error{Kind: api.KindRequestSetup, Message: "open " + label + " file", Cause: err}
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, &api.Error{Kind: api.KindRequestSetup, Message: "stat " + label + " file", Cause: err}
	}
	if info.Size() > limit {
		_ = f.Close()
		return nil, &api.Error{Kind: api.KindRequestSetup, Message: label + " file exceeds size limit"}
	}
	return f, nil
}
