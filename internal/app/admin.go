package app

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/streamwave/streamwave-go/internal/api"
	domainauth "github.com/streamwave/streamwave-go/internal/domain/auth"
	"github.com/streamwave/streamwave-go/internal/domain/model"
)

// AdminController backs the admin screens: platform overview, user
// management, and video management.
type AdminController struct {
	client *api.Client
	logger *slog.Logger
}

// NewAdminController constructs an admin controller.
func NewAdminController(client *api.Client, logger *slog.Logger) *AdminController {
	return &AdminController{client: client, logger: logger}
}

// OverviewView is the rendered state of the admin dashboard.
type OverviewView struct {
	Stats  model.PlatformStats
	Recent []model.Video
}

// Overview loads the platform stats and the most recent uploads
// concurrently.
func (c *AdminController) Overview(ctx context.Context) (*OverviewView, error) {
	var stats model.PlatformStats
	var recent model.VideoList

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.client.Get(gctx, api.Endpoints.Auth.PlatformStats(), &stats)
	})
	g.Go(func() error {
		query := url.Values{
			"limit":  {"10"},
			"page":   {"1"},
			"sortBy": {"createdAt"},
			"order":  {"desc"},
		}
		return c.client.Get(gctx, api.Endpoints.Videos.List(), &recent, api.RequestOptions{Query: query})
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &OverviewView{Stats: stats, Recent: recent.Videos}, nil
}

// UsersParams filters the user listing.
type UsersParams struct {
	Page   int
	Limit  int
	Role   domainauth.Role
	Search string
}

// Users lists platform accounts.
func (c *AdminController) Users(ctx context.Context, params UsersParams) (*model.UserList, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Role != "" {
		query.Set("role", string(params.Role))
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}

	var list model.UserList
	if err := c.client.Get(ctx, api.Endpoints.Auth.Users(), &list, api.RequestOptions{Query: query}); err != nil {
		return nil, err
	}
	if list.CurrentPage == 0 {
		list.CurrentPage = 1
	}
	if list.TotalPages == 0 {
		list.TotalPages = 1
	}
	return &list, nil
}

// CreateUser registers an account on behalf of an admin. Reuses the
// registration endpoint, as the user management screen does.
type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateUser creates a platform account.
func (c *AdminController) CreateUser(ctx context.Context, in CreateUserInput) (*domainauth.UserRecord, error) {
	var record domainauth.UserRecord
	if err := c.client.Post(ctx, api.Endpoints.Auth.Register(), in, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteUser removes an account.
func (c *AdminController) DeleteUser(ctx context.Context, userID string) error {
	if err := c.client.Delete(ctx, api.Endpoints.Auth.DeleteUser(userID), nil); err != nil {
		return err
	}
	c.logger.Info("user deleted", slog.String("user_id", userID))
	return nil
}

// ToggleUserStatus flips an account between active and suspended.
func (c *AdminController) ToggleUserStatus(ctx context.Context, userID string) (*domainauth.UserRecord, error) {
	var record domainauth.UserRecord
	if err := c.client.Patch(ctx, api.Endpoints.Auth.ToggleUserStatus(userID), nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// VideosParams filters the video management listing.
type VideosParams struct {
	Page   int
	Limit  int
	Search string
}

// Videos lists the platform catalog for the management table.
func (c *AdminController) Videos(ctx context.Context, params VideosParams) (*model.VideoList, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}

	var list model.VideoList
	if err := c.client.Get(ctx, api.Endpoints.Videos.List(), &list, api.RequestOptions{Query: query}); err != nil {
		return nil, err
	}
	return &list, nil
}

// VideoStats loads the per-video stat card.
func (c *AdminController) VideoStats(ctx context.Context, videoID string) (*model.VideoStats, error) {
	var stats model.VideoStats
	if err := c.client.Get(ctx, api.Endpoints.Videos.Stats(videoID), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// DeleteVideo removes a video from the catalog.
func (c *AdminController) DeleteVideo(ctx context.Context, videoID string) error {
	if err := c.client.Delete(ctx, api.Endpoints.Videos.Delete(videoID), nil); err != nil {
		return err
	}
	c.logger.Info("video deleted", slog.String("video_id", videoID))
	return nil
}

// AllAnalytics loads the cross-catalog analytics table.
func (c *AdminController) AllAnalytics(ctx context.Context) ([]model.VideoAnalytics, error) {
	var rows []model.VideoAnalytics
	if err := c.client.Get(ctx, api.Endpoints.Videos.AllAnalytics(), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
