package app

// Package app holds the headless page controllers. Each controller
// fetches through the shared API client, shapes the response into a view
// model, and surfaces typed errors for the shell to present. Controllers
// never retry on their own; retrying is a user action.

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/streamwave/streamwave-go/internal/api"
	"github.com/streamwave/streamwave-go/internal/domain/model"
	"github.com/streamwave/streamwave-go/internal/session"
)

// ConsumerController backs the consumer screens: home feed, video
// details, likes, and comments.
type ConsumerController struct {
	client   *api.Client
	sessions *session.Store
	logger   *slog.Logger
}

// NewConsumerController constructs a consumer controller.
func NewConsumerController(client *api.Client, sessions *session.Store, logger *slog.Logger) *ConsumerController {
	return &ConsumerController{client: client, sessions: sessions, logger: logger}
}

// HomeParams filters the home feed.
type HomeParams struct {
	Page   int
	Limit  int
	Genre  string
	Search string
}

// HomeView is the rendered state of the home feed.
type HomeView struct {
	Videos     []model.Video
	Pagination model.Pagination
}

// Home loads a page of the video feed.
func (c *ConsumerController) Home(ctx context.Context, params HomeParams) (*HomeView, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Genre != "" {
		query.Set("genre", params.Genre)
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}

	var list model.VideoList
	if err := c.client.Get(ctx, api.Endpoints.Videos.List(), &list, api.RequestOptions{Query: query}); err != nil {
		return nil, err
	}
	return &HomeView{
		Videos:     list.Videos,
		Pagination: list.Pagination.OrDefaults(),
	}, nil
}

// VideoDetailsView is the rendered state of the video details screen.
type VideoDetailsView struct {
	Details model.VideoDetails
	// Liked reports whether the current user appears in the likes list.
	Liked bool
}

// VideoDetails loads a video with its comments. The details endpoint
// already embeds comments; the comments endpoint is fetched alongside to
// pick up any posted since the video document was last denormalized, and
// the fresher of the two wins.
func (c *ConsumerController) VideoDetails(ctx context.Context, videoID string) (*VideoDetailsView, error) {
	var details model.VideoDetails
	var comments []model.Comment

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.client.Get(gctx, api.Endpoints.Videos.Details(videoID), &details)
	})
	g.Go(func() error {
		return c.client.Get(gctx, api.Endpoints.Comments.Get(videoID), &comments)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(comments) > len(details.Comments) {
		details.Comments = comments
	}

	view := &VideoDetailsView{Details: details}
	if user, ok := c.sessions.CurrentUser(); ok {
		view.Liked = details.LikedBy(user.ID)
	}
	return view, nil
}

// ToggleLike flips the current user's like on a video. The backend's
// response is authoritative: callers must re-render from the returned
// state, not from the request they sent, since two rapid toggles may
// resolve out of order.
func (c *ConsumerController) ToggleLike(ctx context.Context, videoID string) (*model.LikeResult, error) {
	var result model.LikeResult
	if err := c.client.Post(ctx, api.Endpoints.Videos.Like(videoID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AddComment posts a comment and returns the refreshed comment list.
func (c *ConsumerController) AddComment(ctx context.Context, videoID, text string) ([]model.Comment, error) {
	user, ok := c.sessions.CurrentUser()
	if !ok {
		return nil, session.ErrNotAuthenticated
	}

	payload := map[string]string{
		"videoId": videoID,
		"userId":  user.ID,
		"text":    text,
	}
	if err := c.client.Post(ctx, api.Endpoints.Comments.Add(), payload, nil); err != nil {
		return nil, err
	}

	// Re-read rather than append locally so concurrent commenters show up.
	var details model.VideoDetails
	if err := c.client.Get(ctx, api.Endpoints.Videos.Details(videoID), &details); err != nil {
		return nil, err
	}
	return details.Comments, nil
}

// LikedVideos loads the videos the current user has liked.
func (c *ConsumerController) LikedVideos(ctx context.Context) ([]model.Video, error) {
	var list model.VideoList
	if err := c.client.Get(ctx, api.Endpoints.Consumer.LikedVideos(), &list); err != nil {
		return nil, err
	}
	return list.Videos, nil
}
