package app_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamwave/streamwave-go/internal/api"
	"github.com/streamwave/streamwave-go/internal/apitest"
	"github.com/streamwave/streamwave-go/internal/app"
	domainauth "github.com/streamwave/streamwave-go/internal/domain/auth"
	"github.com/streamwave/streamwave-go/internal/session"
)

func consumerUser() domainauth.UserSummary {
	return domainauth.UserSummary{ID: "u1", Name: "Ann", Email: "ann@example.com", Role: domainauth.RoleConsumer}
}

func TestConsumerHome_PassesFiltersAndDefaultsPagination(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, consumerUser(), "t1")

	var gotQuery string
	h.backend.Handle("GET /api/videos", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		// Short list: backend omits the pagination envelope.
		apitest.WriteJSON(w, http.StatusOK, map[string]any{
			"videos": []map[string]any{{"_id": "v1", "title": "First"}},
		})
	})

	ctrl := app.NewConsumerController(h.client, h.sessions, discardLogger())
	view, err := ctrl.Home(context.Background(), app.HomeParams{Page: 2, Genre: "music", Search: "live"})
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "page=2")
	assert.Contains(t, gotQuery, "genre=music")
	assert.Contains(t, gotQuery, "search=live")
	assert.NotContains(t, gotQuery, "limit=")

	require.Len(t, view.Videos, 1)
	assert.Equal(t, "v1", view.Videos[0].ID)
	assert.Equal(t, 1, view.Pagination.CurrentPage)
	assert.Equal(t, 10, view.Pagination.Limit)
}

func TestConsumerVideoDetails_MergesFresherComments(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, consumerUser(), "t1")

	h.backend.HandleJSON("GET /api/videos/v1", http.StatusOK, map[string]any{
		"video":      map[string]any{"_id": "v1", "title": "First"},
		"comments":   []map[string]any{{"_id": "c1", "text": "old"}},
		"likes":      []string{"u1", "u9"},
		"totalLikes": 2,
	})
	h.backend.HandleJSON("GET /api/comments/v1", http.StatusOK, []map[string]any{
		{"_id": "c1", "text": "old"},
		{"_id": "c2", "text": "new"},
	})

	ctrl := app.NewConsumerController(h.client, h.sessions, discardLogger())
	view, err := ctrl.VideoDetails(context.Background(), "v1")
	require.NoError(t, err)

	// The longer comment list from the dedicated endpoint wins.
	require.Len(t, view.Details.Comments, 2)
	assert.Equal(t, "c2", view.Details.Comments[1].ID)
	assert.True(t, view.Liked)
	assert.Equal(t, 2, view.Details.TotalLikes)
}

func TestConsumerVideoDetails_NotFound(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, consumerUser(), "t1")

	h.backend.HandleJSON("GET /api/videos/missing", http.StatusNotFound, map[string]any{"message": "Video not found"})
	h.backend.HandleJSON("GET /api/comments/missing", http.StatusOK, []map[string]any{})

	ctrl := app.NewConsumerController(h.client, h.sessions, discardLogger())
	_, err := ctrl.VideoDetails(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, api.KindNotFound, api.KindOf(err))
}

func TestConsumerToggleLike_ResponseIsAuthoritative(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, consumerUser(), "t1")

	h.backend.HandleJSON("POST /api/videos/v1/like", http.StatusOK, map[string]any{
		"likes":      []string{"u9"},
		"totalLikes": 1,
	})

	ctrl := app.NewConsumerController(h.client, h.sessions, discardLogger())
	result, err := ctrl.ToggleLike(context.Background(), "v1")
	require.NoError(t, err)

	// u1 toggled but the backend resolved the race the other way; the
	// returned state is what renders.
	assert.Equal(t, []string{"u9"}, result.Likes)
	assert.Equal(t, 1, result.TotalLikes)
}

func TestConsumerAddComment_PostsThenRefreshes(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, consumerUser(), "t1")

	var posted map[string]string
	h.backend.Handle("POST /api/comments", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, decodeJSON(r, &posted))
		apitest.WriteJSON(w, http.StatusCreated, map[string]any{"_id": "c2"})
	})
	h.backend.HandleJSON("GET /api/videos/v1", http.StatusOK, map[string]any{
		"video": map[string]any{"_id": "v1"},
		"comments": []map[string]any{
			{"_id": "c1", "text": "first"},
			{"_id": "c2", "text": "mine"},
		},
	})

	ctrl := app.NewConsumerController(h.client, h.sessions, discardLogger())
	comments, err := ctrl.AddComment(context.Background(), "v1", "mine")
	require.NoError(t, err)

	assert.Equal(t, "v1", posted["videoId"])
	assert.Equal(t, "u1", posted["userId"])
	assert.Equal(t, "mine", posted["text"])
	require.Len(t, comments, 2)
	assert.Equal(t, "mine", comments[1].Text)
}

func TestConsumerAddComment_RequiresSession(t *testing.T) {
	h := newHarness(t)

	ctrl := app.NewConsumerController(h.client, h.sessions, discardLogger())
	_, err := ctrl.AddComment(context.Background(), "v1", "hi")
	require.ErrorIs(t, err, session.ErrNotAuthenticated)

	// Nothing went on the wire.
	assert.Empty(t, h.backend.Requests())
}

func TestConsumerLikedVideos(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, consumerUser(), "t1")

	h.backend.HandleJSON("GET /api/videos/liked", http.StatusOK, map[string]any{
		"videos": []map[string]any{{"_id": "v1"}, {"_id": "v2"}},
	})

	ctrl := app.NewConsumerController(h.client, h.sessions, discardLogger())
	videos, err := ctrl.LikedVideos(context.Background())
	require.NoError(t, err)
	assert.Len(t, videos, 2)

	last, ok := h.backend.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "Bearer t1", last.Authorization)
}
