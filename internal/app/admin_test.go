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
)

func adminUser() domainauth.UserSummary {
	return domainauth.UserSummary{ID: "u3", Name: "Cas", Email: "cas@example.com", Role: domainauth.RoleAdmin}
}

func TestAdminOverview(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, adminUser(), "t3")

	h.backend.HandleJSON("GET /api/auth/platform-stats", http.StatusOK, map[string]any{
		"content": map[string]any{"totalVideos": 42, "totalComments": 10, "totalLikes": 99},
		"users":   map[string]any{"total": 7, "creators": 2, "consumers": 4},
	})
	var recentQuery string
	h.backend.Handle("GET /api/videos", func(w http.ResponseWriter, r *http.Request) {
		recentQuery = r.URL.RawQuery
		apitest.WriteJSON(w, http.StatusOK, map[string]any{
			"videos": []map[string]any{{"_id": "v1"}},
		})
	})

	ctrl := app.NewAdminController(h.client, discardLogger())
	view, err := ctrl.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 42, view.Stats.Content.TotalVideos)
	assert.Equal(t, 7, view.Stats.Users.Total)
	assert.Len(t, view.Recent, 1)
	assert.Contains(t, recentQuery, "sortBy=createdAt")
	assert.Contains(t, recentQuery, "order=desc")
}

func TestAdminUsers_ForwardsFiltersAndDefaultsPaging(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, adminUser(), "t3")

	var gotQuery string
	h.backend.Handle("GET /api/auth/users", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		apitest.WriteJSON(w, http.StatusOK, map[string]any{
			"users": []map[string]any{
				{"_id": "u1", "name": "Ann", "role": "consumer", "active": true},
			},
			"total": 1,
		})
	})

	ctrl := app.NewAdminController(h.client, discardLogger())
	list, err := ctrl.Users(context.Background(), app.UsersParams{Role: domainauth.RoleConsumer, Search: "ann"})
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "role=consumer")
	assert.Contains(t, gotQuery, "search=ann")
	require.Len(t, list.Users, 1)
	assert.True(t, list.Users[0].Active)
	// Backend omitted paging fields; the controller fills sane defaults.
	assert.Equal(t, 1, list.CurrentPage)
	assert.Equal(t, 1, list.TotalPages)
}

func TestAdminCreateUser(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, adminUser(), "t3")

	var posted map[string]string
	h.backend.Handle("POST /api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, decodeJSON(r, &posted))
		apitest.WriteJSON(w, http.StatusCreated, map[string]any{
			"_id": "u9", "name": posted["name"], "email": posted["email"], "role": posted["role"], "active": true,
		})
	})

	ctrl := app.NewAdminController(h.client, discardLogger())
	record, err := ctrl.CreateUser(context.Background(), app.CreateUserInput{
		Name: "Dee", Email: "dee@example.com", Password: "pw", Role: "creator",
	})
	require.NoError(t, err)

	assert.Equal(t, "u9", record.ID)
	assert.Equal(t, domainauth.RoleCreator, record.Role)
	assert.Equal(t, "creator", posted["role"])
}

func TestAdminToggleUserStatus(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, adminUser(), "t3")

	h.backend.HandleJSON("PATCH /api/auth/users/u1/toggle-status", http.StatusOK, map[string]any{
		"_id": "u1", "active": false,
	})

	ctrl := app.NewAdminController(h.client, discardLogger())
	record, err := ctrl.ToggleUserStatus(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, record.Active)

	last, ok := h.backend.LastRequest()
	require.True(t, ok)
	assert.Equal(t, http.MethodPatch, last.Method)
}

func TestAdminDeleteUser_Forbidden(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, adminUser(), "t3")

	h.backend.HandleJSON("DELETE /api/auth/users/u1", http.StatusForbidden, map[string]any{
		"message": "Cannot delete an admin account",
	})

	ctrl := app.NewAdminController(h.client, discardLogger())
	err := ctrl.DeleteUser(context.Background(), "u1")
	require.Error(t, err)
	assert.Equal(t, api.KindForbidden, api.KindOf(err))

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Cannot delete an admin account", apiErr.BackendMessage())
}

func TestAdminVideosAndStats(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, adminUser(), "t3")

	h.backend.HandleJSON("GET /api/videos", http.StatusOK, map[string]any{
		"videos": []map[string]any{{"_id": "v1"}, {"_id": "v2"}},
		"pagination": map[string]any{
			"currentPage": 1, "totalPages": 1, "totalVideos": 2, "limit": 10,
		},
	})
	h.backend.HandleJSON("GET /api/videos/v1/stats", http.StatusOK, map[string]any{
		"video": map[string]any{"_id": "v1"}, "views": 50, "likes": 5, "commentCount": 3,
	})

	ctrl := app.NewAdminController(h.client, discardLogger())

	list, err := ctrl.Videos(context.Background(), app.VideosParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, list.Videos, 2)
	assert.Equal(t, 2, list.Pagination.TotalVideos)

	stats, err := ctrl.VideoStats(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, 50, stats.Views)
	assert.Equal(t, 3, stats.CommentCount)
}

func TestAdminDeleteVideoAndAllAnalytics(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, adminUser(), "t3")

	h.backend.HandleJSON("DELETE /api/videos/v1", http.StatusOK, map[string]any{"message": "deleted"})
	h.backend.HandleJSON("GET /api/videos/all-analytics", http.StatusOK, []map[string]any{
		{"videoId": "v1", "views": 10},
		{"videoId": "v2", "views": 20},
	})

	ctrl := app.NewAdminController(h.client, discardLogger())

	require.NoError(t, ctrl.DeleteVideo(context.Background(), "v1"))

	rows, err := ctrl.AllAnalytics(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 20, rows[1].Views)
}
