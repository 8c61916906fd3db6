package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndpointPaths(t *testing.T) {
	assert.Equal(t, "/api/auth/login", Endpoints.Auth.Login())
	assert.Equal(t, "/api/auth/register", Endpoints.Auth.Register())
	assert.Equal(t, "/api/auth/users", Endpoints.Auth.Users())
	assert.Equal(t, "/api/auth/users/u1", Endpoints.Auth.DeleteUser("u1"))
	assert.Equal(t, "/api/auth/users/u1/toggle-status", Endpoints.Auth.ToggleUserStatus("u1"))
	assert.Equal(t, "/api/auth/platform-stats", Endpoints.Auth.PlatformStats())

	assert.Equal(t, "/api/videos", Endpoints.Videos.List())
	assert.Equal(t, "/api/videos/upload", Endpoints.Videos.Upload())
	assert.Equal(t, "/api/videos/v1", Endpoints.Videos.Details("v1"))
	assert.Equal(t, "/api/videos/v1/like", Endpoints.Videos.Like("v1"))
	assert.Equal(t, "/api/videos/v1", Endpoints.Videos.Delete("v1"))
	assert.Equal(t, "/api/videos/v1/stats", Endpoints.Videos.Stats("v1"))
	assert.Equal(t, "/api/videos/all-analytics", Endpoints.Videos.AllAnalytics())

	assert.Equal(t, "/api/creator/videos", Endpoints.Creator.Videos())
	assert.Equal(t, "/api/creator/videos/v1", Endpoints.Creator.Video("v1"))
	assert.Equal(t, "/api/creator/dashboard-stats", Endpoints.Creator.DashboardStats())
	assert.Equal(t, "/api/creator/videos/v1/analytics", Endpoints.Creator.Analytics("v1"))

	assert.Equal(t, "/api/comments", Endpoints.Comments.Add())
	assert.Equal(t, "/api/comments/v1", Endpoints.Comments.Get("v1"))

	assert.Equal(t, "/api/videos/liked", Endpoints.Consumer.LikedVideos())
}
