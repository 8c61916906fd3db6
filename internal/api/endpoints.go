package api

// Endpoint registry: the single place logical operations map to REST
// paths. Parameterized entries are functions taking the entity id so the
// call sites never concatenate URLs by hand. Pure data, no state.

// AuthEndpoints groups the authentication and admin user-management paths.
type AuthEndpoints struct{}

func (AuthEndpoints) Login() string    { return "/api/auth/login" }
func (AuthEndpoints) Register() string { return "/api/auth/register" }
func (AuthEndpoints) Users() string    { return "/api/auth/users" }
func (AuthEndpoints) DeleteUser(userID string) string {
	return "/api/auth/users/" + userID
}
func (AuthEndpoints) ToggleUserStatus(userID string) string {
	return "/api/auth/users/" + userID + "/toggle-status"
}
func (AuthEndpoints) PlatformStats() string { return "/api/auth/platform-stats" }

// VideoEndpoints groups the shared video catalog paths.
type VideoEndpoints struct{}

func (VideoEndpoints) List() string                  { return "/api/videos" }
func (VideoEndpoints) Upload() string                { return "/api/videos/upload" }
func (VideoEndpoints) Details(videoID string) string { return "/api/videos/" + videoID }
func (VideoEndpoints) Like(videoID string) string    { return "/api/videos/" + videoID + "/like" }
func (VideoEndpoints) Delete(videoID string) string  { return "/api/videos/" + videoID }
func (VideoEndpoints) Stats(videoID string) string   { return "/api/videos/" + videoID + "/stats" }
func (VideoEndpoints) AllAnalytics() string          { return "/api/videos/all-analytics" }

// CreatorEndpoints groups the creator studio paths.
type CreatorEndpoints struct{}

func (CreatorEndpoints) Videos() string               { return "/api/creator/videos" }
func (CreatorEndpoints) Video(videoID string) string  { return "/api/creator/videos/" + videoID }
func (CreatorEndpoints) DashboardStats() string       { return "/api/creator/dashboard-stats" }
func (CreatorEndpoints) Analytics(videoID string) string {
	return "/api/creator/videos/" + videoID + "/analytics"
}

// CommentEndpoints groups the comment paths.
type CommentEndpoints struct{}

func (CommentEndpoints) Add() string                  { return "/api/comments" }
func (CommentEndpoints) Get(videoID string) string    { return "/api/comments/" + videoID }

// ConsumerEndpoints groups consumer-only paths.
type ConsumerEndpoints struct{}

func (ConsumerEndpoints) LikedVideos() string { return "/api/videos/liked" }

// Endpoints is the registry handed to controllers.
var Endpoints = struct {
	Auth     AuthEndpoints
	Videos   VideoEndpoints
	Creator  CreatorEndpoints
	Comments CommentEndpoints
	Consumer ConsumerEndpoints
}{}
