// Package model contains the StreamWave content entities as the backend
// returns them. The client owns no invariants over these shapes; optional
// fields that the backend may omit are pointers or carry explicit defaults
// so page controllers never have to probe for missing keys.
package model

import (
	"time"

	"github.com/streamwave/streamwave-go/internal/domain/auth"
)

// Video is a single uploaded video as listed by /api/videos and
// /api/creator/videos.
type Video struct {
	ID           string    `json:"_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Genre        string    `json:"genre"`
	Metadata     string    `json:"metadata"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Creator      string    `json:"creator"`
	CreatorName  string    `json:"creatorName"`
	Views        int       `json:"views"`
	Likes        int       `json:"likes"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Comment is a single comment on a video.
type Comment struct {
	ID        string    `json:"_id"`
	VideoID   string    `json:"videoId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Pagination is the optional paging envelope on list responses.
// The backend omits it on short lists; use the Or* accessors.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalVideos int `json:"totalVideos"`
	Limit       int `json:"limit"`
}

const defaultPageLimit = 10

// OrDefaults returns the pagination with zero fields replaced by the
// documented defaults (page 1, one page, limit 10).
func (p *Pagination) OrDefaults() Pagination {
	out := Pagination{CurrentPage: 1, TotalPages: 1, TotalVideos: 0, Limit: defaultPageLimit}
	if p == nil {
		return out
	}
	if p.CurrentPage > 0 {
		out.CurrentPage = p.CurrentPage
	}
	if p.TotalPages > 0 {
		out.TotalPages = p.TotalPages
	}
	if p.TotalVideos > 0 {
		out.TotalVideos = p.TotalVideos
	}
	if p.Limit > 0 {
		out.Limit = p.Limit
	}
	return out
}

// VideoList is the response envelope of the video listing endpoints.
type VideoList struct {
	Videos     []Video     `json:"videos"`
	TotalPages int         `json:"totalPages"`
	Pagination *Pagination `json:"pagination"`
}

// VideoDetails is the response of /api/videos/{id}: the video plus its
// comments and the ids of users who liked it.
type VideoDetails struct {
	Video      Video     `json:"video"`
	Comments   []Comment `json:"comments"`
	Likes      []string  `json:"likes"`
	TotalLikes int       `json:"totalLikes"`
}

// LikedBy reports whether the given user id appears in the likes list.
func (d VideoDetails) LikedBy(userID string) bool {
	for _, id := range d.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// LikeResult is the response of POST /api/videos/{id}/like.
type LikeResult struct {
	Likes      []string `json:"likes"`
	TotalLikes int      `json:"totalLikes"`
}

// VideoStats is the per-video statistic view used by admin video management.
type VideoStats struct {
	Video         Video `json:"video"`
	Views         int   `json:"views"`
	Likes         int   `json:"likes"`
	CommentCount  int   `json:"commentCount"`
	UniqueViewers int   `json:"uniqueViewers"`
}

// CreatorOverview is the aggregate block of the creator dashboard stats.
type CreatorOverview struct {
	TotalVideos   int `json:"totalVideos"`
	TotalViews    int `json:"totalViews"`
	TotalLikes    int `json:"totalLikes"`
	TotalComments int `json:"totalComments"`
}

// CreatorDashboardStats is the response of /api/creator/dashboard-stats.
type CreatorDashboardStats struct {
	Overview CreatorOverview `json:"overview"`
	Recent   []Video         `json:"recentVideos"`
}

// VideoAnalytics is the response of /api/creator/videos/{id}/analytics and
// a row of /api/videos/all-analytics.
type VideoAnalytics struct {
	VideoID       string  `json:"videoId"`
	Title         string  `json:"title"`
	Views         int     `json:"views"`
	Likes         int     `json:"likes"`
	Comments      int     `json:"comments"`
	WatchTimeSecs float64 `json:"watchTimeSeconds"`
}

// PlatformContentStats is the content block of the admin platform stats.
type PlatformContentStats struct {
	TotalVideos   int `json:"totalVideos"`
	TotalComments int `json:"totalComments"`
	TotalLikes    int `json:"totalLikes"`
}

// PlatformUserStats is the user block of the admin platform stats.
type PlatformUserStats struct {
	Total     int `json:"total"`
	Creators  int `json:"creators"`
	Consumers int `json:"consumers"`
}

// PlatformStats is the response of /api/auth/platform-stats.
type PlatformStats struct {
	Content PlatformContentStats `json:"content"`
	Users   PlatformUserStats    `json:"users"`
}

// UserList is the response envelope of the admin user listing. Unlike the
// video listing, paging fields sit at the top level.
type UserList struct {
	Users       []auth.UserRecord `json:"users"`
	CurrentPage int               `json:"currentPage"`
	TotalPages  int               `json:"totalPages"`
	Total       int               `json:"total"`
}
