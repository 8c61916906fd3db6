package router

// Package router mirrors the web client's screen map and gates role-
// restricted screens. The guard never caches a decision: the session can
// change between navigations, so every Check re-reads it.

import (
	"strings"

	domainauth "github.com/streamwave/streamwave-go/internal/domain/auth"
)

// Screen paths. These are client-side routes, not REST paths.
const (
	PathLogin            = "/login"
	PathSignup           = "/signup"
	PathAdminDashboard   = "/admin/dashboard"
	PathCreatorDashboard = "/creator/dashboard"
	PathCreatorMyVideos  = "/creator/my-videos"
	PathConsumerHome     = "/consumer/home"
	PathConsumerVideo    = "/consumer/video/{id}"
	PathConsumerLiked    = "/consumer/liked"
)

// RedirectPolicy selects what happens when an authenticated session lacks
// the required role. Both variants exist in the platform's surface and
// are chosen per route; they are never merged.
type RedirectPolicy int

const (
	// RedirectLogin sends any role mismatch to the login screen.
	RedirectLogin RedirectPolicy = iota
	// RedirectByRole sends admins to their dashboard, consumers to the
	// home feed, and anyone else to login.
	RedirectByRole
)

// Route is one guarded or public screen. A nil Roles set means any
// authenticated session may view it; Public routes skip the guard.
type Route struct {
	Path   string
	Public bool
	Roles  []domainauth.Role
	Policy RedirectPolicy
}

// Routes is the platform screen table. Role-restricted screens use the
// role-aware redirect, matching the shared PrivateRoute component.
func Routes() []Route {
	return []Route{
		{Path: PathLogin, Public: true},
		{Path: PathSignup, Public: true},
		{Path: PathAdminDashboard, Roles: []domainauth.Role{domainauth.RoleAdmin}, Policy: RedirectByRole},
		{Path: PathCreatorDashboard, Roles: []domainauth.Role{domainauth.RoleCreator}, Policy: RedirectByRole},
		{Path: PathCreatorMyVideos, Roles: []domainauth.Role{domainauth.RoleCreator}, Policy: RedirectByRole},
		{Path: PathConsumerHome, Roles: []domainauth.Role{domainauth.RoleConsumer}, Policy: RedirectByRole},
		{Path: PathConsumerVideo, Roles: []domainauth.Role{domainauth.RoleConsumer}, Policy: RedirectByRole},
		{Path: PathConsumerLiked, Roles: []domainauth.Role{domainauth.RoleConsumer}, Policy: RedirectByRole},
	}
}

// HomeFor returns the landing screen for a role after login.
func HomeFor(role domainauth.Role) string {
	switch role {
	case domainauth.RoleAdmin:
		return PathAdminDashboard
	case domainauth.RoleCreator:
		return PathCreatorDashboard
	case domainauth.RoleConsumer:
		return PathConsumerHome
	default:
		return PathLogin
	}
}

// SessionSource reads the current session identity.
type SessionSource interface {
	CurrentUser() (domainauth.UserSummary, bool)
}

// Decision is the outcome of a guard check.
type Decision struct {
	Allow      bool
	RedirectTo string
	// Params holds values bound to path parameters, e.g. the video id.
	Params map[string]string
}

// Guard evaluates navigation against the screen table.
type Guard struct {
	sessions SessionSource
	routes   []Route
}

// NewGuard builds a guard over the platform screen table.
func NewGuard(sessions SessionSource) *Guard {
	return &Guard{sessions: sessions, routes: Routes()}
}

// Check decides whether the current session may view path. Unmatched
// paths fall back to the login screen, same as the web client's wildcard
// route.
func (g *Guard) Check(path string) Decision {
	route, params, ok := match(g.routes, path)
	if !ok {
		return Decision{RedirectTo: PathLogin}
	}
	if route.Public {
		return Decision{Allow: true, Params: params}
	}

	user, ok := g.sessions.CurrentUser()
	if !ok {
		return Decision{RedirectTo: PathLogin}
	}

	if len(route.Roles) > 0 && !roleAllowed(route.Roles, user.Role) {
		return Decision{RedirectTo: redirectFor(route.Policy, user.Role)}
	}
	return Decision{Allow: true, Params: params}
}

func roleAllowed(allowed []domainauth.Role, role domainauth.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

func redirectFor(policy RedirectPolicy, role domainauth.Role) string {
	if policy == RedirectLogin {
		return PathLogin
	}
	switch role {
	case domainauth.RoleAdmin:
		return PathAdminDashboard
	case domainauth.RoleConsumer:
		return PathConsumerHome
	default:
		return PathLogin
	}
}

// match compares path against the table, binding {name} segments.
func match(routes []Route, path string) (Route, map[string]string, bool) {
	segments := splitPath(path)
	for _, route := range routes {
		pattern := splitPath(route.Path)
		if len(pattern) != len(segments) {
			continue
		}
		params := map[string]string{}
		matched := true
		for i, part := range pattern {
			if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
				params[strings.Trim(part, "{}")] = segments[i]
				continue
			}
			if part != segments[i] {
				matched = false
				break
			}
		}
		if matched {
			return route, params, true
		}
	}
	return Route{}, nil, false
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
