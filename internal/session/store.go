package session

// Package session is the single source of truth for "who is logged in".
// It persists the authenticated identity and bearer token under two
// storage keys and orchestrates the login and registration calls.

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/streamwave/streamwave-go/internal/api"
	domainauth "github.com/streamwave/streamwave-go/internal/domain/auth"
	"github.com/streamwave/streamwave-go/internal/ports"
)

const (
	// KeyUser and KeyToken are the two storage keys the session owns.
	// They are written and cleared together, never individually.
	KeyUser  = "user"
	KeyToken = "token"
)

// StoreOptions groups dependencies for Store.
type StoreOptions struct {
	Storage ports.Storage
	Client  *api.Client
	Logger  *slog.Logger
}

// Store manages the persisted session. All methods are safe for
// concurrent use; the underlying storage backends serialize writes.
type Store struct {
	storage ports.Storage
	client  *api.Client
	logger  *slog.Logger
}

// NewStore constructs a session store over the given storage backend.
func NewStore(opts StoreOptions) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		storage: opts.Storage,
		client:  opts.Client,
		logger:  logger,
	}
}

// loginResponse is the expected shape of a successful login. Both fields
// are required; a success status missing either is a malformed response.
type loginResponse struct {
	Token string                  `json:"token"`
	User  *domainauth.UserSummary `json:"user"`
}

// Login posts credentials and, on success, persists the user record and
// token. The returned identity is exactly what the backend sent. No
// storage is touched on any failure path.
func (s *Store) Login(ctx context.Context, email, password string) (domainauth.UserSummary, error) {
	var resp loginResponse
	payload := map[string]string{"email": email, "password": password}
	if err := s.client.Post(ctx, api.Endpoints.Auth.Login(), payload, &resp); err != nil {
		return domainauth.UserSummary{}, err
	}
	if resp.Token == "" || resp.User == nil {
		return domainauth.UserSummary{}, &api.Error{
			Kind:    api.KindMalformedResponse,
			Message: "login response missing token or user",
		}
	}

	encoded, err := json.Marshal(resp.User)
	if err != nil {
		return domainauth.UserSummary{}, &api.Error{
			Kind:    api.KindMalformedResponse,
			Message: "encode user record",
			Cause:   err,
		}
	}

	// User first, then token: IsAuthenticated keys off the token, so the
	// token must never be visible without its user record.
	if err := s.storage.Set(KeyUser, string(encoded)); err != nil {
		return domainauth.UserSummary{}, err
	}
	if err := s.storage.Set(KeyToken, resp.Token); err != nil {
		// Roll back the half-written session rather than leave a user
		// record without a token.
		_ = s.storage.Remove(KeyUser)
		return domainauth.UserSummary{}, err
	}

	s.logger.Info("session established",
		slog.String("user_id", resp.User.ID),
		slog.String("role", string(resp.User.Role)),
	)
	return *resp.User, nil
}

// RegisterInput carries the registration form.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     domainauth.Role
}

// Register creates an account. It does not establish a session; callers
// log in separately, matching the signup flow of the web client.
func (s *Store) Register(ctx context.Context, in RegisterInput) (domainauth.UserRecord, error) {
	role := in.Role
	if role == "" {
		role = domainauth.RoleConsumer
	}
	payload := map[string]string{
		"name":     in.Name,
		"email":    in.Email,
		"password": in.Password,
		"role":     string(role),
	}

	var record domainauth.UserRecord
	if err := s.client.Post(ctx, api.Endpoints.Auth.Register(), payload, &record); err != nil {
		return domainauth.UserRecord{}, err
	}
	return record, nil
}

// Logout removes both session keys. No network call; idempotent.
func (s *Store) Logout() {
	if err := s.storage.Remove(KeyToken); err != nil {
		s.logger.Warn("remove token key", slog.Any("error", err))
	}
	if err := s.storage.Remove(KeyUser); err != nil {
		s.logger.Warn("remove user key", slog.Any("error", err))
	}
}

// CurrentUser returns the persisted identity. Missing or corrupt storage
// content reports ok=false rather than failing: the store may hold
// partial state from a crashed prior session.
func (s *Store) CurrentUser() (domainauth.UserSummary, bool) {
	raw, ok, err := s.storage.Get(KeyUser)
	if err != nil || !ok {
		return domainauth.UserSummary{}, false
	}

	var user domainauth.UserSummary
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Warn("stored user record is corrupt, treating as logged out")
		return domainauth.UserSummary{}, false
	}
	return user, true
}

// Token returns the persisted bearer token, if any. Implements
// ports.TokenSource for the HTTP client's request interceptor.
func (s *Store) Token() (string, bool) {
	token, ok, err := s.storage.Get(KeyToken)
	if err != nil || !ok || token == "" {
		return "", false
	}
	return token, true
}

// IsAuthenticated reports whether a non-empty token is present.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.Token()
	return ok
}

// TokenExpiry reports the bearer token's expiry when the token is a JWT.
func (s *Store) TokenExpiry() (time.Time, bool) {
	token, ok := s.Token()
	if !ok {
		return time.Time{}, false
	}
	return domainauth.TokenExpiry(token)
}

// Session returns the full session when both keys are present.
func (s *Store) Session() (domainauth.Session, bool) {
	user, ok := s.CurrentUser()
	if !ok {
		return domainauth.Session{}, false
	}
	token, ok := s.Token()
	if !ok {
		return domainauth.Session{}, false
	}
	return domainauth.Session{User: user, Token: token}, true
}

var _ ports.TokenSource = (*Store)(nil)

// ErrNotAuthenticated is returned by callers that require a session.
var ErrNotAuthenticated = errors.New("not authenticated")
