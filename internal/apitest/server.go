// Package apitest provides a stub StreamWave backend for tests: an
// httptest server with per-route handlers and a record of every request
// received, so tests can assert on auth headers and call order.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// RecordedRequest captures what the stub backend saw for one request.
type RecordedRequest struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
	ContentType   string
}

// Server is a stub backend. Routes are registered with Handle; anything
// unrouted returns 404.
type Server struct {
	*httptest.Server
	mux *http.ServeMux

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewServer starts a stub backend that shuts down with the test.
func NewServer(t *testing.T) *Server {
	t.Helper()

	s := &Server{mux: http.NewServeMux()}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		s.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(s.Close)
	return s
}

// Handle registers a route, e.g. "POST /api/auth/login".
func (s *Server) Handle(pattern string, handler http.HandlerFunc) {
	s.mux.HandleFunc(pattern, handler)
}

// HandleJSON registers a route that always responds with the given
// status and JSON document.
func (s *Server) HandleJSON(pattern string, status int, body any) {
	s.Handle(pattern, func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, status, body)
	})
}

// Requests returns a copy of everything the backend has seen so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request, if any.
func (s *Server) LastRequest() (RecordedRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return RecordedRequest{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) record(r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, RecordedRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		Authorization: r.Header.Get("Authorization"),
		RequestID:     r.Header.Get("X-Request-ID"),
		ContentType:   r.Header.Get("Content-Type"),
	})
}

// WriteJSON writes a JSON response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
