package ports

// Package ports defines interfaces (hexagonal ports) for session storage,
// token access, and navigation. Implementations live in internal/adapters
// and cmd; orchestration in internal/session and internal/app.

// Storage is a durable string key-value store scoped to the local user,
// the equivalent of the browser's origin-scoped localStorage. Values
// survive process restarts for the file and redis backends.
//
// Get reports ok=false for a missing key; an error means the backend
// itself failed (unreadable file, connection refused) and callers should
// treat the key as absent for read paths.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

// TokenSource yields the current bearer token, if any. The HTTP client
// consults it before every outgoing request.
type TokenSource interface {
	Token() (string, bool)
}

// TokenFunc adapts a function to the TokenSource interface.
type TokenFunc func() (string, bool)

// Token implements TokenSource.
func (f TokenFunc) Token() (string, bool) { return f() }

// Navigator performs screen navigation on behalf of the route guard and
// the application shell. The transport layer never navigates directly; it
// emits an unauthenticated event that the shell translates into a
// Navigate call.
type Navigator interface {
	Navigate(path string)
}
