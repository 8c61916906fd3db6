package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind categorizes a failed API call. Every error surfaced by the
// client carries exactly one kind so page controllers can branch without
// string matching.
type ErrorKind string

const (
	// KindValidation means the backend rejected the request payload.
	KindValidation ErrorKind = "validation"
	// KindAuth means the backend rejected the caller's credentials or token.
	KindAuth ErrorKind = "auth"
	// KindForbidden means the authenticated caller lacks permission (403).
	KindForbidden ErrorKind = "forbidden"
	// KindNotFound means the requested resource does not exist (404).
	KindNotFound ErrorKind = "not_found"
	// KindServer means the backend failed (5xx or unclassified non-2xx).
	KindServer ErrorKind = "server"
	// KindMalformedResponse means a success status arrived without the
	// fields the operation requires.
	KindMalformedResponse ErrorKind = "malformed_response"
	// KindNetwork means no response was received (unreachable or timeout).
	KindNetwork ErrorKind = "network"
	// KindRequestSetup means the request could not be constructed before
	// anything was sent.
	KindRequestSetup ErrorKind = "request_setup"
)

// Error is the structured failure of an API call. It supports errors.As
// and unwrapping to the underlying cause.
type Error struct {
	Kind    ErrorKind
	Status  int             // HTTP status, 0 when no response arrived
	Message string          // human-readable summary
	Payload json.RawMessage // raw backend error body, when one arrived
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// BackendMessage extracts the human-facing message from the backend error
// payload. StreamWave responses use "message", "error", or "details"
// depending on the endpoint; the first present wins. Falls back to the
// error's own message.
func (e *Error) BackendMessage() string {
	if len(e.Payload) > 0 {
		var body struct {
			Message string `json:"message"`
			Err     string `json:"error"`
			Details string `json:"details"`
		}
		if json.Unmarshal(e.Payload, &body) == nil {
			switch {
			case body.Message != "":
				return body.Message
			case body.Err != "":
				return body.Err
			case body.Details != "":
				return body.Details
			}
		}
	}
	return e.Message
}

// KindOf reports the ErrorKind of err, or "" when err is not an API error.
func KindOf(err error) ErrorKind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

// IsKind reports whether err is an API error of the given kind.
func IsKind(err error, kind ErrorKind) bool { return KindOf(err) == kind }

// statusError builds the typed error for a non-2xx response.
func statusError(status int, payload []byte) *Error {
	e := &Error{
		Status:  status,
		Message: http.StatusText(status),
		Payload: json.RawMessage(payload),
	}
	switch {
	case status == http.StatusUnauthorized:
		e.Kind = KindAuth
	case status == http.StatusForbidden:
		e.Kind = KindForbidden
	case status == http.StatusNotFound:
		e.Kind = KindNotFound
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		e.Kind = KindValidation
	default:
		e.Kind = KindServer
	}
	return e
}

func networkError(cause error) *Error {
	return &Error{Kind: KindNetwork, Message: "no response received", Cause: cause}
}

func setupError(message string, cause error) *Error {
	return &Error{Kind: KindRequestSetup, Message: message, Cause: cause}
}

func malformedError(message string) *Error {
	return &Error{Kind: KindMalformedResponse, Message: message}
}
