package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusErrorMapping(t *testing.T) {
	cases := []struct {
		status int
		kind   ErrorKind
	}{
		{http.StatusBadRequest, KindValidation},
		{http.StatusUnauthorized, KindAuth},
		{http.StatusForbidden, KindForbidden},
		{http.StatusNotFound, KindNotFound},
		{http.StatusUnprocessableEntity, KindValidation},
		{http.StatusInternalServerError, KindServer},
		{http.StatusServiceUnavailable, KindServer},
	}

	for _, tc := range cases {
		err := statusError(tc.status, nil)
		assert.Equal(t, tc.kind, err.Kind, "status %d", tc.status)
		assert.Equal(t, tc.status, err.Status)
	}
}

func TestBackendMessagePrecedence(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    string
	}{
		{"message wins", `{"message":"m","error":"e","details":"d"}`, "m"},
		{"error next", `{"error":"e","details":"d"}`, "e"},
		{"details last", `{"details":"d"}`, "d"},
		{"empty payload falls back", `{}`, "Unauthorized"},
		{"non-json falls back", `oops`, "Unauthorized"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := &Error{
				Kind:    KindAuth,
				Status:  http.StatusUnauthorized,
				Message: "Unauthorized",
				Payload: json.RawMessage(tc.payload),
			}
			assert.Equal(t, tc.want, err.BackendMessage())
		})
	}
}

func TestKindOf(t *testing.T) {
	err := statusError(http.StatusNotFound, nil)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindAuth))

	wrapped := fmt.Errorf("load video: %w", err)
	assert.Equal(t, KindNotFound, KindOf(wrapped))

	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
	assert.Equal(t, ErrorKind(""), KindOf(nil))
}

func TestErrorStringIncludesStatus(t *testing.T) {
	err := statusError(http.StatusForbidden, nil)
	assert.Contains(t, err.Error(), "403")

	netErr := networkError(errors.New("connection refused"))
	assert.Contains(t, netErr.Error(), "no response")
	assert.ErrorContains(t, netErr.Cause, "connection refused")
}
