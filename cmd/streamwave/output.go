package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jmespath-community/go-jmespath"

	"github.com/streamwave/streamwave-go/internal/api"
)

// writeResult renders a command result. With --json the raw document is
// printed; --query projects it through a JMESPath expression first.
func writeResult(w io.Writer, v any, query string) error {
	if query != "" {
		// Round-trip through JSON so JMESPath sees plain maps and slices.
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("decode result: %w", err)
		}
		projected, err := jmespath.Search(query, doc)
		if err != nil {
			return fmt.Errorf("apply query %q: %w", query, err)
		}
		v = projected
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// presentError turns an API failure into the message a user should see.
// Typed kinds come through with the backend's own wording when available.
func presentError(err error) string {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return err.Error()
	}

	switch apiErr.Kind {
	case api.KindNetwork:
		return "no response from the backend; check your connection and try again"
	case api.KindAuth:
		return "authentication failed: " + apiErr.BackendMessage()
	case api.KindForbidden:
		return "you do not have permission to do that"
	case api.KindNotFound:
		return "the requested resource does not exist"
	case api.KindValidation:
		return apiErr.BackendMessage()
	case api.KindMalformedResponse:
		return "the backend returned an unexpected response: " + apiErr.Message
	case api.KindServer:
		return "the backend reported an error; try again later"
	default:
		return apiErr.Error()
	}
}
