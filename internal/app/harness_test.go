package app_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/streamwave/streamwave-go/internal/adapters/storage"
	"github.com/streamwave/streamwave-go/internal/api"
	"github.com/streamwave/streamwave-go/internal/apitest"
	domainauth "github.com/streamwave/streamwave-go/internal/domain/auth"
	"github.com/streamwave/streamwave-go/internal/session"
)

type harness struct {
	backend  *apitest.Server
	client   *api.Client
	sessions *session.Store
	storage  *storage.Memory
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	backend := apitest.NewServer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := storage.NewMemory()
	client, err := api.NewClient(api.Options{BaseURL: backend.URL, Logger: logger})
	require.NoError(t, err)

	sessions := session.NewStore(session.StoreOptions{
		Storage: store,
		Client:  client,
		Logger:  logger,
	})
	client.SetTokenSource(sessions)

	return &harness{backend: backend, client: client, sessions: sessions, storage: store}
}

// signIn seeds the session directly, bypassing the login endpoint.
func (h *harness) signIn(t *testing.T, user domainauth.UserSummary, token string) {
	t.Helper()

	encoded, err := json.Marshal(user)
	require.NoError(t, err)
	require.NoError(t, h.storage.Set(session.KeyUser, string(encoded)))
	require.NoError(t, h.storage.Set(session.KeyToken, token))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeJSON(r *http.Request, out any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(out)
}
