package bootstrap

import (
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/streamwave/streamwave-go/config"
	"github.com/streamwave/streamwave-go/internal/adapters/storage"
	"github.com/streamwave/streamwave-go/internal/api"
	"github.com/streamwave/streamwave-go/internal/app"
	"github.com/streamwave/streamwave-go/internal/ports"
	"github.com/streamwave/streamwave-go/internal/router"
	"github.com/streamwave/streamwave-go/internal/session"
)

// App bundles the wired client-side components the shell runs against.
type App struct {
	Client   *api.Client
	Sessions *session.Store
	Guard    *router.Guard
	Consumer *app.ConsumerController
	Creator  *app.CreatorController
	Admin    *app.AdminController
}

// BuildApp wires storage, session store, API client, route guard, and the
// page controllers. The navigator is supplied by the shell: on a 401 from
// any request the session is cleared and the navigator is pointed at the
// login screen.
func BuildApp(cfg config.AppConfig, logger *slog.Logger, nav ports.Navigator) (*App, error) {
	store, err := buildStorage(cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("build session storage: %w", err)
	}

	client, err := api.NewClient(api.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build API client: %w", err)
	}

	sessions := session.NewStore(session.StoreOptions{
		Storage: store,
		Client:  client,
		Logger:  logger,
	})
	client.SetTokenSource(sessions)
	client.OnUnauthorized(func() {
		sessions.Logout()
		nav.Navigate(router.PathLogin)
	})

	return &App{
		Client:   client,
		Sessions: sessions,
		Guard:    router.NewGuard(sessions),
		Consumer: app.NewConsumerController(client, sessions, logger),
		Creator:  app.NewCreatorController(client, logger),
		Admin:    app.NewAdminController(client, logger),
	}, nil
}

func buildStorage(cfg config.SessionConfig) (ports.Storage, error) {
	switch cfg.Backend {
	case config.SessionBackendMemory:
		return storage.NewMemory(), nil
	case config.SessionBackendRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return storage.NewRedis(storage.RedisOptions{
			Client: client,
			Prefix: cfg.Redis.Prefix,
		})
	default:
		return storage.NewFile(cfg.StatePath)
	}
}
