package consoleapp

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tarekmagdym/MasterStack/internal/config"
	"github.com/tarekmagdym/MasterStack/internal/i18n"
	"github.com/tarekmagdym/MasterStack/internal/infra/httpclient"
	filerepo "github.com/tarekmagdym/MasterStack/internal/repo/file"
	redrepo "github.com/tarekmagdym/MasterStack/internal/repo/redis"
	"github.com/tarekmagdym/MasterStack/internal/services/api"
	"github.com/tarekmagdym/MasterStack/internal/services/authgw"
	"github.com/tarekmagdym/MasterStack/internal/session"
	"github.com/tarekmagdym/MasterStack/internal/transport/authz"
)

// App wires the console core once per process: storage -> session store ->
// authorizer transport -> API client -> auth gateway. Everything is passed
// by reference, there are no ambient singletons.
type App struct {
	cfg   config.Config
	log   *zap.Logger
	redis *goredis.Client

	Store *session.Store
	Nav   *Navigator
	API   *api.Client
	Auth  *authgw.Service
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	app := &App{cfg: cfg, log: log}

	var storage session.Storage
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		app.redis = redrepo.NewClient(cfg.Session.Redis.Addr, cfg.Session.Redis.Password, cfg.Session.Redis.DB)
		storage = redrepo.NewSessionStorage(app.redis)
	default:
		fs, err := filerepo.NewSessionStorage(cfg.Session.Dir)
		if err != nil {
			return nil, fmt.Errorf("init file session storage: %w", err)
		}
		storage = fs
	}

	nav := NewNavigator(log)

	store, err := session.NewStore(ctx, storage, nav, log)
	if err != nil {
		return nil, fmt.Errorf("init session store: %w", err)
	}
	nav.Bind(store)

	msgs := i18n.NewCatalog(i18n.Lang(cfg.Language))
	transport := authz.New(nil, store, nav, log)
	client := httpclient.New(cfg.API.Timeout, transport)
	apiClient := api.NewClient(client, cfg.API.BaseURL, msgs, log)

	app.Store = store
	app.Nav = nav
	app.API = apiClient
	app.Auth = authgw.NewService(apiClient, store, msgs, log)

	if store.IsAuthenticated() {
		nav.NavigateToDashboard()
	}

	return app, nil
}

func (a *App) Close() error {
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}
