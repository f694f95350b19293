package cliapp

import (
	"context"
	"fmt"
	"io"
	"os"

	"orderdesk/config"
	configRedis "orderdesk/config/redis"
	"orderdesk/internal/auth"
	authRepo "orderdesk/internal/auth/repository"
	authERP "orderdesk/internal/auth/repository/erp"
	authMemory "orderdesk/internal/auth/repository/memory"
	authRedis "orderdesk/internal/auth/repository/redis"
	authUsecase "orderdesk/internal/auth/usecase"
	"orderdesk/internal/errorlog"
	errorlogERP "orderdesk/internal/errorlog/repository/erp"
	errorlogUsecase "orderdesk/internal/errorlog/usecase"
	"orderdesk/internal/message"
	messageERP "orderdesk/internal/message/repository/erp"
	messageUsecase "orderdesk/internal/message/usecase"
	"orderdesk/internal/order"
	orderERP "orderdesk/internal/order/repository/erp"
	orderUsecase "orderdesk/internal/order/usecase"
	"orderdesk/internal/system"
	systemERP "orderdesk/internal/system/repository/erp"
	systemUsecase "orderdesk/internal/system/usecase"
	"orderdesk/internal/upload"
	uploadERP "orderdesk/internal/upload/repository/erp"
	uploadUsecase "orderdesk/internal/upload/usecase"
	pkghttp "orderdesk/pkg/http"
	"orderdesk/pkg/locale"
	"orderdesk/pkg/log"
	pkgRedis "orderdesk/pkg/redis"
	"orderdesk/pkg/session"

	"github.com/spf13/afero"
)

const cacheBackendNone = "none"

// App holds the wired client: one request core shared by every domain.
type App struct {
	cfg  *config.Config
	l    log.Logger
	lang string

	out   io.Writer
	errW  io.Writer
	fs    afero.Fs
	redis pkgRedis.IRedis
	store session.Store
	nav   *loginNavigator

	authUC     auth.UseCase
	orderUC    order.UseCase
	messageUC  message.UseCase
	uploadUC   upload.UseCase
	errorlogUC errorlog.UseCase
	systemUC   system.UseCase
}

// Option customises New.
type Option func(*App)

// WithOutput redirects command output and failure toasts.
func WithOutput(out, errW io.Writer) Option {
	return func(a *App) {
		a.out = out
		a.errW = errW
	}
}

// WithSessionStore replaces the store selected by config.
func WithSessionStore(s session.Store) Option {
	return func(a *App) { a.store = s }
}

// WithFs replaces the filesystem upload paths are read from.
func WithFs(fs afero.Fs) Option {
	return func(a *App) { a.fs = fs }
}

// New wires config into stores, the request core, repositories and usecases.
func New(ctx context.Context, cfg *config.Config, l log.Logger, opts ...Option) (*App, error) {
	a := &App{
		cfg:  cfg,
		l:    l,
		lang: locale.ParseLang(cfg.Locale.Lang),
		out:  os.Stdout,
		errW: os.Stderr,
		fs:   afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if cfg.UsesRedis() {
		r, err := configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.redis = r
	}

	if a.store == nil {
		store, err := session.New(session.Config{
			Backend:   cfg.Session.Backend,
			FilePath:  cfg.Session.FilePath,
			Secret:    cfg.Session.Secret,
			KeyPrefix: cfg.Session.KeyPrefix,
		}, a.redis)
		if err != nil {
			return nil, fmt.Errorf("session store: %w", err)
		}
		a.store = store
	}

	a.nav = newLoginNavigator(a.errW)
	client := pkghttp.NewClient(pkghttp.ClientConfig{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		Retries:   cfg.API.Retries,
		RetryWait: cfg.API.RetryWait,
		UserAgent: cfg.API.UserAgent,
	}, a.store, pkghttp.WithNavigator(a.nav), pkghttp.WithLogger(l))

	a.authUC = authUsecase.New(authERP.New(client, l), a.profileCache(), a.store, l)
	a.orderUC = orderUsecase.New(orderERP.New(client, l), a.store, l)
	a.messageUC = messageUsecase.New(messageERP.New(client, l), a.store, l)
	a.uploadUC = uploadUsecase.New(uploadERP.New(client, l), a.store, l)
	a.errorlogUC = errorlogUsecase.New(errorlogERP.New(client, l), a.store, l)
	a.systemUC = systemUsecase.New(systemERP.New(client, l), l)

	return a, nil
}

func (a *App) profileCache() authRepo.ProfileCacheRepository {
	switch a.cfg.Cache.Backend {
	case cacheBackendNone:
		return authMemory.New(0)
	case "redis":
		if a.redis != nil {
			return authRedis.New(a.redis, a.cfg.Cache.ProfileTTL, a.l)
		}
	}
	return authMemory.New(a.cfg.Cache.ProfileTTL)
}

// Close releases the Redis connection when one was opened.
func (a *App) Close() error {
	if a.redis == nil {
		return nil
	}
	return configRedis.Disconnect()
}
