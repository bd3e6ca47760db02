package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/todo/internal/adapter/cache"
	gormAdapter "github.com/bornholm/todo/internal/adapter/gorm"
	"github.com/bornholm/todo/internal/config"
	"github.com/bornholm/todo/internal/core/port"
	"github.com/pkg/errors"
)

var getGormStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*gormAdapter.Store, error) {
	db, err := getGormDatabaseFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not open database")
	}

	return gormAdapter.NewStore(db), nil
})

// Todos are never cached: every read must observe the last completion
// or deletion of the owner.
var getTodoStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.TodoStore, error) {
	store, err := getGormStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return store, nil
})

var getUserStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.UserStore, error) {
	store, err := getGormStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	usersCache := conf.Storage.Database.Cache.Users
	if !usersCache.Enabled {
		return store, nil
	}

	slog.DebugContext(ctx, "caching user lookups", slog.Duration("ttl", usersCache.TTL), slog.Int("size", usersCache.Size))

	return cache.NewUserStore(store, usersCache.Size, usersCache.TTL), nil
})
