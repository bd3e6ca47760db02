package setup

import (
	"context"

	"github.com/bornholm/todo/internal/config"
	"github.com/bornholm/todo/internal/core/service"
	"github.com/pkg/errors"
)

var NewAccountManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.AccountManager, error) {
	userStore, err := getUserStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create user store from config")
	}

	accounts, err := service.NewAccountManager(userStore)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return accounts, nil
})
