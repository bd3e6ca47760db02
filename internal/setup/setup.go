package setup

import (
	"context"
	"sync"

	"github.com/bornholm/todo/internal/config"
	"github.com/pkg/errors"
)

type factoryFunc[T any] func(ctx context.Context, conf *config.Config) (T, error)

// createFromConfigOnce memoizes the result of the given factory for each
// configuration. Failed creations are not memoized.
func createFromConfigOnce[T any](factory factoryFunc[T]) factoryFunc[T] {
	var (
		mu        sync.Mutex
		instances = map[*config.Config]T{}
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		mu.Lock()
		defer mu.Unlock()

		if instance, exists := instances[conf]; exists {
			return instance, nil
		}

		instance, err := factory(ctx, conf)
		if err != nil {
			return *new(T), errors.WithStack(err)
		}

		instances[conf] = instance

		return instance, nil
	}
}
