package cache

import (
	"context"
	"time"

	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/core/port"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// UserStore caches user lookups. The session middleware resolves the
// current user on every request, which makes GetUserByID the hot path.
// Users are immutable once created so entries only expire by TTL.
type UserStore struct {
	backend port.UserStore
	cache   *expirable.LRU[string, model.User]
}

// CreateUser implements [port.UserStore].
func (s *UserStore) CreateUser(ctx context.Context, user model.User) error {
	if err := s.backend.CreateUser(ctx, user); err != nil {
		return err
	}

	s.add(user)

	return nil
}

// GetUserByID implements [port.UserStore].
func (s *UserStore) GetUserByID(ctx context.Context, userID model.UserID) (model.User, error) {
	if user, exists := s.get(idCacheKey(userID)); exists {
		return user, nil
	}

	user, err := s.backend.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.add(user)

	return user, nil
}

// GetUserByUsername implements [port.UserStore].
func (s *UserStore) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	if user, exists := s.get(usernameCacheKey(username)); exists {
		return user, nil
	}

	user, err := s.backend.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	s.add(user)

	return user, nil
}

// QueryUsers implements [port.UserStore].
func (s *UserStore) QueryUsers(ctx context.Context, opts port.QueryUsersOptions) ([]model.User, error) {
	return s.backend.QueryUsers(ctx, opts)
}

func (s *UserStore) add(user model.User) {
	s.cache.Add(idCacheKey(user.ID()), user)
	s.cache.Add(usernameCacheKey(user.Username()), user)
}

func (s *UserStore) get(key string) (model.User, bool) {
	return s.cache.Get(key)
}

func (s *UserStore) Len() int {
	return s.cache.Len()
}

func NewUserStore(backend port.UserStore, size int, ttl time.Duration) *UserStore {
	return &UserStore{
		backend: backend,
		cache:   expirable.NewLRU[string, model.User](size, nil, ttl),
	}
}

var _ port.UserStore = &UserStore{}

func idCacheKey(id model.UserID) string {
	return "id|" + string(id)
}

func usernameCacheKey(username string) string {
	return "username|" + username
}
