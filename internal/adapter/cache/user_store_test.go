package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/core/port"
	"github.com/pkg/errors"
)

func TestUserStore(t *testing.T) {
	ctx := context.Background()

	backend := &countingUserStore{
		users: map[model.UserID]model.User{},
	}

	store := NewUserStore(backend, 10, time.Minute)

	user := model.NewUser("jdoe", "hash", time.Now())

	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for range 3 {
		cached, err := store.GetUserByID(ctx, user.ID())
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := user.Username(), cached.Username(); e != g {
			t.Errorf("cached.Username(): expected %s, got %s", e, g)
		}

		if _, err := store.GetUserByUsername(ctx, "jdoe"); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	if e, g := 0, backend.gets; e != g {
		t.Errorf("backend.gets: expected %d, got %d", e, g)
	}

	if _, err := store.GetUserByID(ctx, model.NewUserID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("GetUserByID(): expected ErrNotFound, got %+v", err)
	}

	if e, g := 1, backend.gets; e != g {
		t.Errorf("backend.gets: expected %d, got %d", e, g)
	}
}

func TestUserStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()

	backend := &countingUserStore{
		users: map[model.UserID]model.User{},
	}

	store := NewUserStore(backend, 128, time.Minute)

	var wg sync.WaitGroup

	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			user := model.NewUser(fmt.Sprintf("user%d", i), "hash", time.Now())

			if err := store.CreateUser(ctx, user); err != nil {
				t.Errorf("%+v", errors.WithStack(err))
				return
			}

			for range 50 {
				cached, err := store.GetUserByID(ctx, user.ID())
				if err != nil {
					t.Errorf("%+v", errors.WithStack(err))
					return
				}

				if e, g := user.Username(), cached.Username(); e != g {
					t.Errorf("cached.Username(): expected %s, got %s", e, g)
				}
			}
		}()
	}

	wg.Wait()

	if e, g := 32, store.Len(); e != g {
		t.Errorf("store.Len(): expected %d, got %d", e, g)
	}

	if e, g := 0, backend.gets; e != g {
		t.Errorf("backend.gets: expected %d, got %d", e, g)
	}
}

type countingUserStore struct {
	mu    sync.Mutex
	users map[model.UserID]model.User
	gets  int
}

// CreateUser implements [port.UserStore].
func (s *countingUserStore) CreateUser(ctx context.Context, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[user.ID()] = user
	return nil
}

// GetUserByID implements [port.UserStore].
func (s *countingUserStore) GetUserByID(ctx context.Context, userID model.UserID) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gets++

	user, exists := s.users[userID]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return user, nil
}

// GetUserByUsername implements [port.UserStore].
func (s *countingUserStore) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gets++

	for _, u := range s.users {
		if u.Username() == username {
			return u, nil
		}
	}

	return nil, errors.WithStack(port.ErrNotFound)
}

// QueryUsers implements [port.UserStore].
func (s *countingUserStore) QueryUsers(ctx context.Context, opts port.QueryUsersOptions) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}

	return users, nil
}

var _ port.UserStore = &countingUserStore{}
