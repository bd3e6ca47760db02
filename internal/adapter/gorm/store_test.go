package gorm

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/core/port"
	"github.com/bornholm/todo/internal/core/port/testsuite"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

func TestStore(t *testing.T) {
	testsuite.TestTodoStore(t, func(t *testing.T) (port.TodoStore, port.UserStore, error) {
		store, err := newTestStore(t)
		if err != nil {
			return nil, nil, errors.WithStack(err)
		}

		return store, store, nil
	})
}

func TestStoreDuplicateUsername(t *testing.T) {
	ctx := context.Background()

	store, err := newTestStore(t)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	now := time.Now().UTC()

	if err := store.CreateUser(ctx, model.NewUser("jdoe", "hash", now)); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	err = store.CreateUser(ctx, model.NewUser("jdoe", "other-hash", now))
	if !errors.Is(err, port.ErrAlreadyExists) {
		t.Fatalf("CreateUser(): expected ErrAlreadyExists, got %+v", err)
	}

	users, err := store.QueryUsers(ctx, port.QueryUsersOptions{})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(users); e != g {
		t.Errorf("len(users): expected %d, got %d", e, g)
	}

	user, err := store.GetUserByUsername(ctx, "jdoe")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "hash", user.PasswordHash(); e != g {
		t.Errorf("user.PasswordHash(): expected %s, got %s", e, g)
	}

	if _, err := store.GetUserByUsername(ctx, "unknown"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("GetUserByUsername(): expected ErrNotFound, got %+v", err)
	}
}

func newTestStore(t *testing.T) (*Store, error) {
	dsn := filepath.Join(t.TempDir(), "data.sqlite")

	db, err := gorm.Open(gormlite.Open(dsn), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	internalDB, err := db.DB()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	internalDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		if err := internalDB.Close(); err != nil {
			t.Logf("could not close database: %+v", errors.WithStack(err))
		}
	})

	if err := db.Exec("PRAGMA foreign_keys=on").Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return NewStore(db), nil
}
