package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	gormAdapter "github.com/bornholm/todo/internal/adapter/gorm"
	"github.com/bornholm/todo/internal/core/model"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)}
}

func newTestStore(t *testing.T) *gormAdapter.Store {
	dsn := filepath.Join(t.TempDir(), "data.sqlite")

	db, err := gorm.Open(gormlite.Open(dsn), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		t.Fatalf("could not open database: %+v", errors.WithStack(err))
	}

	internalDB, err := db.DB()
	if err != nil {
		t.Fatalf("could not retrieve database: %+v", errors.WithStack(err))
	}

	internalDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		if err := internalDB.Close(); err != nil {
			t.Logf("could not close database: %+v", errors.WithStack(err))
		}
	})

	if err := db.Exec("PRAGMA foreign_keys=on").Error; err != nil {
		t.Fatalf("could not enable foreign keys: %+v", errors.WithStack(err))
	}

	return gormAdapter.NewStore(db)
}

func newTestAccountManager(t *testing.T, store *gormAdapter.Store) *AccountManager {
	accounts, err := NewAccountManager(store, WithAccountManagerPasswordCost(bcrypt.MinCost))
	if err != nil {
		t.Fatalf("could not create account manager: %+v", errors.WithStack(err))
	}

	return accounts
}

func signup(t *testing.T, accounts *AccountManager, username string) model.User {
	user, err := accounts.Signup(context.Background(), SignupInput{
		Username:  username,
		Password1: "s3cr3t-" + username,
		Password2: "s3cr3t-" + username,
	})
	if err != nil {
		t.Fatalf("could not sign up '%s': %+v", username, errors.WithStack(err))
	}

	return user
}
