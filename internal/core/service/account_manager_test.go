package service

import (
	"context"
	"testing"

	"github.com/bornholm/todo/internal/core/port"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

func TestAccountManagerSignup(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	clock := newFakeClock()

	accounts, err := NewAccountManager(store,
		WithAccountManagerPasswordCost(bcrypt.MinCost),
		WithAccountManagerClock(clock.Now),
	)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	user, err := accounts.Signup(ctx, SignupInput{
		Username:  "jdoe",
		Password1: "correct horse",
		Password2: "correct horse",
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := clock.Now(), user.CreatedAt(); !e.Equal(g) {
		t.Errorf("user.CreatedAt(): expected %v, got %v", e, g)
	}

	if e, g := "jdoe", user.Username(); e != g {
		t.Errorf("user.Username(): expected %s, got %s", e, g)
	}

	if user.PasswordHash() == "correct horse" {
		t.Errorf("user.PasswordHash(): password should not be stored in clear text")
	}

	authenticated, err := accounts.Authenticate(ctx, "jdoe", "correct horse")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := user.ID(), authenticated.ID(); e != g {
		t.Errorf("authenticated.ID(): expected %s, got %s", e, g)
	}
}

func TestAccountManagerSignupPasswordMismatch(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	accounts := newTestAccountManager(t, store)

	_, err := accounts.Signup(ctx, SignupInput{
		Username:  "jdoe",
		Password1: "first",
		Password2: "second",
	})
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("Signup(): expected ErrPasswordMismatch, got %+v", err)
	}

	if _, err := store.GetUserByUsername(ctx, "jdoe"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("GetUserByUsername(): expected ErrNotFound, got %+v", err)
	}
}

func TestAccountManagerSignupDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	accounts := newTestAccountManager(t, store)

	first := signup(t, accounts, "jdoe")

	_, err := accounts.Signup(ctx, SignupInput{
		Username:  "jdoe",
		Password1: "another password",
		Password2: "another password",
	})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("Signup(): expected ErrUsernameTaken, got %+v", err)
	}

	users, err := accounts.ListUsers(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(users); e != g {
		t.Fatalf("len(users): expected %d, got %d", e, g)
	}

	if e, g := first.ID(), users[0].ID(); e != g {
		t.Errorf("users[0].ID(): expected %s, got %s", e, g)
	}

	// The original password still works
	if _, err := accounts.Authenticate(ctx, "jdoe", "s3cr3t-jdoe"); err != nil {
		t.Errorf("Authenticate(): %+v", errors.WithStack(err))
	}
}

func TestAccountManagerSignupValidation(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	accounts := newTestAccountManager(t, store)

	type testCase struct {
		Name  string
		Input SignupInput
		Field string
	}

	testCases := []testCase{
		{Name: "EmptyUsername", Input: SignupInput{Username: " ", Password1: "pwd", Password2: "pwd"}, Field: FieldUsername},
		{Name: "InvalidUsername", Input: SignupInput{Username: "john doe", Password1: "pwd", Password2: "pwd"}, Field: FieldUsername},
		{Name: "EmptyPassword", Input: SignupInput{Username: "jdoe", Password1: "", Password2: ""}, Field: FieldPassword1},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := accounts.Signup(ctx, tc.Input)

			validationErr, ok := AsValidationError(err)
			if !ok {
				t.Fatalf("Signup(): expected *ValidationError, got %+v", err)
			}

			if _, exists := validationErr.Fields[tc.Field]; !exists {
				t.Errorf("validationErr.Fields: expected an error on field '%s', got %v", tc.Field, validationErr.Fields)
			}
		})
	}
}

func TestAccountManagerAuthenticate(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	accounts := newTestAccountManager(t, store)

	signup(t, accounts, "jdoe")

	type testCase struct {
		Name     string
		Username string
		Password string
	}

	testCases := []testCase{
		{Name: "WrongPassword", Username: "jdoe", Password: "wrong"},
		{Name: "UnknownUser", Username: "nobody", Password: "s3cr3t-jdoe"},
		// The username must not be accepted as password
		{Name: "UsernameAsPassword", Username: "jdoe", Password: "jdoe"},
		{Name: "Empty", Username: "", Password: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if _, err := accounts.Authenticate(ctx, tc.Username, tc.Password); !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("Authenticate(): expected ErrInvalidCredentials, got %+v", err)
			}
		})
	}
}
