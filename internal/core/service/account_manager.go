package service

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/core/port"
	"github.com/bornholm/todo/internal/metrics"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const (
	MaxUsernameLength = 150
	// bcrypt ignores anything past 72 bytes
	MaxPasswordBytes  = 72
)

var validUsername = regexp.MustCompile(`^[\w.@+-]+$`)

const (
	messageInvalidUsername = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	messagePasswordTooLong = "Ensure this password has at most 72 bytes."
)

type AccountManagerOptions struct {
	Clock        func() time.Time
	PasswordCost int
}

type AccountManagerOptionFunc func(opts *AccountManagerOptions)

func WithAccountManagerClock(clock func() time.Time) AccountManagerOptionFunc {
	return func(opts *AccountManagerOptions) {
		opts.Clock = clock
	}
}

// WithAccountManagerPasswordCost sets the bcrypt cost used to hash new passwords
func WithAccountManagerPasswordCost(cost int) AccountManagerOptionFunc {
	return func(opts *AccountManagerOptions) {
		opts.PasswordCost = cost
	}
}

func NewAccountManagerOptions(funcs ...AccountManagerOptionFunc) *AccountManagerOptions {
	opts := &AccountManagerOptions{
		Clock:        time.Now,
		PasswordCost: bcrypt.DefaultCost,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

type AccountManager struct {
	store        port.UserStore
	clock        func() time.Time
	passwordCost int

	// compared against when the username is unknown so that both failure
	// cases take the same time
	dummyHash []byte
}

func NewAccountManager(store port.UserStore, funcs ...AccountManagerOptionFunc) (*AccountManager, error) {
	opts := NewAccountManagerOptions(funcs...)

	dummyHash, err := bcrypt.GenerateFromPassword([]byte("dummy-password"), opts.PasswordCost)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &AccountManager{
		store:        store,
		clock:        opts.Clock,
		passwordCost: opts.PasswordCost,
		dummyHash:    dummyHash,
	}, nil
}

type SignupInput struct {
	Username  string
	Password1 string
	Password2 string
}

func (i SignupInput) Validate() error {
	if i.Password1 != i.Password2 {
		return errors.WithStack(ErrPasswordMismatch)
	}

	verr := &ValidationError{}

	username := strings.TrimSpace(i.Username)
	switch {
	case username == "":
		verr.Add(FieldUsername, messageRequired)
	case len([]rune(username)) > MaxUsernameLength || !validUsername.MatchString(username):
		verr.Add(FieldUsername, messageInvalidUsername)
	}

	switch {
	case i.Password1 == "":
		verr.Add(FieldPassword1, messageRequired)
	case len(i.Password1) > MaxPasswordBytes:
		verr.Add(FieldPassword1, messagePasswordTooLong)
	}

	return verr.Err()
}

// Signup registers a new user. It returns ErrPasswordMismatch if both
// passwords differ and ErrUsernameTaken if the username is already
// registered, in which case no account is created.
func (m *AccountManager) Signup(ctx context.Context, input SignupInput) (model.User, error) {
	user, err := m.signup(ctx, input)
	if err != nil {
		metrics.Signups.WithLabelValues(metrics.StatusFailed).Inc()
		return nil, errors.WithStack(err)
	}

	metrics.Signups.WithLabelValues(metrics.StatusSucceeded).Inc()

	return user, nil
}

func (m *AccountManager) signup(ctx context.Context, input SignupInput) (model.User, error) {
	if err := input.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password1), m.passwordCost)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	user := model.NewUser(strings.TrimSpace(input.Username), string(hash), m.clock().UTC())

	if err := m.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, port.ErrAlreadyExists) {
			return nil, errors.WithStack(ErrUsernameTaken)
		}

		return nil, errors.WithStack(err)
	}

	slog.InfoContext(ctx, "user registered", slog.String("user", model.UserString(user)))

	return user, nil
}

// Authenticate returns the user matching the given credentials, or
// ErrInvalidCredentials without telling which of the username or the
// password is wrong.
func (m *AccountManager) Authenticate(ctx context.Context, username string, password string) (model.User, error) {
	user, err := m.authenticate(ctx, username, password)
	if err != nil {
		metrics.Logins.WithLabelValues(metrics.StatusFailed).Inc()
		return nil, errors.WithStack(err)
	}

	metrics.Logins.WithLabelValues(metrics.StatusSucceeded).Inc()

	return user, nil
}

func (m *AccountManager) authenticate(ctx context.Context, username string, password string) (model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errors.WithStack(ErrInvalidCredentials)
	}

	user, err := m.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(m.dummyHash, []byte(password))
			return nil, errors.WithStack(ErrInvalidCredentials)
		}

		return nil, errors.WithStack(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash()), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, errors.WithStack(ErrInvalidCredentials)
		}

		return nil, errors.WithStack(err)
	}

	return user, nil
}

func (m *AccountManager) GetUser(ctx context.Context, id model.UserID) (model.User, error) {
	user, err := m.store.GetUserByID(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

func (m *AccountManager) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := m.store.QueryUsers(ctx, port.QueryUsersOptions{})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return users, nil
}
