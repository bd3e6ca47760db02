package port

import (
	"context"

	"github.com/bornholm/todo/internal/core/model"
)

type UserStore interface {
	// CreateUser saves a new user, or returns ErrAlreadyExists if the username is taken
	CreateUser(ctx context.Context, user model.User) error

	// GetUserByID finds a user by its ID, or returns ErrNotFound if not found
	GetUserByID(ctx context.Context, userID model.UserID) (model.User, error)

	// GetUserByUsername finds a user by its username, or returns ErrNotFound if not found
	GetUserByUsername(ctx context.Context, username string) (model.User, error)

	// QueryUsers returns registered users ordered by username
	QueryUsers(ctx context.Context, opts QueryUsersOptions) ([]model.User, error)
}

type QueryUsersOptions struct {
	Page  *int
	Limit *int
}
