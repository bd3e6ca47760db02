package context

import (
	"context"

	"github.com/bornholm/todo/internal/core/model"
	"github.com/pkg/errors"
)

const keyUser contextKey = "user"

var ErrAnonymous = errors.New("no authenticated user in context")

// SetUser attaches the authenticated user to the request context.
func SetUser(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, keyUser, user)
}

// User returns the authenticated user, or nil for anonymous requests.
func User(ctx context.Context) model.User {
	user, _ := ctx.Value(keyUser).(model.User)
	return user
}

// OwnerID returns the identifier every todo operation of the request is
// scoped to.
func OwnerID(ctx context.Context) (model.UserID, error) {
	user := User(ctx)
	if user == nil {
		return "", errors.WithStack(ErrAnonymous)
	}

	return user.ID(), nil
}
