package authz

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/todo/internal/core/model"
	httpCtx "github.com/bornholm/todo/internal/http/context"
	"github.com/pkg/errors"
)

// AssertFunc tells if the user of the request may go further. User is nil
// for anonymous requests.
type AssertFunc func(ctx context.Context, user model.User) (bool, error)

func IsAuthenticated(ctx context.Context, user model.User) (bool, error) {
	return user != nil, nil
}

var IsAnonymous = Not(IsAuthenticated)

func Not(fn AssertFunc) AssertFunc {
	return func(ctx context.Context, user model.User) (bool, error) {
		allowed, err := fn(ctx, user)
		if err != nil {
			return false, errors.WithStack(err)
		}

		return !allowed, nil
	}
}

// Assert returns true only when every given assertion holds.
func Assert(ctx context.Context, user model.User, funcs ...AssertFunc) (bool, error) {
	for _, fn := range funcs {
		allowed, err := fn(ctx, user)
		if err != nil {
			return false, errors.WithStack(err)
		}

		if !allowed {
			return false, nil
		}
	}

	return true, nil
}

// Middleware serves the request with denied when an assertion does not
// hold. A nil denied handler responds with 403 Forbidden.
func Middleware(denied http.Handler, funcs ...AssertFunc) func(h http.Handler) http.Handler {
	if denied == nil {
		denied = http.HandlerFunc(forbidden)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			allowed, err := Assert(ctx, httpCtx.User(ctx), funcs...)
			if err != nil {
				slog.ErrorContext(ctx, "could not assert user authorizations", slogx.Error(err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if !allowed {
				slog.DebugContext(ctx, "request denied", slog.String("path", r.URL.Path))
				denied.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func forbidden(w http.ResponseWriter, r *http.Request) {
	http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
}
