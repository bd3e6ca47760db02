package authn

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/todo/internal/core/model"
	httpCtx "github.com/bornholm/todo/internal/http/context"
	"github.com/bornholm/todo/internal/http/handler/webui/common"
	"github.com/pkg/errors"
)

var (
	ErrSkipRequest = errors.New("skip request")
)

type Authenticator interface {
	Authenticate(w http.ResponseWriter, r *http.Request) (model.User, error)
}

// Middleware resolves the current user with the given authenticators and
// exposes it in the request context. When no authenticator recognizes the request,
// onUnauthorized is called or, if nil, the request continues anonymously.
func Middleware(onUnauthorized http.Handler, authenticators ...Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		var fn http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			for _, authenticator := range authenticators {
				user, err := authenticator.Authenticate(w, r)
				if err != nil {
					if errors.Is(err, ErrSkipRequest) {
						return
					}

					slog.ErrorContext(r.Context(), "could not authenticate user", slogx.Error(err))
					common.HandleError(w, r, err)
					return
				}

				if user == nil {
					continue
				}

				ctx := r.Context()
				ctx = httpCtx.SetUser(ctx, user)
				ctx = slogx.WithAttrs(ctx, slog.String("user", model.UserString(user)))

				r = r.WithContext(ctx)

				next.ServeHTTP(w, r)
				return
			}

			if onUnauthorized != nil {
				onUnauthorized.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r)
		}

		return fn
	}
}
