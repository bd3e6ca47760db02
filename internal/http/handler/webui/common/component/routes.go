package component

import (
	"context"

	"github.com/a-h/templ"
	"github.com/bornholm/todo/internal/core/model"
	httpCtx "github.com/bornholm/todo/internal/http/context"
	"github.com/bornholm/todo/internal/http/url"
)

// BaseURL resolves the given path segments against the application base URL.
func BaseURL(ctx context.Context, paths ...string) templ.SafeURL {
	baseURL := httpCtx.BaseURL(ctx)
	mutated := url.Mutate(baseURL, url.WithPath(paths...))
	return templ.SafeURL(mutated.String())
}

func MatchPath(ctx context.Context, paths ...string) bool {
	currentURL := httpCtx.CurrentURL(ctx)
	return currentURL.Path == string(BaseURL(ctx, paths...))
}

func HomeURL(ctx context.Context) templ.SafeURL {
	return BaseURL(ctx)
}

func LoginURL(ctx context.Context) templ.SafeURL {
	return BaseURL(ctx, "/login")
}

func CurrentTodosURL(ctx context.Context) templ.SafeURL {
	return BaseURL(ctx, "/todos/current")
}

func CompletedTodosURL(ctx context.Context) templ.SafeURL {
	return BaseURL(ctx, "/todos/completed")
}

func TodoURL(ctx context.Context, todoID model.TodoID, action ...string) templ.SafeURL {
	return BaseURL(ctx, append([]string{"/todos", string(todoID)}, action...)...)
}
