package context

import (
	"context"
	"net/url"
)

const keyCurrentURL contextKey = "currentURL"

func CurrentURL(ctx context.Context) *url.URL {
	currentURL, ok := ctx.Value(keyCurrentURL).(*url.URL)
	if !ok {
		return &url.URL{Path: "/"}
	}

	copy := *currentURL

	return &copy
}

func SetCurrentURL(ctx context.Context, currentURL *url.URL) context.Context {
	return context.WithValue(ctx, keyCurrentURL, currentURL)
}
