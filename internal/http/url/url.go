package url

import (
	"net/url"
	"path"
	"strings"
)

type MutationFunc func(u *url.URL)

// Mutate applies the given mutations on a copy of the given url.
func Mutate(u *url.URL, funcs ...MutationFunc) *url.URL {
	copy := *u

	for _, fn := range funcs {
		fn(&copy)
	}

	return &copy
}

// WithPath appends the given segments to the url path.
func WithPath(paths ...string) MutationFunc {
	return func(u *url.URL) {
		segments := append([]string{u.Path}, paths...)
		joined := path.Join(segments...)

		if !strings.HasPrefix(joined, "/") {
			joined = "/" + joined
		}

		last := ""
		if len(paths) > 0 {
			last = paths[len(paths)-1]
		}

		if strings.HasSuffix(last, "/") && !strings.HasSuffix(joined, "/") {
			joined += "/"
		}

		u.Path = joined
	}
}

func WithValues(values url.Values) MutationFunc {
	return func(u *url.URL) {
		query := u.Query()

		for key, vals := range values {
			query.Del(key)
			for _, v := range vals {
				query.Add(key, v)
			}
		}

		u.RawQuery = query.Encode()
	}
}

func WithoutValues(keys ...string) MutationFunc {
	return func(u *url.URL) {
		query := u.Query()

		for _, key := range keys {
			query.Del(key)
		}

		u.RawQuery = query.Encode()
	}
}

func WithValuesReset() MutationFunc {
	return func(u *url.URL) {
		u.RawQuery = ""
	}
}
