package url

import (
	"net/url"
	"testing"
)

func TestMutate(t *testing.T) {
	type testCase struct {
		Name     string
		Base     string
		Funcs    []MutationFunc
		Expected string
	}

	testCases := []testCase{
		{
			Name:     "RootWithPath",
			Base:     "/",
			Funcs:    []MutationFunc{WithPath("/todos", "current")},
			Expected: "/todos/current",
		},
		{
			Name:     "PrefixedWithPath",
			Base:     "/app/",
			Funcs:    []MutationFunc{WithPath("/todos/", "abc", "delete")},
			Expected: "/app/todos/abc/delete",
		},
		{
			Name:     "TrailingSlash",
			Base:     "/app",
			Funcs:    []MutationFunc{WithPath("/todos/")},
			Expected: "/app/todos/",
		},
		{
			Name:     "Values",
			Base:     "/login?foo=bar",
			Funcs:    []MutationFunc{WithValues(url.Values{"next": []string{"/todos/current"}}), WithoutValues("foo")},
			Expected: "/login?next=%2Ftodos%2Fcurrent",
		},
		{
			Name:     "ValuesReset",
			Base:     "/login?foo=bar",
			Funcs:    []MutationFunc{WithValuesReset()},
			Expected: "/login",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			base, err := url.Parse(tc.Base)
			if err != nil {
				t.Fatalf("%+v", err)
			}

			mutated := Mutate(base, tc.Funcs...)

			if e, g := tc.Expected, mutated.String(); e != g {
				t.Errorf("mutated.String(): expected %s, got %s", e, g)
			}

			if e, g := tc.Base, base.String(); e != g {
				t.Errorf("base.String(): expected base url to be unchanged (%s), got %s", e, g)
			}
		})
	}
}
