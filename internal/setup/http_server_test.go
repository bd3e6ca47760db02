package setup

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/bornholm/todo/internal/config"
	"github.com/pkg/errors"
)

func TestHTTPServer(t *testing.T) {
	server := newTestServer(t)

	alice := newTestClient(t, server)
	bob := newTestClient(t, server)

	t.Run("HealthCheck", func(t *testing.T) {
		res, body := alice.get(t, "/healthz")
		expectStatus(t, res, http.StatusOK)

		if e, g := "ok", body; e != g {
			t.Errorf("body: expected %s, got %s", e, g)
		}
	})

	t.Run("AnonymousIsRedirectedToLogin", func(t *testing.T) {
		res, _ := alice.get(t, "/todos/current")
		expectRedirect(t, res, "/login")

		res, _ = alice.post(t, "/todos/create", url.Values{"title": {"Sneaky"}})
		expectRedirect(t, res, "/login")
	})

	t.Run("SignupPasswordMismatch", func(t *testing.T) {
		res, body := alice.post(t, "/signup", url.Values{
			"username":  {"alice"},
			"password1": {"first password"},
			"password2": {"second password"},
		})
		expectStatus(t, res, http.StatusUnprocessableEntity)
		expectContains(t, body, "Passwords did not match.")
		expectNotContains(t, body, "first password")

		res, _ = alice.post(t, "/login", url.Values{"username": {"alice"}, "password": {"first password"}})
		expectStatus(t, res, http.StatusUnprocessableEntity)
	})

	alice.signup(t, "alice", "alice password")
	bob.signup(t, "bob", "bob password")

	t.Run("SignupDuplicateUsername", func(t *testing.T) {
		intruder := newTestClient(t, server)

		res, body := intruder.post(t, "/signup", url.Values{
			"username":  {"alice"},
			"password1": {"another password"},
			"password2": {"another password"},
		})
		expectStatus(t, res, http.StatusUnprocessableEntity)
		expectContains(t, body, "Please pick another username. User exists")

		// The existing account keeps its password
		res, _ = intruder.post(t, "/login", url.Values{"username": {"alice"}, "password": {"another password"}})
		expectStatus(t, res, http.StatusUnprocessableEntity)
	})

	t.Run("CreateWithEmptyTitle", func(t *testing.T) {
		res, body := alice.post(t, "/todos/create", url.Values{"title": {"   "}, "memo": {"kept memo"}})
		expectStatus(t, res, http.StatusUnprocessableEntity)
		expectContains(t, body, "This field is required.")
		expectContains(t, body, "kept memo")

		_, body = alice.get(t, "/todos/current")
		expectContains(t, body, "Current Todos (0)")
	})

	res, _ := alice.post(t, "/todos/create", url.Values{"title": {"Buy milk"}, "memo": {"**semi-skimmed**"}})
	expectRedirect(t, res, "/todos/current")

	_, body := alice.get(t, "/todos/current")
	expectContains(t, body, "Buy milk")
	expectContains(t, body, "<strong>semi-skimmed</strong>")

	todoPath := findTodoPath(t, body)

	t.Run("OtherUsersGetNotFound", func(t *testing.T) {
		_, body := bob.get(t, "/todos/current")
		expectNotContains(t, body, "Buy milk")

		res, _ := bob.get(t, todoPath)
		expectStatus(t, res, http.StatusNotFound)

		res, _ = bob.post(t, todoPath, url.Values{"title": {"Hijacked"}})
		expectStatus(t, res, http.StatusNotFound)

		res, _ = bob.post(t, todoPath+"/complete", nil)
		expectStatus(t, res, http.StatusNotFound)

		res, _ = bob.post(t, todoPath+"/delete", nil)
		expectStatus(t, res, http.StatusNotFound)

		res, body = alice.get(t, todoPath)
		expectStatus(t, res, http.StatusOK)
		expectContains(t, body, `value="Buy milk"`)
	})

	t.Run("Update", func(t *testing.T) {
		res, _ := alice.post(t, todoPath, url.Values{"title": {""}, "memo": {"oat"}})
		expectStatus(t, res, http.StatusUnprocessableEntity)

		res, _ = alice.post(t, todoPath, url.Values{"title": {"Buy oat milk"}, "memo": {"oat"}})
		expectRedirect(t, res, "/todos/current")

		_, body := alice.get(t, todoPath)
		expectContains(t, body, `value="Buy oat milk"`)
	})

	t.Run("Complete", func(t *testing.T) {
		res, _ := alice.post(t, todoPath+"/complete", nil)
		expectRedirect(t, res, "/todos/current")

		_, body := alice.get(t, "/todos/current")
		expectNotContains(t, body, "Buy oat milk")

		_, body = alice.get(t, "/todos/completed")
		expectContains(t, body, "Buy oat milk")

		_, body = alice.get(t, todoPath)
		expectContains(t, body, "Complete again")
	})

	t.Run("Delete", func(t *testing.T) {
		res, _ := alice.post(t, todoPath+"/delete", nil)
		expectRedirect(t, res, "/todos/current")

		res, _ = alice.get(t, todoPath)
		expectStatus(t, res, http.StatusNotFound)

		_, body := alice.get(t, "/todos/completed")
		expectNotContains(t, body, "Buy oat milk")
	})

	t.Run("LogoutAndLogin", func(t *testing.T) {
		res, _ := alice.post(t, "/logout", nil)
		expectRedirect(t, res, "/")

		res, _ = alice.get(t, "/todos/current")
		expectRedirect(t, res, "/login")

		res, body := alice.post(t, "/login", url.Values{"username": {"alice"}, "password": {"alice"}})
		expectStatus(t, res, http.StatusUnprocessableEntity)
		expectContains(t, body, "Username and password do not match")

		res, _ = alice.post(t, "/login", url.Values{"username": {"alice"}, "password": {"alice password"}})
		expectRedirect(t, res, "/todos/current")

		res, _ = alice.get(t, "/todos/current")
		expectStatus(t, res, http.StatusOK)

		res, _ = alice.get(t, "/login")
		expectRedirect(t, res, "/todos/current")
	})

	t.Run("Metrics", func(t *testing.T) {
		res, body := alice.get(t, "/metrics")
		expectStatus(t, res, http.StatusOK)
		expectContains(t, body, "todo_todo_operations_total")
	})
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Setenv("TODO_STORAGE_DATABASE_DSN", filepath.Join(t.TempDir(), "data.sqlite"))
	t.Setenv("TODO_HTTP_RATE_LIMIT_ENABLED", "false")
	t.Setenv("TODO_HTTP_SESSION_KEYS", "test-session-key-0123456789abcdef")

	conf, err := config.Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	ctx := context.Background()

	server, err := NewHTTPServerFromConfig(ctx, conf)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	handler, err := server.Handler()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	httpServer := httptest.NewServer(handler)
	t.Cleanup(httpServer.Close)

	t.Cleanup(func() {
		db, err := getGormDatabaseFromConfig(ctx, conf)
		if err != nil {
			return
		}

		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return httpServer
}

type testClient struct {
	client  *http.Client
	baseURL string
}

func newTestClient(t *testing.T, server *httptest.Server) *testClient {
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return &testClient{
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		baseURL: server.URL,
	}
}

func (c *testClient) get(t *testing.T, path string) (*http.Response, string) {
	res, err := c.client.Get(c.baseURL + path)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return res, readBody(t, res)
}

func (c *testClient) post(t *testing.T, path string, values url.Values) (*http.Response, string) {
	res, err := c.client.PostForm(c.baseURL+path, values)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return res, readBody(t, res)
}

func (c *testClient) signup(t *testing.T, username, password string) {
	res, body := c.post(t, "/signup", url.Values{
		"username":  {username},
		"password1": {password},
		"password2": {password},
	})

	if res.StatusCode != http.StatusSeeOther {
		t.Fatalf("could not sign up '%s': unexpected status %d: %s", username, res.StatusCode, body)
	}
}

func readBody(t *testing.T, res *http.Response) string {
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return string(data)
}

var todoPathPattern = regexp.MustCompile(`/todos/[0-9a-v]{20}`)

func findTodoPath(t *testing.T, body string) string {
	path := todoPathPattern.FindString(body)
	if path == "" {
		t.Fatalf("could not find todo link in body: %s", body)
	}

	return path
}

func expectStatus(t *testing.T, res *http.Response, expected int) {
	t.Helper()

	if e, g := expected, res.StatusCode; e != g {
		t.Errorf("res.StatusCode: expected %d, got %d (%s %s)", e, g, res.Request.Method, res.Request.URL.Path)
	}
}

func expectRedirect(t *testing.T, res *http.Response, location string) {
	t.Helper()

	expectStatus(t, res, http.StatusSeeOther)

	if e, g := location, res.Header.Get("Location"); e != g {
		t.Errorf("Location: expected %s, got %s", e, g)
	}
}

func expectContains(t *testing.T, body string, s string) {
	t.Helper()

	if !strings.Contains(body, s) {
		t.Errorf("body: expected to contain '%s', got: %s", s, body)
	}
}

func expectNotContains(t *testing.T, body string, s string) {
	t.Helper()

	if strings.Contains(body, s) {
		t.Errorf("body: expected not to contain '%s'", s)
	}
}
