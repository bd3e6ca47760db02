package webui

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/bornholm/todo/internal/core/service"
	httpCtx "github.com/bornholm/todo/internal/http/context"
	"github.com/bornholm/todo/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/todo/internal/http/handler/webui/common/component"
	"github.com/bornholm/todo/internal/http/handler/webui/component"
	"github.com/bornholm/todo/internal/http/handler/webui/todo"
	"github.com/bornholm/todo/internal/http/middleware/authz"
)

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// NewHandler returns the web interface handler. The given session handler
// serves the login, signup and logout endpoints.
func NewHandler(todos *service.TodoManager, session http.Handler) *Handler {
	h := &Handler{
		mux: http.NewServeMux(),
	}

	isAuthenticated := authz.Middleware(http.HandlerFunc(h.redirectToLogin), authz.IsAuthenticated)
	isAnonymous := authz.Middleware(http.HandlerFunc(h.redirectToCurrentTodos), authz.IsAnonymous)

	h.mux.HandleFunc("GET /{$}", h.getHomePage)
	h.mux.HandleFunc("GET /healthz", h.getHealthz)
	h.mux.Handle("/login", isAnonymous(session))
	h.mux.Handle("/signup", isAnonymous(session))
	h.mux.Handle("/logout", isAuthenticated(session))

	mount(h.mux, "/todos/", isAuthenticated(todo.NewHandler(todos)))

	h.mux.HandleFunc("/", h.getNotFoundPage)

	return h
}

func (h *Handler) getHomePage(w http.ResponseWriter, r *http.Request) {
	vmodel := component.HomePageVModel{
		Navbar: commonComp.NavbarVModel{
			User: httpCtx.User(r.Context()),
		},
	}

	homePage := component.HomePage(vmodel)

	templ.Handler(homePage).ServeHTTP(w, r)
}

func (h *Handler) getHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) getNotFoundPage(w http.ResponseWriter, r *http.Request) {
	common.HandleError(w, r, common.NewHTTPError(http.StatusNotFound))
}

func (h *Handler) redirectToLogin(w http.ResponseWriter, r *http.Request) {
	redirectURL := commonComp.LoginURL(r.Context())
	http.Redirect(w, r, string(redirectURL), http.StatusSeeOther)
}

func (h *Handler) redirectToCurrentTodos(w http.ResponseWriter, r *http.Request) {
	redirectURL := commonComp.CurrentTodosURL(r.Context())
	http.Redirect(w, r, string(redirectURL), http.StatusSeeOther)
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

var _ http.Handler = &Handler{}
