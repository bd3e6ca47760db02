package session

import (
	"net/http"

	"github.com/bornholm/todo/internal/core/service"
	"github.com/gorilla/sessions"
)

type Handler struct {
	mux          *http.ServeMux
	sessionStore sessions.Store
	sessionName  string
	accounts     *service.AccountManager
}

// ServeHTTP implements [http.Handler].
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(sessionStore sessions.Store, accounts *service.AccountManager, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)
	h := &Handler{
		mux:          http.NewServeMux(),
		sessionStore: sessionStore,
		sessionName:  opts.SessionName,
		accounts:     accounts,
	}

	rateLimit := opts.RateLimit
	if rateLimit == nil {
		rateLimit = func(next http.Handler) http.Handler { return next }
	}

	h.mux.HandleFunc("GET /login", h.getLoginPage)
	h.mux.Handle("POST /login", rateLimit(http.HandlerFunc(h.handleLogin)))
	h.mux.HandleFunc("GET /signup", h.getSignupPage)
	h.mux.Handle("POST /signup", rateLimit(http.HandlerFunc(h.handleSignup)))
	h.mux.HandleFunc("POST /logout", h.handleLogout)

	return h
}

var _ http.Handler = &Handler{}
