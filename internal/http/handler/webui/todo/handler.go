package todo

import (
	"context"
	"net/http"

	"github.com/bornholm/todo/internal/core/service"
	httpCtx "github.com/bornholm/todo/internal/http/context"
	commonComp "github.com/bornholm/todo/internal/http/handler/webui/common/component"
)

type Handler struct {
	mux   *http.ServeMux
	todos *service.TodoManager
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(todos *service.TodoManager) *Handler {
	h := &Handler{
		mux:   http.NewServeMux(),
		todos: todos,
	}

	h.mux.HandleFunc("GET /current", h.getCurrentTodosPage)
	h.mux.HandleFunc("GET /completed", h.getCompletedTodosPage)
	h.mux.HandleFunc("GET /create", h.getTodoCreatePage)
	h.mux.HandleFunc("POST /create", h.handleTodoCreate)
	h.mux.HandleFunc("GET /{id}", h.getTodoEditPage)
	h.mux.HandleFunc("POST /{id}", h.handleTodoUpdate)
	h.mux.HandleFunc("POST /{id}/complete", h.handleTodoComplete)
	h.mux.HandleFunc("POST /{id}/delete", h.handleTodoDelete)

	return h
}

func navbar(ctx context.Context) commonComp.NavbarVModel {
	return commonComp.NavbarVModel{
		User: httpCtx.User(ctx),
	}
}

func redirectToCurrentTodos(w http.ResponseWriter, r *http.Request) {
	redirectURL := commonComp.CurrentTodosURL(r.Context())
	http.Redirect(w, r, string(redirectURL), http.StatusSeeOther)
}

var _ http.Handler = &Handler{}
