package todo

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/todo/internal/core/model"
	httpCtx "github.com/bornholm/todo/internal/http/context"
	"github.com/bornholm/todo/internal/http/handler/webui/common"
	"github.com/pkg/errors"
)

func (h *Handler) handleTodoComplete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, err := httpCtx.OwnerID(ctx)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	todoID := model.TodoID(r.PathValue("id"))

	todo, err := h.todos.Complete(ctx, ownerID, todoID)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	slog.DebugContext(ctx, "todo completed", slog.String("todo_id", string(todo.ID())))

	redirectToCurrentTodos(w, r)
}
