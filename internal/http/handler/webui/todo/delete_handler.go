package todo

import (
	"net/http"

	"github.com/bornholm/todo/internal/core/model"
	httpCtx "github.com/bornholm/todo/internal/http/context"
	"github.com/bornholm/todo/internal/http/handler/webui/common"
	"github.com/pkg/errors"
)

func (h *Handler) handleTodoDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, err := httpCtx.OwnerID(ctx)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	todoID := model.TodoID(r.PathValue("id"))

	if err := h.todos.Delete(ctx, ownerID, todoID); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	redirectToCurrentTodos(w, r)
}
