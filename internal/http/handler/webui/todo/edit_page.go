package todo

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/core/service"
	httpCtx "github.com/bornholm/todo/internal/http/context"
	"github.com/bornholm/todo/internal/http/handler/webui/common"
	"github.com/bornholm/todo/internal/http/handler/webui/todo/component"
	"github.com/pkg/errors"
)

func (h *Handler) getTodoEditPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, err := httpCtx.OwnerID(ctx)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	todoID := model.TodoID(r.PathValue("id"))

	todo, err := h.todos.GetForEdit(ctx, ownerID, todoID)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	vmodel := component.FormPageVModel{
		Navbar: navbar(ctx),
		Form:   component.NewEditForm(todo),
		Todo:   todo,
	}

	editPage := component.FormPage(vmodel)

	templ.Handler(editPage).ServeHTTP(w, r)
}

func (h *Handler) handleTodoUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		common.HandleError(w, r, common.NewBadFormError(r.Context()))
		return
	}

	ownerID, err := httpCtx.OwnerID(ctx)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	todoID := model.TodoID(r.PathValue("id"))

	input := service.TodoInput{
		Title: r.FormValue("title"),
		Memo:  r.FormValue("memo"),
	}

	if _, err := h.todos.Update(ctx, ownerID, todoID, input); err != nil {
		validationErr, ok := service.AsValidationError(err)
		if !ok {
			common.HandleError(w, r, errors.WithStack(err))
			return
		}

		// The record is unchanged, display it along with the rejected values
		todo, err := h.todos.GetForEdit(ctx, ownerID, todoID)
		if err != nil {
			common.HandleError(w, r, errors.WithStack(err))
			return
		}

		form := component.NewEditForm(todo)
		form.Title = input.Title
		form.Memo = input.Memo
		form.Errors = validationErr.Fields
		form.Message = messageInvalidTodo

		vmodel := component.FormPageVModel{
			Navbar: navbar(ctx),
			Form:   form,
			Todo:   todo,
		}

		editPage := component.FormPage(vmodel)
		templ.Handler(editPage, templ.WithStatus(http.StatusUnprocessableEntity)).ServeHTTP(w, r)
		return
	}

	redirectToCurrentTodos(w, r)
}
