package todo

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/todo/internal/core/service"
	httpCtx "github.com/bornholm/todo/internal/http/context"
	"github.com/bornholm/todo/internal/http/handler/webui/common"
	"github.com/bornholm/todo/internal/http/handler/webui/todo/component"
	"github.com/pkg/errors"
)

func (h *Handler) getTodoCreatePage(w http.ResponseWriter, r *http.Request) {
	vmodel := component.FormPageVModel{
		Navbar: navbar(r.Context()),
		Form:   component.NewCreateForm(),
	}

	createPage := component.FormPage(vmodel)

	templ.Handler(createPage).ServeHTTP(w, r)
}

func (h *Handler) handleTodoCreate(w http.ResponseWriter, r *http.Request) {
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

	input := service.TodoInput{
		Title: r.FormValue("title"),
		Memo:  r.FormValue("memo"),
	}

	if _, err := h.todos.Create(ctx, ownerID, input); err != nil {
		validationErr, ok := service.AsValidationError(err)
		if !ok {
			common.HandleError(w, r, errors.WithStack(err))
			return
		}

		form := component.NewCreateForm()
		form.Title = input.Title
		form.Memo = input.Memo
		form.Errors = validationErr.Fields
		form.Message = messageInvalidTodo

		vmodel := component.FormPageVModel{
			Navbar: navbar(ctx),
			Form:   form,
		}

		createPage := component.FormPage(vmodel)
		templ.Handler(createPage, templ.WithStatus(http.StatusUnprocessableEntity)).ServeHTTP(w, r)
		return
	}

	redirectToCurrentTodos(w, r)
}

const messageInvalidTodo = "Bad data passed in. Try again."
