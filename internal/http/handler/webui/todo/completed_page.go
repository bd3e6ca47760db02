package todo

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	httpCtx "github.com/bornholm/todo/internal/http/context"
	"github.com/bornholm/todo/internal/http/handler/webui/common"
	"github.com/bornholm/todo/internal/http/handler/webui/todo/component"
	"github.com/pkg/errors"
)

func (h *Handler) getCompletedTodosPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillCompletedPageViewModel(r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	completedPage := component.CompletedPage(*vmodel)

	templ.Handler(completedPage).ServeHTTP(w, r)
}

func (h *Handler) fillCompletedPageViewModel(r *http.Request) (*component.CompletedPageVModel, error) {
	vmodel := &component.CompletedPageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillCompletedPageVModelTodos,
		h.fillCompletedPageVModelNavbar,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillCompletedPageVModelTodos(ctx context.Context, vmodel *component.CompletedPageVModel, r *http.Request) error {
	ownerID, err := httpCtx.OwnerID(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	todos, err := h.todos.ListCompleted(ctx, ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Todos = todos

	return nil
}

func (h *Handler) fillCompletedPageVModelNavbar(ctx context.Context, vmodel *component.CompletedPageVModel, r *http.Request) error {
	vmodel.Navbar = navbar(ctx)
	return nil
}
