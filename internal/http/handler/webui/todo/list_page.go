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

func (h *Handler) getCurrentTodosPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillListPageViewModel(r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	listPage := component.ListPage(*vmodel)

	templ.Handler(listPage).ServeHTTP(w, r)
}

func (h *Handler) fillListPageViewModel(r *http.Request) (*component.ListPageVModel, error) {
	vmodel := &component.ListPageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillListPageVModelTodos,
		h.fillListPageVModelNavbar,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillListPageVModelTodos(ctx context.Context, vmodel *component.ListPageVModel, r *http.Request) error {
	ownerID, err := httpCtx.OwnerID(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	todos, err := h.todos.ListActive(ctx, ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Todos = todos

	return nil
}

func (h *Handler) fillListPageVModelNavbar(ctx context.Context, vmodel *component.ListPageVModel, r *http.Request) error {
	vmodel.Navbar = navbar(ctx)
	return nil
}
