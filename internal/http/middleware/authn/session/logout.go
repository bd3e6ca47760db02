package session

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/todo/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/todo/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.clearSession(w, r); err != nil {
		slog.ErrorContext(ctx, "could not clear session", slogx.Error(err))
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	redirectURL := commonComp.HomeURL(ctx)
	http.Redirect(w, r, string(redirectURL), http.StatusSeeOther)
}
