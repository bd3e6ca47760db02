package session

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/todo/internal/core/service"
	"github.com/bornholm/todo/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/todo/internal/http/handler/webui/common/component"
	"github.com/bornholm/todo/internal/http/middleware/authn/session/component"
	"github.com/pkg/errors"
)

const messageInvalidCredentials = "Username and password do not match"

func (h *Handler) getLoginPage(w http.ResponseWriter, r *http.Request) {
	vmodel := component.LoginPageVModel{}
	loginPage := component.LoginPage(vmodel)
	templ.Handler(loginPage).ServeHTTP(w, r)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		common.HandleError(w, r, common.NewBadFormError(r.Context()))
		return
	}

	ctx := r.Context()

	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.accounts.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			vmodel := component.LoginPageVModel{
				Username: username,
				Message:  messageInvalidCredentials,
			}

			loginPage := component.LoginPage(vmodel)
			templ.Handler(loginPage, templ.WithStatus(http.StatusUnprocessableEntity)).ServeHTTP(w, r)
			return
		}

		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	if err := h.storeSessionUser(w, r, user); err != nil {
		slog.ErrorContext(ctx, "could not store session user", slogx.Error(err))
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	redirectURL := commonComp.CurrentTodosURL(ctx)
	http.Redirect(w, r, string(redirectURL), http.StatusSeeOther)
}
