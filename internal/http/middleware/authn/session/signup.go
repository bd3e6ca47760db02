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

const (
	messageUsernameTaken    = "Please pick another username. User exists"
	messagePasswordMismatch = "Passwords did not match."
)

func (h *Handler) getSignupPage(w http.ResponseWriter, r *http.Request) {
	vmodel := component.SignupPageVModel{}
	signupPage := component.SignupPage(vmodel)
	templ.Handler(signupPage).ServeHTTP(w, r)
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		common.HandleError(w, r, common.NewBadFormError(r.Context()))
		return
	}

	ctx := r.Context()

	input := service.SignupInput{
		Username:  r.FormValue("username"),
		Password1: r.FormValue("password1"),
		Password2: r.FormValue("password2"),
	}

	user, err := h.accounts.Signup(ctx, input)
	if err != nil {
		// Passwords are never sent back to the client
		vmodel := component.SignupPageVModel{
			Username: input.Username,
		}

		switch {
		case errors.Is(err, service.ErrPasswordMismatch):
			vmodel.Message = messagePasswordMismatch
		case errors.Is(err, service.ErrUsernameTaken):
			vmodel.Message = messageUsernameTaken
		default:
			validationErr, ok := service.AsValidationError(err)
			if !ok {
				common.HandleError(w, r, errors.WithStack(err))
				return
			}

			vmodel.Errors = validationErr.Fields
		}

		signupPage := component.SignupPage(vmodel)
		templ.Handler(signupPage, templ.WithStatus(http.StatusUnprocessableEntity)).ServeHTTP(w, r)
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
