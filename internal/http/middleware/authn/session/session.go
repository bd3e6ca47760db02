package session

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/core/port"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

const sessionKeyUserID = "user_id"

var errSessionNotFound = errors.New("session not found")

func (h *Handler) getSession(r *http.Request) (*sessions.Session, error) {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		// Undecodable cookies (rotated keys, tampering) yield a new empty session
		slog.DebugContext(r.Context(), "could not decode session", slogx.Error(err))

		if sess == nil {
			return nil, errors.WithStack(err)
		}
	}

	return sess, nil
}

func (h *Handler) storeSessionUser(w http.ResponseWriter, r *http.Request, user model.User) error {
	sess, err := h.getSession(r)
	if err != nil {
		return errors.WithStack(err)
	}

	sess.Values[sessionKeyUserID] = string(user.ID())

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (h *Handler) retrieveSessionUser(r *http.Request) (model.User, error) {
	sess, err := h.getSession(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	rawUserID, ok := sess.Values[sessionKeyUserID].(string)
	if !ok || rawUserID == "" {
		return nil, errors.WithStack(errSessionNotFound)
	}

	user, err := h.accounts.GetUser(r.Context(), model.UserID(rawUserID))
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, errors.WithStack(errSessionNotFound)
		}

		return nil, errors.WithStack(err)
	}

	return user, nil
}

func (h *Handler) clearSession(w http.ResponseWriter, r *http.Request) error {
	sess, err := h.getSession(r)
	if err != nil {
		return errors.WithStack(err)
	}

	sess.Values = map[any]any{}
	sess.Options.MaxAge = -1

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
