package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/parleyhq/parley/internal/auth/service"
	"github.com/parleyhq/parley/internal/auth/validate"
	"github.com/parleyhq/parley/pkg/httpx"
	"github.com/parleyhq/parley/pkg/slogx"
)

// AuthTokenHeader carries the bearer token on successful login. This header
// is the only place the token appears; the profile body stays token-free.
const AuthTokenHeader = "Auth-Token"

type LoginHandler struct {
	LoginService *service.LoginService
}

// ServeHTTP handles POST /v1/auth/login. The unknown-email and
// wrong-password messages are deliberately distinct, matching the public API
// this service replaces.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var in validate.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.LoginService.Login(ctx, in)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			httpx.WriteMessage(w, http.StatusBadRequest, verr.Error())
		case errors.Is(err, service.ErrEmailNotFound):
			httpx.WriteMessage(w, http.StatusBadRequest, "Email is not found")
		case errors.Is(err, service.ErrInvalidPassword):
			httpx.WriteMessage(w, http.StatusBadRequest, "Invalid password")
		default:
			log.Error("login failed", "err", err)
			httpx.WriteMessage(w, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	w.Header().Set(AuthTokenHeader, session.Token)
	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		Message: "Log in has been successfully",
		User: accountProfile{
			ID:       session.Account.ID,
			Name:     session.Account.Name,
			Avatar:   session.Account.Avatar,
			IsOnline: session.Account.IsOnline,
		},
	})
}
