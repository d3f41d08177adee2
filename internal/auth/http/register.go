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

type RegisterHandler struct {
	RegistrationService *service.RegistrationService
}

// ServeHTTP handles POST /v1/auth/register. Failures are reported as a bare
// message string: either the first violated validation rule or the duplicate
// email message.
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var in validate.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	accountID, err := h.RegistrationService.Register(ctx, in)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			httpx.WriteMessage(w, http.StatusBadRequest, verr.Error())
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteMessage(w, http.StatusBadRequest, "Email already exists")
		default:
			log.Error("registration failed", "err", err)
			httpx.WriteMessage(w, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, registerResponse{
		Message: "Registered successfully",
		User:    accountID,
	})
}
