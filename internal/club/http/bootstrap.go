package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/marlinswim/clubgate/internal/club/service"
	"github.com/marlinswim/clubgate/pkg/clubsdk"
	"github.com/marlinswim/clubgate/pkg/httpx"
	"github.com/marlinswim/clubgate/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP godoc
//
//	@Summary		Bootstrap First Administrator
//	@Description	Create the initial administrator account. Requires the deployment's
//	@Description	bootstrap token and only succeeds while no users exist; afterwards the
//	@Description	endpoint is permanently closed and all accounts come from invitations.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clubsdk.BootstrapRequest	true	"Bootstrap token and admin details"
//	@Success		201		{object}	clubsdk.BootstrapResponse	"user"
//	@Failure		400		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req clubsdk.BootstrapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		clubsdk.NewAPIError(http.StatusBadRequest,
			clubsdk.ErrorCodeInvalidRequest, "Invalid JSON body").WriteError(w)
		return
	}

	user, err := h.BootstrapService.CreateFirstAdmin(ctx,
		req.BootstrapToken, req.Email, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBootstrapToken):
			clubsdk.NewAPIError(http.StatusUnauthorized,
				clubsdk.ErrorCodeUnauthorized, "Invalid bootstrap token").WriteError(w)
		case errors.Is(err, service.ErrBootstrapDone):
			clubsdk.NewAPIError(http.StatusConflict,
				clubsdk.ErrorCodeConflict, "Bootstrap already completed").WriteError(w)
		case errors.Is(err, service.ErrInvalidRequest):
			clubsdk.NewAPIError(http.StatusBadRequest,
				clubsdk.ErrorCodeInvalidRequest,
				"a valid email, name and a password of at least 8 characters are required").WriteError(w)
		default:
			log.Error("failed to bootstrap", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, clubsdk.BootstrapResponse{
		User: clubsdk.User{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role.String(),
		},
	})
}
