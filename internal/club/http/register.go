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

type RegisterHandler struct {
	RegistrationService *service.RegistrationService
}

// ServeHTTP godoc
//
//	@Summary		Register
//	@Description	Create a member account from a valid invitation link. The invitation is
//	@Description	verified, the account created, and the invitation accepted in a single
//	@Description	transaction; the account's role comes from the invitation.
//	@Tags			Registration
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clubsdk.RegisterRequest		true	"Token, email, name and password"
//	@Success		201		{object}	clubsdk.RegisterResponse	"user"
//	@Failure		400		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		410		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req clubsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		clubsdk.NewAPIError(http.StatusBadRequest,
			clubsdk.ErrorCodeInvalidRequest, "Invalid JSON body").WriteError(w)
		return
	}

	user, err := h.RegistrationService.Register(ctx, req.Token, req.Email, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			clubsdk.NewAPIError(http.StatusBadRequest,
				clubsdk.ErrorCodeInvalidRequest,
				"name is required and the password must be at least 8 characters").WriteError(w)
		case errors.Is(err, service.ErrInvitationInvalid):
			clubsdk.ErrInvalidToken.WriteError(w)
		case errors.Is(err, service.ErrInvitationExpired):
			clubsdk.ErrExpired.WriteError(w)
		case errors.Is(err, service.ErrInvitationNotPending):
			clubsdk.ErrInvalidState.WriteError(w)
		case errors.Is(err, service.ErrAccountExists):
			clubsdk.NewAPIError(http.StatusConflict,
				clubsdk.ErrorCodeConflict, "An account already exists for this email").WriteError(w)
		default:
			log.Error("failed to register", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, clubsdk.RegisterResponse{
		User: clubsdk.User{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role.String(),
		},
	})
}
