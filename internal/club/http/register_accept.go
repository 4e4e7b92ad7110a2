package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/marlinswim/clubgate/internal/club/service"
	"github.com/marlinswim/clubgate/pkg/clubsdk"
	"github.com/marlinswim/clubgate/pkg/slogx"
)

type RegisterAcceptHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Accept Invitation
//	@Description	Mark an invitation accepted on behalf of an existing user. The invitation
//	@Description	id comes from a prior /v1/register/verify call. This is the split-step
//	@Description	variant for integrations that create accounts elsewhere; the /v1/register
//	@Description	endpoint does verification, account creation and acceptance in one call.
//	@Tags			Registration
//	@Accept			json
//	@Produce		json
//	@Param			request	body	clubsdk.AcceptRequest	true	"Invitation id and accepting user id"
//	@Success		204		"no content"
//	@Failure		400		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		410		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/register/accept [post].
func (h *RegisterAcceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req clubsdk.AcceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		clubsdk.NewAPIError(http.StatusBadRequest,
			clubsdk.ErrorCodeInvalidRequest, "Invalid JSON body").WriteError(w)
		return
	}

	if err := h.InvitationService.AcceptInvitation(ctx, req.InvitationID, req.UserID); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			clubsdk.NewAPIError(http.StatusBadRequest,
				clubsdk.ErrorCodeInvalidRequest, "invitation_id and user_id are required").WriteError(w)
		case errors.Is(err, service.ErrInvitationNotFound):
			clubsdk.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrInvitationNotPending):
			clubsdk.ErrInvalidState.WriteError(w)
		case errors.Is(err, service.ErrInvitationExpired):
			clubsdk.ErrExpired.WriteError(w)
		default:
			log.Error("failed to accept invitation", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
