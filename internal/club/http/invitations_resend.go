package http

import (
	"errors"
	"net/http"

	"github.com/marlinswim/clubgate/internal/club/service"
	"github.com/marlinswim/clubgate/pkg/clubsdk"
	"github.com/marlinswim/clubgate/pkg/slogx"
)

type InvitationsResendHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Resend Invitation
//	@Description	Rotate a pending invitation's token and expiry and send a fresh email.
//	@Description	The previously emailed link stops working immediately. Only pending
//	@Description	invitations can be resent. Admin-only.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path	string	true	"Invitation ID"
//	@Success		204	"no content"
//	@Failure		401	{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		502	{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{id}/resend [post].
func (h *InvitationsResendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	err := h.InvitationService.ResendInvitation(ctx, r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvitationNotFound):
			clubsdk.NewAPIError(http.StatusNotFound,
				clubsdk.ErrorCodeNotFound, "Invitation not found").WriteError(w)
		case errors.Is(err, service.ErrInvitationNotPending):
			clubsdk.ErrInvalidState.WriteError(w)
		case errors.Is(err, service.ErrDispatchFailed):
			clubsdk.NewAPIError(http.StatusBadGateway,
				clubsdk.ErrorCodeDispatchError, "Invitation email could not be delivered").WriteError(w)
		case errors.Is(err, service.ErrInvalidRequest):
			clubsdk.ErrInvalidRequest.WriteError(w)
		default:
			log.Error("failed to resend invitation", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
