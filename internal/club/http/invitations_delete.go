package http

import (
	"errors"
	"net/http"

	"github.com/marlinswim/clubgate/internal/club/service"
	"github.com/marlinswim/clubgate/pkg/clubsdk"
	"github.com/marlinswim/clubgate/pkg/slogx"
)

type InvitationsDeleteHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Delete Invitation
//	@Description	Hard-delete an invitation in any state. Deleting an unknown id succeeds;
//	@Description	the operation is idempotent. Admin-only.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path	string	true	"Invitation ID"
//	@Success		204	"no content"
//	@Failure		401	{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{id} [delete].
func (h *InvitationsDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.InvitationService.DeleteInvitation(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			clubsdk.ErrInvalidRequest.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("failed to delete invitation", "err", err)
		clubsdk.ErrServerError.WriteError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
