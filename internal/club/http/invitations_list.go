package http

import (
	"net/http"
	"time"

	"github.com/marlinswim/clubgate/internal/club/domain"
	"github.com/marlinswim/clubgate/internal/club/service"
	"github.com/marlinswim/clubgate/pkg/clubsdk"
	"github.com/marlinswim/clubgate/pkg/httpx"
	"github.com/marlinswim/clubgate/pkg/slogx"
)

type InvitationsListHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		List Invitations
//	@Description	List every invitation, newest first, including accepted and expired ones.
//	@Description	Expired is computed at request time; expired records are never deleted
//	@Description	automatically. Admin-only.
//	@Tags			Invitations
//	@Produce		json
//	@Success		200	{object}	clubsdk.ListInvitationsResponse	"invitations"
//	@Failure		401	{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Failure		403	{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Failure		500	{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations [get].
func (h *InvitationsListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invitations, err := h.InvitationService.ListInvitations(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list invitations", "err", err)
		clubsdk.ErrServerError.WriteError(w)
		return
	}

	now := time.Now().UTC()
	resp := clubsdk.ListInvitationsResponse{
		Invitations: make([]clubsdk.Invitation, 0, len(invitations)),
	}
	for _, inv := range invitations {
		resp.Invitations = append(resp.Invitations, clubsdk.Invitation{
			ID:         inv.ID,
			Email:      inv.Email,
			Role:       inv.Role.String(),
			Status:     string(inv.Status),
			Expired:    inv.Status == domain.InvitationPending && inv.Expired(now),
			CreatedBy:  inv.CreatedBy,
			ExpiresAt:  inv.ExpiresAt,
			AcceptedAt: inv.AcceptedAt,
			AcceptedBy: inv.AcceptedBy,
			CreatedAt:  inv.CreatedAt,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
