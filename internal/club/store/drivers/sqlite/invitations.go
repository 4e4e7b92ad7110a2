package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/marlinswim/clubgate/internal/club/domain"
)

type invitationsRepo struct {
	q dbtx
}

const invitationColumns = `id, email, token_hash, role, status, created_by,
	expires_at, accepted_at, accepted_by, created_at, updated_at`

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO invitations (id, email, token_hash, role, status, created_by, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		inv.ID,
		inv.Email,
		inv.TokenHash,
		string(inv.Role),
		string(domain.InvitationPending),
		inv.CreatedBy,
		inv.ExpiresAt.UTC(),
	)
	return err
}

func (r *invitationsRepo) GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+invitationColumns+`
		FROM invitations
		WHERE id = ?`, id)
	return scanInvitation(row)
}

func (r *invitationsRepo) FindPendingByEmail(ctx context.Context, email string) (domain.Invitation, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+invitationColumns+`
		FROM invitations
		WHERE email = ? AND status = 'pending'
		LIMIT 1`, email)
	return scanInvitation(row)
}

func (r *invitationsRepo) FindPendingByEmailAndTokenHash(
	ctx context.Context,
	email, tokenHash string,
) (domain.Invitation, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+invitationColumns+`
		FROM invitations
		WHERE email = ? AND token_hash = ? AND status = 'pending'
		LIMIT 1`, email, tokenHash)
	return scanInvitation(row)
}

func (r *invitationsRepo) RotateInvitationToken(
	ctx context.Context,
	id, tokenHash string,
	expiresAt time.Time,
) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE invitations
		SET token_hash = ?, expires_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		tokenHash, expiresAt.UTC(), id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *invitationsRepo) MarkInvitationAccepted(ctx context.Context, id, acceptedBy string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE invitations
		SET status = 'accepted',
		    accepted_at = CURRENT_TIMESTAMP,
		    accepted_by = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		acceptedBy, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *invitationsRepo) DeleteInvitation(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM invitations WHERE id = ?`, id)
	return err
}

func (r *invitationsRepo) ListInvitations(ctx context.Context) ([]domain.Invitation, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+invitationColumns+`
		FROM invitations
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvitation(row rowScanner) (domain.Invitation, error) {
	var (
		inv        domain.Invitation
		role       string
		status     string
		acceptedAt sql.NullTime
		acceptedBy sql.NullString
	)

	err := row.Scan(
		&inv.ID,
		&inv.Email,
		&inv.TokenHash,
		&role,
		&status,
		&inv.CreatedBy,
		&inv.ExpiresAt,
		&acceptedAt,
		&acceptedBy,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}

	inv.Role = domain.Role(role)
	inv.Status = domain.InvitationStatus(status)
	inv.AcceptedAt = mapNullTimePtr(acceptedAt)
	inv.AcceptedBy = mapNullString(acceptedBy)
	return inv, nil
}

// requireRowAffected turns a zero-row UPDATE into ErrNotFound so services can
// report missing ids without a separate read.
func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}
