package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"noteshare/internal/errs"
)

// SessionRepo implements SessionRepository using PostgreSQL. Refresh tokens
// are stored verbatim; the row's presence is the sole revocation check.
type SessionRepo struct{ db *DB }

// NewSessionRepo constructs a session repository.
func NewSessionRepo(db *DB) *SessionRepo { return &SessionRepo{db: db} }

// Add records a refresh token as active. Inserting the same token twice is a no-op.
func (r *SessionRepo) Add(ctx context.Context, token string, userID uuid.UUID) error {
	const q = `
INSERT INTO refresh_tokens (token, user_id)
VALUES ($1, $2)
ON CONFLICT (token) DO NOTHING`
	_, err := r.db.Pool.Exec(ctx, q, token, userID)
	return err
}

// Verify fails with ErrRefreshNotFound if the token is not recorded.
func (r *SessionRepo) Verify(ctx context.Context, token string) error {
	const q = `SELECT 1 FROM refresh_tokens WHERE token=$1`
	var one int
	if err := r.db.Pool.QueryRow(ctx, q, token).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.ErrRefreshNotFound
		}
		return err
	}
	return nil
}

// Delete removes the token record.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	const q = `DELETE FROM refresh_tokens WHERE token=$1`
	_, err := r.db.Pool.Exec(ctx, q, token)
	return err
}
