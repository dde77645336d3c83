package postgres

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"noteshare/internal/errs"
)

// CollabRepo implements CollaborationRepository using PostgreSQL.
type CollabRepo struct{ db *DB }

// NewCollabRepo constructs a collaboration repository.
func NewCollabRepo(db *DB) *CollabRepo { return &CollabRepo{db: db} }

// Add inserts a collaboration pair. The (note_id, user_id) unique constraint
// surfaces a duplicate grant as ErrAlreadyExists.
func (r *CollabRepo) Add(ctx context.Context, noteID, userID uuid.UUID) error {
	const q = `INSERT INTO collaborations (note_id, user_id) VALUES ($1, $2)`
	_, err := r.db.Pool.Exec(ctx, q, noteID, userID)
	switch {
	case isUniqueViolation(err):
		return errs.ErrAlreadyExists
	case isForeignKeyViolation(err):
		return errs.ErrNotFound
	}
	return err
}

// Remove deletes a collaboration pair.
func (r *CollabRepo) Remove(ctx context.Context, noteID, userID uuid.UUID) error {
	const q = `DELETE FROM collaborations WHERE note_id=$1 AND user_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, noteID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Exists reports whether the pair is recorded.
func (r *CollabRepo) Exists(ctx context.Context, noteID, userID uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM collaborations WHERE note_id=$1 AND user_id=$2)`
	var ok bool
	if err := r.db.Pool.QueryRow(ctx, q, noteID, userID).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}
