package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"noteshare/internal/errs"
	"noteshare/internal/model"
)

// NoteRepo implements NoteRepository using PostgreSQL.
type NoteRepo struct{ db *DB }

// NewNoteRepo constructs a note repository.
func NewNoteRepo(db *DB) *NoteRepo { return &NoteRepo{db: db} }

// Create inserts a new note row.
func (r *NoteRepo) Create(ctx context.Context, n *model.Note) error {
	const q = `
INSERT INTO notes (id, owner, title, body)
VALUES ($1, $2, $3, $4)`
	_, err := r.db.Pool.Exec(ctx, q, n.ID, n.Owner, n.Title, n.Body)
	if isForeignKeyViolation(err) {
		return errs.ErrNotFound
	}
	return err
}

// Get selects a note by ID.
func (r *NoteRepo) Get(ctx context.Context, id uuid.UUID) (*model.Note, error) {
	const q = `
SELECT id, owner, title, body, created_at, updated_at
FROM notes WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, id)
	var n model.Note
	if err := row.Scan(&n.ID, &n.Owner, &n.Title, &n.Body, &n.CreatedAt, &n.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// GetOwner returns the owning user of a note.
func (r *NoteRepo) GetOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	const q = `SELECT owner FROM notes WHERE id=$1`
	var owner uuid.UUID
	if err := r.db.Pool.QueryRow(ctx, q, id).Scan(&owner); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, errs.ErrNotFound
		}
		return uuid.Nil, err
	}
	return owner, nil
}

// Update rewrites title and body and bumps updated_at.
func (r *NoteRepo) Update(ctx context.Context, id uuid.UUID, title, body string) error {
	const q = `
UPDATE notes SET title=$2, body=$3, updated_at=now()
WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id, title, body)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes a note row; collaborations cascade via FK.
func (r *NoteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM notes WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// ListVisible returns notes owned by the user plus notes shared with them.
func (r *NoteRepo) ListVisible(ctx context.Context, userID uuid.UUID) ([]model.Note, error) {
	const q = `
SELECT DISTINCT n.id, n.owner, n.title, n.body, n.created_at, n.updated_at
FROM notes n
LEFT JOIN collaborations c ON c.note_id = n.id
WHERE n.owner = $1 OR c.user_id = $1
ORDER BY n.created_at`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Note
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.Owner, &n.Title, &n.Body, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
