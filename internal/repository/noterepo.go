package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"noteshare/internal/model"
)

// NoteRepository provides note storage. Every query that names a note returns
// errs.ErrNotFound when the note does not exist.
type NoteRepository interface {
	// Create inserts a new note.
	Create(ctx context.Context, n *model.Note) error
	// Get loads a note by ID.
	Get(ctx context.Context, id uuid.UUID) (*model.Note, error)
	// GetOwner returns the owning user of a note.
	GetOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	// Update rewrites title and body and bumps updated_at.
	Update(ctx context.Context, id uuid.UUID, title, body string) error
	// Delete removes a note; collaboration rows cascade in storage.
	Delete(ctx context.Context, id uuid.UUID) error
	// ListVisible returns notes the user owns or collaborates on.
	ListVisible(ctx context.Context, userID uuid.UUID) ([]model.Note, error)
}
