package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// CollaborationRepository tracks the (note, user) collaboration pairs.
type CollaborationRepository interface {
	// Add records a collaboration; errs.ErrAlreadyExists on a duplicate pair.
	Add(ctx context.Context, noteID, userID uuid.UUID) error
	// Remove deletes a collaboration; errs.ErrNotFound if the pair is absent.
	Remove(ctx context.Context, noteID, userID uuid.UUID) error
	// Exists reports whether the pair is recorded. A missing note is simply
	// "not a collaborator", never an error.
	Exists(ctx context.Context, noteID, userID uuid.UUID) (bool, error)
}
