package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"noteshare/internal/errs"
	"noteshare/internal/model"
	"noteshare/internal/repository"
)

// Guard decides whether a user may exercise a capability on a note.
//
// Policy: the owner holds every capability; a collaborator holds read and
// modify but never delete; anyone else holds nothing. Ownership is resolved
// first, so acting on a note that does not exist fails with ErrNotFound while
// acting on an existing note without rights fails with ErrForbidden.
type Guard struct {
	notes   repository.NoteRepository
	collabs repository.CollaborationRepository
}

// NewGuard constructs a Guard over note and collaboration storage.
func NewGuard(notes repository.NoteRepository, collabs repository.CollaborationRepository) *Guard {
	return &Guard{notes: notes, collabs: collabs}
}

// Authorize returns nil when the user may exercise the capability.
// Every decision reads current storage state; nothing is cached.
func (g *Guard) Authorize(ctx context.Context, userID, noteID uuid.UUID, capability model.Capability) error {
	owner, err := g.notes.GetOwner(ctx, noteID)
	if err != nil {
		return err
	}
	if owner == userID {
		return nil
	}
	if capability == model.CapDelete {
		return fmt.Errorf("%w: delete is owner-only", errs.ErrForbidden)
	}
	ok, err := g.collabs.Exists(ctx, noteID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: not a collaborator", errs.ErrForbidden)
	}
	return nil
}
