package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"noteshare/internal/errs"
	"noteshare/internal/repository"
)

// CollabService manages the collaborator set of a note. Only the note's owner
// may grant or revoke access.
type CollabService interface {
	// Add grants collaborator access to a user; the user must exist.
	Add(ctx context.Context, requesterID, noteID, userID uuid.UUID) error
	// Remove revokes collaborator access; ErrNotFound if never granted.
	Remove(ctx context.Context, requesterID, noteID, userID uuid.UUID) error
}

type CollabServiceImpl struct {
	notes   repository.NoteRepository
	collabs repository.CollaborationRepository
	users   repository.UserRepository
}

// NewCollabService constructs CollabService with required storage.
func NewCollabService(notes repository.NoteRepository, collabs repository.CollaborationRepository, users repository.UserRepository) *CollabServiceImpl {
	return &CollabServiceImpl{notes: notes, collabs: collabs, users: users}
}

// requireOwner resolves the note's owner and compares with the requester.
// A missing note propagates ErrNotFound before any permission comparison.
func (s *CollabServiceImpl) requireOwner(ctx context.Context, requesterID, noteID uuid.UUID) error {
	owner, err := s.notes.GetOwner(ctx, noteID)
	if err != nil {
		return err
	}
	if owner != requesterID {
		return fmt.Errorf("%w: only the owner manages collaborators", errs.ErrForbidden)
	}
	return nil
}

// Add grants collaborator access. Granting to the owner themselves and
// duplicate grants both fail with ErrAlreadyExists.
func (s *CollabServiceImpl) Add(ctx context.Context, requesterID, noteID, userID uuid.UUID) error {
	if err := s.requireOwner(ctx, requesterID, noteID); err != nil {
		return err
	}
	if userID == requesterID {
		return fmt.Errorf("%w: owner already has full access", errs.ErrAlreadyExists)
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.collabs.Add(ctx, noteID, userID)
}

// Remove revokes collaborator access.
func (s *CollabServiceImpl) Remove(ctx context.Context, requesterID, noteID, userID uuid.UUID) error {
	if err := s.requireOwner(ctx, requesterID, noteID); err != nil {
		return err
	}
	return s.collabs.Remove(ctx, noteID, userID)
}
