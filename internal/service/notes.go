package service

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"noteshare/internal/model"
	"noteshare/internal/repository"
)

// NoteService defines note lifecycle operations. Every operation that names
// an existing note consults the Guard before touching storage.
type NoteService interface {
	// Create inserts a note owned by the creator.
	Create(ctx context.Context, ownerID uuid.UUID, title, body string) (uuid.UUID, error)
	// Get returns a note the user may read.
	Get(ctx context.Context, userID, noteID uuid.UUID) (*model.Note, error)
	// Update rewrites a note the user may modify.
	Update(ctx context.Context, userID, noteID uuid.UUID, title, body string) error
	// Delete removes a note; owner only. Collaborations cascade in storage.
	Delete(ctx context.Context, userID, noteID uuid.UUID) error
	// List returns notes the user owns or collaborates on.
	List(ctx context.Context, userID uuid.UUID) ([]model.Note, error)
}

type NoteServiceImpl struct {
	notes repository.NoteRepository
	guard *Guard
}

// NewNoteService constructs NoteService with its storage and guard.
func NewNoteService(notes repository.NoteRepository, guard *Guard) *NoteServiceImpl {
	return &NoteServiceImpl{notes: notes, guard: guard}
}

// Create inserts a new note. No authorization: anyone creates their own notes.
func (s *NoteServiceImpl) Create(ctx context.Context, ownerID uuid.UUID, title, body string) (uuid.UUID, error) {
	if ownerID == uuid.Nil {
		return uuid.Nil, errors.New("validation: empty ownerID")
	}
	if title == "" {
		return uuid.Nil, errors.New("validation: empty title")
	}
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	n := &model.Note{ID: id, Owner: ownerID, Title: title, Body: body}
	if err := s.notes.Create(ctx, n); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Get fetches a note after a read check.
func (s *NoteServiceImpl) Get(ctx context.Context, userID, noteID uuid.UUID) (*model.Note, error) {
	if err := s.guard.Authorize(ctx, userID, noteID, model.CapRead); err != nil {
		return nil, err
	}
	return s.notes.Get(ctx, noteID)
}

// Update rewrites a note after a modify check.
func (s *NoteServiceImpl) Update(ctx context.Context, userID, noteID uuid.UUID, title, body string) error {
	if title == "" {
		return errors.New("validation: empty title")
	}
	if err := s.guard.Authorize(ctx, userID, noteID, model.CapModify); err != nil {
		return err
	}
	return s.notes.Update(ctx, noteID, title, body)
}

// Delete removes a note after a delete check.
func (s *NoteServiceImpl) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	if err := s.guard.Authorize(ctx, userID, noteID, model.CapDelete); err != nil {
		return err
	}
	return s.notes.Delete(ctx, noteID)
}

// List returns the union of owned and collaborated notes.
func (s *NoteServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]model.Note, error) {
	if userID == uuid.Nil {
		return nil, errors.New("validation: empty userID")
	}
	return s.notes.ListVisible(ctx, userID)
}
