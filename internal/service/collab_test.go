package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"

	"noteshare/internal/errs"
	"noteshare/internal/model"
)

func collabFixture(t *testing.T) (*CollabServiceImpl, uuid.UUID, uuid.UUID, uuid.UUID) {
	t.Helper()
	owner := uuid.Must(uuid.NewV4())
	invitee := uuid.Must(uuid.NewV4())
	noteID := uuid.Must(uuid.NewV4())

	notes := &fakeNotes{byID: map[uuid.UUID]*model.Note{
		noteID: {ID: noteID, Owner: owner, Title: "n1"},
	}}
	users := &fakeUsers{byName: map[string]*model.User{
		"owner":   {ID: owner, Username: "owner"},
		"invitee": {ID: invitee, Username: "invitee"},
	}}
	return NewCollabService(notes, &fakeCollabs{}, users), owner, invitee, noteID
}

func TestCollab_Add(t *testing.T) {
	t.Parallel()

	s, owner, invitee, noteID := collabFixture(t)
	ctx := context.Background()

	if err := s.Add(ctx, owner, noteID, invitee); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// Duplicate grant
	if err := s.Add(ctx, owner, noteID, invitee); !errors.Is(err, errs.ErrAlreadyExists) {
		t.Fatalf("duplicate Add = %v, want ErrAlreadyExists", err)
	}

	// Granting to the owner is meaningless
	if err := s.Add(ctx, owner, noteID, owner); !errors.Is(err, errs.ErrAlreadyExists) {
		t.Fatalf("Add owner = %v, want ErrAlreadyExists", err)
	}

	// Invited user must exist
	if err := s.Add(ctx, owner, noteID, uuid.Must(uuid.NewV4())); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("Add unknown user = %v, want ErrNotFound", err)
	}

	// Missing note resolves before any permission comparison
	if err := s.Add(ctx, owner, uuid.Must(uuid.NewV4()), invitee); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("Add to missing note = %v, want ErrNotFound", err)
	}
}

func TestCollab_OnlyOwnerManages(t *testing.T) {
	t.Parallel()

	s, owner, invitee, noteID := collabFixture(t)
	ctx := context.Background()
	stranger := uuid.Must(uuid.NewV4())

	if err := s.Add(ctx, stranger, noteID, invitee); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("stranger Add = %v, want ErrForbidden", err)
	}

	if err := s.Add(ctx, owner, noteID, invitee); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// Even the collaborator cannot manage the collaborator set.
	if err := s.Remove(ctx, invitee, noteID, invitee); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("collaborator Remove = %v, want ErrForbidden", err)
	}
	if err := s.Remove(ctx, owner, noteID, invitee); err != nil {
		t.Fatalf("owner Remove: %v", err)
	}
}

func TestCollab_RemoveMissingPair(t *testing.T) {
	t.Parallel()

	s, owner, invitee, noteID := collabFixture(t)

	if err := s.Remove(context.Background(), owner, noteID, invitee); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("Remove missing pair = %v, want ErrNotFound", err)
	}
}
