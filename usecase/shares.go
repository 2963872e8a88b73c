package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"studybuddy/model"
	"studybuddy/repository"

	"github.com/google/uuid"
)

var ErrRecipientNotFound = errors.New("no user with that email")

type SharesService struct {
	SharesRepo *repository.SharesRepo
	NotesRepo  *repository.NotesRepo
	UsersRepo  *repository.UsersRepo
}

// ShareNote grants another user, identified by email, access to one of
// the caller's notes.
func (svc *SharesService) ShareNote(ctx context.Context, ownerID string, noteID string, email string, role string) (*model.NoteShare, error) {
	if ownerID == "" || noteID == "" || email == "" {
		return nil, errors.New("owner ID, note ID and email are required")
	}
	if role != model.ShareRoleEditor && role != model.ShareRoleViewer {
		return nil, errors.New("role must be editor or viewer")
	}

	// The note must exist and belong to the caller.
	if _, err := svc.NotesRepo.GetNote(ctx, noteID, ownerID); err != nil {
		return nil, err
	}

	recipient, err := svc.UsersRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrRecipientNotFound
		}
		return nil, err
	}

	share := &model.NoteShare{
		ID:           uuid.New().String(),
		NoteID:       noteID,
		OwnerID:      ownerID,
		SharedWithID: recipient.UserID,
		Role:         role,
		CreatedAt:    time.Now(),
	}

	if err := svc.SharesRepo.CreateShare(ctx, share); err != nil {
		return nil, err
	}
	return share, nil
}

// ListSharedWithMe returns the shares granted to the user, each joined
// with the shared note. Shares whose note has since been deleted are
// skipped.
func (svc *SharesService) ListSharedWithMe(ctx context.Context, userID string) ([]*model.NoteShare, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	shares, err := svc.SharesRepo.GetSharesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*model.NoteShare, 0, len(shares))
	for _, share := range shares {
		note, err := svc.NotesRepo.GetNoteAny(ctx, share.NoteID)
		if err != nil {
			if errors.Is(err, repository.ErrNoteNotFound) {
				continue
			}
			log.Printf("Warning: failed to resolve shared note %s: %v", share.NoteID, err)
			continue
		}
		share.Note = note
		result = append(result, share)
	}
	return result, nil
}

// ListNoteShares lists the shares the owner has granted on a note.
func (svc *SharesService) ListNoteShares(ctx context.Context, noteID string, ownerID string) ([]*model.NoteShare, error) {
	if noteID == "" || ownerID == "" {
		return nil, errors.New("note ID and owner ID are required")
	}
	return svc.SharesRepo.GetSharesByOwner(ctx, noteID, ownerID)
}

// RevokeShare removes a share. Only the note's owner may revoke.
func (svc *SharesService) RevokeShare(ctx context.Context, shareID string, ownerID string) error {
	if shareID == "" || ownerID == "" {
		return errors.New("share ID and owner ID are required")
	}
	return svc.SharesRepo.DeleteShare(ctx, shareID, ownerID)
}
