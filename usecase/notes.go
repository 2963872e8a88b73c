package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"studybuddy/dto"
	"studybuddy/model"
	"studybuddy/repository"
	"studybuddy/services"
	"studybuddy/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type NotesService struct {
	NotesRepo    *repository.NotesRepo
	VersionsRepo *repository.VersionsRepo
	SharesRepo   *repository.SharesRepo
	ProgressRepo *repository.ProgressRepo
	Feed         *services.NoteFeed
}

const (
	maxTitleLen   = 200
	maxContentLen = 50000
)

func (svc *NotesService) validateNote(note *model.Note) error {
	note.Title = strings.TrimSpace(note.Title)
	if note.Title == "" {
		return errors.New("note title is required")
	}
	if len(note.Title) > maxTitleLen {
		return errors.New("note title exceeds maximum length")
	}
	if len(note.Content) > maxContentLen {
		return errors.New("note content exceeds maximum length")
	}

	normalizedTags := make([]string, 0)
	for _, tag := range note.Tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			normalizedTags = append(normalizedTags, trimmed)
		}
	}
	note.Tags = normalizedTags

	return nil
}

// snapshot stores the note's current title and content as a new
// version row.
func (svc *NotesService) snapshot(ctx context.Context, note *model.Note) error {
	version := &model.NoteVersion{
		ID:        uuid.New().String(),
		NoteID:    note.ID,
		UserID:    note.UserID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: time.Now(),
	}
	return svc.VersionsRepo.CreateVersion(ctx, version)
}

// publish sends a change event to the owner's feed. Feed delivery is
// best effort and never fails the write that triggered it.
func (svc *NotesService) publish(ctx context.Context, userID string, event model.FeedEvent) {
	if svc.Feed == nil {
		return
	}
	svc.Feed.Publish(ctx, userID, event)
}

// ListNotes returns the user's notes, most recently updated first.
func (svc *NotesService) ListNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	return svc.NotesRepo.GetUserNotes(ctx, userID)
}

// GetNote returns a single note owned by the user.
func (svc *NotesService) GetNote(ctx context.Context, noteID string, userID string) (*model.Note, error) {
	if noteID == "" || userID == "" {
		return nil, errors.New("note ID and user ID are required")
	}
	return svc.NotesRepo.GetNote(ctx, noteID, userID)
}

// CreateNote persists a new note, writes its initial version snapshot
// and bumps the daily notes-created counter. The counter and feed
// event are side effects: their failures are logged, never surfaced.
func (svc *NotesService) CreateNote(ctx context.Context, userID string, req *dto.CreateNoteRequest) (*model.Note, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	now := time.Now()
	note := &model.Note{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		Tags:      req.Tags,
		Color:     req.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := svc.validateNote(note); err != nil {
		return nil, err
	}

	if err := svc.NotesRepo.CreateNote(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	utils.TrackNoteOperation("create")

	if err := svc.snapshot(ctx, note); err != nil {
		log.Printf("Warning: failed to write initial version for note %s: %v", note.ID, err)
	}

	if svc.ProgressRepo != nil {
		date := now.Format("2006-01-02")
		if err := svc.ProgressRepo.IncrementCounter(ctx, userID, date, "notes_created"); err != nil {
			log.Printf("Warning: failed to bump notes_created counter: %v", err)
		}
	}

	svc.publish(ctx, userID, model.FeedEvent{Type: model.FeedInsert, NoteID: note.ID, Note: note})

	return note, nil
}

// UpdateNote applies a partial update. The pre-update state is
// snapshotted first so the edit can be undone from history.
func (svc *NotesService) UpdateNote(ctx context.Context, noteID string, userID string, req *dto.UpdateNoteRequest) (*model.Note, error) {
	if noteID == "" || userID == "" {
		return nil, errors.New("note ID and user ID are required")
	}

	current, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	fields := bson.M{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, errors.New("note title is required")
		}
		fields["title"] = title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Tags != nil {
		fields["tags"] = *req.Tags
	}
	if req.Color != nil {
		fields["color"] = *req.Color
	}
	if req.Grade != nil {
		fields["grade"] = *req.Grade
	}
	if req.Feedback != nil {
		fields["feedback"] = *req.Feedback
	}

	if len(fields) == 0 {
		return current, nil
	}

	if err := svc.snapshot(ctx, current); err != nil {
		return nil, fmt.Errorf("failed to snapshot note before update: %w", err)
	}

	updated, err := svc.NotesRepo.UpdateNote(ctx, noteID, userID, fields)
	if err != nil {
		return nil, err
	}
	utils.TrackNoteOperation("update")

	svc.publish(ctx, userID, model.FeedEvent{Type: model.FeedUpdate, NoteID: updated.ID, Note: updated})

	return updated, nil
}

// DeleteNote removes a note along with its version history and any
// shares granted on it.
func (svc *NotesService) DeleteNote(ctx context.Context, noteID string, userID string) error {
	if noteID == "" || userID == "" {
		return errors.New("note ID and user ID are required")
	}

	if err := svc.NotesRepo.DeleteNote(ctx, noteID, userID); err != nil {
		return err
	}
	utils.TrackNoteOperation("delete")

	if err := svc.VersionsRepo.DeleteNoteVersions(ctx, noteID, userID); err != nil {
		log.Printf("Warning: failed to delete versions for note %s: %v", noteID, err)
	}
	if svc.SharesRepo != nil {
		if err := svc.SharesRepo.DeleteSharesForNote(ctx, noteID); err != nil {
			log.Printf("Warning: failed to delete shares for note %s: %v", noteID, err)
		}
	}

	svc.publish(ctx, userID, model.FeedEvent{Type: model.FeedDelete, NoteID: noteID})

	return nil
}

// SearchNotes runs a filtered query against the user's notes.
func (svc *NotesService) SearchNotes(ctx context.Context, opts repository.SearchOptions) ([]*model.Note, error) {
	if opts.UserID == "" {
		return nil, errors.New("user ID is required")
	}
	return svc.NotesRepo.SearchNotes(ctx, opts)
}

// ListCategories returns the distinct categories present in the
// user's notes.
func (svc *NotesService) ListCategories(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	return svc.NotesRepo.GetUserCategories(ctx, userID)
}

// ListVersions returns a note's history, newest snapshot first. The
// note must belong to the user.
func (svc *NotesService) ListVersions(ctx context.Context, noteID string, userID string) ([]*model.NoteVersion, error) {
	if noteID == "" || userID == "" {
		return nil, errors.New("note ID and user ID are required")
	}

	if _, err := svc.NotesRepo.GetNote(ctx, noteID, userID); err != nil {
		return nil, err
	}
	return svc.VersionsRepo.GetNoteVersions(ctx, noteID, userID)
}

// RestoreVersion rewinds a note to an earlier snapshot. The current
// state is snapshotted first, so a restore is itself undoable.
func (svc *NotesService) RestoreVersion(ctx context.Context, noteID string, versionID string, userID string) (*model.Note, error) {
	if noteID == "" || versionID == "" || userID == "" {
		return nil, errors.New("note ID, version ID and user ID are required")
	}

	version, err := svc.VersionsRepo.GetVersion(ctx, versionID, userID)
	if err != nil {
		return nil, err
	}
	if version.NoteID != noteID {
		return nil, repository.ErrVersionNotFound
	}

	current, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	if err := svc.snapshot(ctx, current); err != nil {
		return nil, fmt.Errorf("failed to snapshot note before restore: %w", err)
	}

	updated, err := svc.NotesRepo.UpdateNote(ctx, noteID, userID, bson.M{
		"title":   version.Title,
		"content": version.Content,
	})
	if err != nil {
		return nil, err
	}
	utils.TrackNoteOperation("restore")

	svc.publish(ctx, userID, model.FeedEvent{Type: model.FeedUpdate, NoteID: updated.ID, Note: updated})

	return updated, nil
}
