package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"time"

	"studybuddy/model"
	"studybuddy/repository"
	"studybuddy/services"
	"studybuddy/utils"

	"github.com/google/uuid"
)

// MaxFileSize is the per-file upload ceiling. Files are rejected
// before any bytes reach the object store.
const MaxFileSize = 10 << 20 // 10 MiB

var ErrFileTooLarge = fmt.Errorf("file exceeds the %d MB limit", MaxFileSize>>20)

type FilesService struct {
	FilesRepo *repository.FilesRepo
	Blobs     services.BlobStore
}

// FileUpload is one entry in an upload batch.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
	NoteID      string
}

// UploadResult reports the outcome of one batch entry. Err is nil on
// success.
type UploadResult struct {
	Name string
	File *model.FileRecord
	Err  error
}

// UploadFiles stores a batch of files. Each file is checked against
// the size limit up front; an oversized or failed entry does not stop
// the rest of the batch.
func (svc *FilesService) UploadFiles(ctx context.Context, userID string, uploads []FileUpload) []UploadResult {
	results := make([]UploadResult, 0, len(uploads))
	for _, up := range uploads {
		rec, err := svc.uploadOne(ctx, userID, up)
		switch {
		case errors.Is(err, ErrFileTooLarge):
			utils.TrackFileUpload("rejected")
		case err != nil:
			utils.TrackFileUpload("failed")
			log.Printf("Warning: upload of %q failed: %v", up.Name, err)
		default:
			utils.TrackFileUpload("ok")
		}
		results = append(results, UploadResult{Name: up.Name, File: rec, Err: err})
	}
	return results
}

func (svc *FilesService) uploadOne(ctx context.Context, userID string, up FileUpload) (*model.FileRecord, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	if up.Name == "" {
		return nil, errors.New("file name is required")
	}
	if up.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	id := uuid.New().String()
	storagePath := path.Join(userID, id+path.Ext(up.Name))

	if err := svc.Blobs.Upload(ctx, storagePath, up.Reader, up.Size, up.ContentType); err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	rec := &model.FileRecord{
		ID:          id,
		UserID:      userID,
		Name:        up.Name,
		ContentType: up.ContentType,
		Size:        up.Size,
		StoragePath: storagePath,
		NoteID:      up.NoteID,
		UploadedAt:  time.Now(),
	}

	if err := svc.FilesRepo.CreateFile(ctx, rec); err != nil {
		// Roll the object back so storage does not leak.
		if rmErr := svc.Blobs.Remove(ctx, []string{storagePath}); rmErr != nil {
			log.Printf("Warning: failed to remove orphaned object %s: %v", storagePath, rmErr)
		}
		return nil, fmt.Errorf("failed to record file: %w", err)
	}

	return rec, nil
}

// ListFiles returns the user's files, optionally restricted to one
// note's attachments.
func (svc *FilesService) ListFiles(ctx context.Context, userID string, noteID string) ([]*model.FileRecord, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	return svc.FilesRepo.GetUserFiles(ctx, userID, noteID)
}

// SignedURL produces a short-lived download link for a file the user
// owns.
func (svc *FilesService) SignedURL(ctx context.Context, fileID string, userID string, expiry time.Duration) (string, error) {
	rec, err := svc.FilesRepo.GetFile(ctx, fileID, userID)
	if err != nil {
		return "", err
	}
	return svc.Blobs.SignedURL(ctx, rec.StoragePath, expiry)
}

// DeleteFile removes the stored object first, then the metadata row.
func (svc *FilesService) DeleteFile(ctx context.Context, fileID string, userID string) error {
	rec, err := svc.FilesRepo.GetFile(ctx, fileID, userID)
	if err != nil {
		return err
	}

	if err := svc.Blobs.Remove(ctx, []string{rec.StoragePath}); err != nil {
		return fmt.Errorf("failed to remove stored object: %w", err)
	}

	return svc.FilesRepo.DeleteFile(ctx, fileID, userID)
}
