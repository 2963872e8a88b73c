package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

// recordingBlobStore counts uploads and fails them, so upload tests
// never need a metadata backend.
type recordingBlobStore struct {
	uploads   []string
	uploadErr error
}

func (s *recordingBlobStore) Upload(ctx context.Context, path string, reader io.Reader, size int64, contentType string) error {
	s.uploads = append(s.uploads, path)
	return s.uploadErr
}

func (s *recordingBlobStore) Remove(ctx context.Context, paths []string) error { return nil }

func (s *recordingBlobStore) SignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "https://example.com/" + path, nil
}

func TestUploadRejectsOversizedFileBeforeStorage(t *testing.T) {
	blobs := &recordingBlobStore{uploadErr: errors.New("should not matter")}
	svc := &FilesService{Blobs: blobs}

	results := svc.UploadFiles(context.Background(), "user-1", []FileUpload{
		{Name: "huge.pdf", Size: MaxFileSize + 1, Reader: strings.NewReader("")},
	})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if !errors.Is(results[0].Err, ErrFileTooLarge) {
		t.Errorf("expected ErrFileTooLarge, got %v", results[0].Err)
	}
	if len(blobs.uploads) != 0 {
		t.Errorf("oversized file reached the object store: %v", blobs.uploads)
	}
}

func TestUploadBatchContinuesPastFailures(t *testing.T) {
	blobs := &recordingBlobStore{uploadErr: errors.New("storage down")}
	svc := &FilesService{Blobs: blobs}

	results := svc.UploadFiles(context.Background(), "user-1", []FileUpload{
		{Name: "huge.pdf", Size: MaxFileSize + 1},
		{Name: "ok.txt", Size: 12, Reader: strings.NewReader("hello world!")},
		{Name: "", Size: 1},
	})

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !errors.Is(results[0].Err, ErrFileTooLarge) {
		t.Errorf("first entry: expected ErrFileTooLarge, got %v", results[0].Err)
	}
	if results[1].Err == nil {
		t.Error("second entry: expected storage error")
	}
	if results[2].Err == nil {
		t.Error("third entry: expected name validation error")
	}

	// Only the valid entry should have touched storage.
	if len(blobs.uploads) != 1 {
		t.Errorf("expected exactly one storage attempt, got %v", blobs.uploads)
	}
}

func TestUploadExactlyAtLimitPassesSizeCheck(t *testing.T) {
	blobs := &recordingBlobStore{uploadErr: errors.New("stop before metadata")}
	svc := &FilesService{Blobs: blobs}

	results := svc.UploadFiles(context.Background(), "user-1", []FileUpload{
		{Name: "limit.bin", Size: MaxFileSize, Reader: strings.NewReader("")},
	})

	if errors.Is(results[0].Err, ErrFileTooLarge) {
		t.Error("file at exactly the limit was rejected")
	}
	if len(blobs.uploads) != 1 {
		t.Error("file at the limit never reached storage")
	}
}
