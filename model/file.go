package model

import "time"

// FileRecord is the metadata row for an object in blob storage.
// StoragePath uniquely addresses the blob.
type FileRecord struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	Name        string    `bson:"name" json:"name"`
	ContentType string    `bson:"content_type" json:"content_type"`
	Size        int64     `bson:"size" json:"size"`
	StoragePath string    `bson:"storage_path" json:"storage_path"`
	NoteID      string    `bson:"note_id,omitempty" json:"note_id,omitempty"`
	UploadedAt  time.Time `bson:"uploaded_at" json:"uploaded_at"`
}
