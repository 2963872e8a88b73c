package model

import "time"

const (
	ShareRoleEditor = "editor"
	ShareRoleViewer = "viewer"
)

// NoteShare grants a second user access to a note owned by someone else.
// Additive only: ownership never transfers.
type NoteShare struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	NoteID       string    `bson:"note_id" json:"note_id"`
	OwnerID      string    `bson:"owner_id" json:"owner_id"`
	SharedWithID string    `bson:"shared_with_id" json:"shared_with_id"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`

	// Note is populated on reads that join the shared note in.
	Note *Note `bson:"note,omitempty" json:"note,omitempty"`
}
