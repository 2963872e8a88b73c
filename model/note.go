package model

import (
	"time"
)

type Note struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Title     string    `bson:"title" json:"title" binding:"required"`
	Content   string    `bson:"content" json:"content"`
	Category  string    `bson:"category,omitempty" json:"category,omitempty"`
	Tags      []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	Color     string    `bson:"color,omitempty" json:"color,omitempty"`
	Grade     *float64  `bson:"grade,omitempty" json:"grade,omitempty"`
	Feedback  string    `bson:"feedback,omitempty" json:"feedback,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// NoteVersion is an immutable snapshot of a note's title and content,
// written before every update. Append-only, newest first.
type NoteVersion struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	NoteID    string    `bson:"note_id" json:"note_id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
