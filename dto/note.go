package dto

import (
	"time"
	"unicode/utf8"

	"studybuddy/model"
)

const excerptLimit = 100

type CreateNoteRequest struct {
	Title    string   `json:"title" binding:"required"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Color    string   `json:"color"`
}

// UpdateNoteRequest carries a partial update: only fields present in the
// payload are written.
type UpdateNoteRequest struct {
	Title    *string   `json:"title,omitempty"`
	Content  *string   `json:"content,omitempty"`
	Category *string   `json:"category,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`
	Color    *string   `json:"color,omitempty"`
	Grade    *float64  `json:"grade,omitempty"`
	Feedback *string   `json:"feedback,omitempty"`
}

type NoteResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt"`
	Category  string    `json:"category,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Color     string    `json:"color,omitempty"`
	Grade     *float64  `json:"grade,omitempty"`
	Feedback  string    `json:"feedback,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Excerpt truncates content to at most 100 characters, appending an
// ellipsis when anything was cut.
func Excerpt(content string) string {
	if utf8.RuneCountInString(content) <= excerptLimit {
		return content
	}
	runes := []rune(content)
	return string(runes[:excerptLimit]) + "…"
}

func ToNoteResponse(note *model.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		UserID:    note.UserID,
		Title:     note.Title,
		Content:   note.Content,
		Excerpt:   Excerpt(note.Content),
		Category:  note.Category,
		Tags:      note.Tags,
		Color:     note.Color,
		Grade:     note.Grade,
		Feedback:  note.Feedback,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func ToNoteResponses(notes []*model.Note) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = ToNoteResponse(note)
	}
	return responses
}
