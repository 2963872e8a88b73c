package model

const (
	FeedInsert = "insert"
	FeedUpdate = "update"
	FeedDelete = "delete"
)

// FeedEvent is one row-level change delivered on a user's note feed.
// Delete events carry only the note id.
type FeedEvent struct {
	Type   string `json:"type"`
	NoteID string `json:"note_id"`
	Note   *Note  `json:"note,omitempty"`
}
