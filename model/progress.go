package model

import "time"

// ProgressLog holds one row per (user, date). Date is a calendar-day key
// in YYYY-MM-DD form.
type ProgressLog struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	UserID       string    `bson:"user_id" json:"user_id"`
	Date         string    `bson:"date" json:"date"`
	Minutes      int       `bson:"minutes" json:"minutes"`
	NotesCreated int       `bson:"notes_created" json:"notes_created"`
	QuizzesDone  int       `bson:"quizzes_done" json:"quizzes_done"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
