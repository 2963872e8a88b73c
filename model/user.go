package model

import "time"

type User struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Username  string    `bson:"username" json:"username" validate:"required,min=4,max=20"`
	Email     string    `bson:"email" json:"email" validate:"required,email"`
	Password  string    `bson:"password" json:"password,omitempty" validate:"required,min=6"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Profile carries per-user display settings. Created lazily on first login
// if absent.
type Profile struct {
	UserID       string    `bson:"user_id" json:"user_id"`
	Email        string    `bson:"email" json:"email"`
	DisplayName  string    `bson:"display_name" json:"display_name"`
	IsPremium    bool      `bson:"is_premium" json:"is_premium"`
	HasSeenIntro bool      `bson:"has_seen_intro" json:"has_seen_intro"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
