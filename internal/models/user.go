package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`           // Primary key
	Username     string    `json:"username" db:"username"`    // Unique username
	Email        string    `json:"email" db:"email"`          // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`      // Hashed password, never serialized
	CreatedAt    time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"` // Last update timestamp
}
