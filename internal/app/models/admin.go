package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin represents an administrator account allowed to manage the catalog
type Admin struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
