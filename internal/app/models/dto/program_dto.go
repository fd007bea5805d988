package dto

import (
	"time"

	"github.com/google/uuid"
)

// ProgramResponse represents an academic program
type ProgramResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Specializations []string  `json:"specializations"`
	Semesters       int       `json:"semesters"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ProgramListResponse represents a list of programs
type ProgramListResponse struct {
	Programs []ProgramResponse `json:"programs"`
}
