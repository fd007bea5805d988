package models

import (
	"time"

	"github.com/google/uuid"
)

// ProgramType classifies an academic program
type ProgramType string

const (
	ProgramTypeUndergraduate ProgramType = "undergraduate"
	ProgramTypePostgraduate  ProgramType = "postgraduate"
)

// Program represents an academic course of study with a fixed number of
// semesters. Programs are created by seeding and are immutable afterwards.
type Program struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	Name            string      `json:"name" db:"name"`
	Type            ProgramType `json:"type" db:"type"`
	Specializations []string    `json:"specializations" db:"specializations"`
	Semesters       int         `json:"semesters" db:"semesters"`
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
}
