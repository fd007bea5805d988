package models

import (
	"time"

	"github.com/google/uuid"
)

// ResourceType classifies an uploaded document
type ResourceType string

const (
	ResourceTypePreviousYearPapers ResourceType = "previous_year_papers"
	ResourceTypeStudyMaterial      ResourceType = "study_material"
	ResourceTypeSyllabus           ResourceType = "syllabus"
)

// Resource represents a single uploaded document, owned by one program and
// one semester. Resources are created only by the ingestion pipeline and are
// never updated in place; FileURL always points at a durably stored blob.
type Resource struct {
	ID         uuid.UUID    `json:"id" db:"id"`
	ProgramID  uuid.UUID    `json:"programId" db:"program_id"`
	Semester   int          `json:"semester" db:"semester"`
	Title      string       `json:"title" db:"title"`
	Type       ResourceType `json:"type" db:"type"`
	FileURL    string       `json:"fileUrl" db:"file_url"`
	FileSize   *string      `json:"fileSize,omitempty" db:"file_size"`
	UploadDate time.Time    `json:"uploadDate" db:"upload_date"`
	UploadedBy *uuid.UUID   `json:"uploadedBy,omitempty" db:"uploaded_by"`
	CreatedAt  time.Time    `json:"createdAt" db:"created_at"`

	// Program is the denormalized owning program attached by list queries.
	Program *Program `json:"program,omitempty"`
}

// ResourceFilter narrows resource listings. Semester only applies when
// ProgramID is set; an unscoped semester is silently ignored.
type ResourceFilter struct {
	ProgramID *uuid.UUID
	Semester  *int
}
