package dto

import (
	"time"

	"github.com/google/uuid"
)

// ResourceResponse represents a catalog resource with its owning program
type ResourceResponse struct {
	ID         uuid.UUID        `json:"id"`
	ProgramID  uuid.UUID        `json:"programId"`
	Semester   int              `json:"semester"`
	Title      string           `json:"title"`
	Type       string           `json:"type"`
	FileURL    string           `json:"fileUrl"`
	FileSize   *string          `json:"fileSize,omitempty"`
	UploadDate time.Time        `json:"uploadDate"`
	UploadedBy *uuid.UUID       `json:"uploadedBy,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
	Program    *ProgramResponse `json:"program,omitempty"`
}

// ResourceListResponse represents a list of resources
type ResourceListResponse struct {
	Resources []ResourceResponse `json:"resources"`
}

// ResourceFilterRequest represents resource filter query parameters.
// Semester is only honored together with programId.
type ResourceFilterRequest struct {
	ProgramID *string `form:"programId,omitempty"`
	Semester  *int    `form:"semester,omitempty"`
}

// UploadResourceRequest represents the multipart form fields of an upload.
// Presence of the required fields is checked by the ingestion pipeline, not
// by binding, so the pipeline's ordered validation stays authoritative.
type UploadResourceRequest struct {
	ProgramID string `form:"programId"`
	Semester  int    `form:"semester"`
	Title     string `form:"title"`
	Type      string `form:"type" binding:"omitempty,oneof=previous_year_papers study_material syllabus"`
}
