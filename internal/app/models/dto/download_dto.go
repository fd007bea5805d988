package dto

import (
	"time"

	"github.com/google/uuid"
)

// UnknownResourceLabel marks download rows whose resource was deleted
const UnknownResourceLabel = "unknown"

// DownloadResponse represents a recorded download event
type DownloadResponse struct {
	ID           uuid.UUID `json:"id"`
	ResourceID   uuid.UUID `json:"resourceId"`
	DownloadedAt time.Time `json:"downloadedAt"`
	// FileURL is attached when the resource still exists so the caller can
	// redirect to the file after recording.
	FileURL *string `json:"fileUrl,omitempty"`
}

// RecentDownloadResponse represents a download enriched with the referenced
// resource's title and type, or the "unknown" projection if it was deleted.
type RecentDownloadResponse struct {
	ID            uuid.UUID `json:"id"`
	ResourceID    uuid.UUID `json:"resourceId"`
	DownloadedAt  time.Time `json:"downloadedAt"`
	ResourceTitle string    `json:"resourceTitle"`
	ResourceType  string    `json:"resourceType"`
}

// RecentDownloadListResponse represents a list of recent downloads
type RecentDownloadListResponse struct {
	Downloads []RecentDownloadResponse `json:"downloads"`
}
