package models

import (
	"time"

	"github.com/google/uuid"
)

// Download is an append-only log entry recording that a resource's file was
// requested. ResourceID is a historical reference: the resource may be
// deleted later and the log entry stays auditable.
type Download struct {
	ID           uuid.UUID `json:"id" db:"id"`
	ResourceID   uuid.UUID `json:"resourceId" db:"resource_id"`
	DownloadedAt time.Time `json:"downloadedAt" db:"downloaded_at"`
	IPAddress    *string   `json:"ipAddress,omitempty" db:"ip_address"`
}

// RecentDownload is a download joined with the referenced resource's title
// and type. Both are nil when the resource has been deleted.
type RecentDownload struct {
	Download
	ResourceTitle *string
	ResourceType  *string
}
