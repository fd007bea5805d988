package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/derya/acadvault/internal/app/models"
)

// DownloadStore defines database access to the download log
type DownloadStore interface {
	Create(ctx context.Context, download *models.Download) error
	GetRecent(ctx context.Context, limit int) ([]models.RecentDownload, error)
	Count(ctx context.Context) (int64, error)
}

// DownloadRepository handles database operations for download events
type DownloadRepository struct {
	db *pgxpool.Pool
}

// NewDownloadRepository creates a new DownloadRepository
func NewDownloadRepository(db *pgxpool.Pool) *DownloadRepository {
	return &DownloadRepository{db: db}
}

// Create appends a download event. There is no foreign key on resource_id:
// the log is historical and must accept ids of resources that may be deleted
// later (or, per the legacy contract, may not exist at all).
func (r *DownloadRepository) Create(ctx context.Context, download *models.Download) error {
	query := `
		INSERT INTO downloads (resource_id, ip_address)
		VALUES ($1, $2)
		RETURNING id, downloaded_at
	`

	err := r.db.QueryRow(ctx, query, download.ResourceID, download.IPAddress).
		Scan(&download.ID, &download.DownloadedAt)
	if err != nil {
		return fmt.Errorf("error creating download: %w", err)
	}

	return nil
}

// GetRecent retrieves the most recent download events, each joined with the
// referenced resource's title and type when the resource still exists.
func (r *DownloadRepository) GetRecent(ctx context.Context, limit int) ([]models.RecentDownload, error) {
	query := `
		SELECT d.id, d.resource_id, d.downloaded_at, d.ip_address, res.title, res.type
		FROM downloads d
		LEFT JOIN resources res ON res.id = d.resource_id
		ORDER BY d.downloaded_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying downloads: %w", err)
	}
	defer rows.Close()

	var downloads []models.RecentDownload
	for rows.Next() {
		var d models.RecentDownload
		err := rows.Scan(&d.ID, &d.ResourceID, &d.DownloadedAt, &d.IPAddress, &d.ResourceTitle, &d.ResourceType)
		if err != nil {
			return nil, fmt.Errorf("error scanning download row: %w", err)
		}
		downloads = append(downloads, d)
	}

	return downloads, rows.Err()
}

// Count returns the number of download events
func (r *DownloadRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM downloads`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting downloads: %w", err)
	}
	return count, nil
}
