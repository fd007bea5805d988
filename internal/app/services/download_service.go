package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/derya/acadvault/internal/app/models"
	"github.com/derya/acadvault/internal/app/models/dto"
	"github.com/derya/acadvault/internal/app/repositories"
	"github.com/derya/acadvault/internal/pkg/logger"
)

// defaultRecentLimit is applied when callers pass a non-positive limit
const defaultRecentLimit = 10

// DownloadService records download events and serves the recent-download feed
type DownloadService interface {
	// Record logs a download event. The event is recorded even when no
	// resource with the given id exists; the log is append-only history.
	Record(ctx context.Context, resourceID uuid.UUID, ipAddress *string) (*dto.DownloadResponse, error)

	// Recent returns the newest download events joined with their resource,
	// substituting the "unknown" projection for deleted resources.
	Recent(ctx context.Context, limit int) ([]dto.RecentDownloadResponse, error)
}

// downloadServiceImpl implements DownloadService
type downloadServiceImpl struct {
	downloadRepo repositories.DownloadStore
	resourceRepo repositories.ResourceStore
}

// NewDownloadService creates a new DownloadService
func NewDownloadService(downloadRepo repositories.DownloadStore, resourceRepo repositories.ResourceStore) DownloadService {
	return &downloadServiceImpl{
		downloadRepo: downloadRepo,
		resourceRepo: resourceRepo,
	}
}

// Record logs a download event unconditionally, then attaches the file URL
// when the resource can still be resolved.
func (s *downloadServiceImpl) Record(ctx context.Context, resourceID uuid.UUID, ipAddress *string) (*dto.DownloadResponse, error) {
	download := &models.Download{
		ResourceID: resourceID,
		IPAddress:  ipAddress,
	}

	if err := s.downloadRepo.Create(ctx, download); err != nil {
		return nil, fmt.Errorf("error recording download: %w", err)
	}

	response := &dto.DownloadResponse{
		ID:           download.ID,
		ResourceID:   download.ResourceID,
		DownloadedAt: download.DownloadedAt,
	}

	// The event is already durable; failing to resolve the resource only
	// costs the redirect URL.
	resource, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		logger.Warn().Err(err).Str("resourceId", resourceID.String()).Msg("Failed to resolve resource for recorded download")
		return response, nil
	}
	if resource != nil {
		response.FileURL = &resource.FileURL
	}

	return response, nil
}

// Recent retrieves the newest download events
func (s *downloadServiceImpl) Recent(ctx context.Context, limit int) ([]dto.RecentDownloadResponse, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	downloads, err := s.downloadRepo.GetRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing recent downloads: %w", err)
	}

	responses := make([]dto.RecentDownloadResponse, 0, len(downloads))
	for i := range downloads {
		responses = append(responses, toRecentDownloadResponse(&downloads[i]))
	}

	return responses, nil
}

// toRecentDownloadResponse converts a joined download row to its response
// DTO, substituting the "unknown" label when the resource was deleted.
func toRecentDownloadResponse(d *models.RecentDownload) dto.RecentDownloadResponse {
	response := dto.RecentDownloadResponse{
		ID:            d.ID,
		ResourceID:    d.ResourceID,
		DownloadedAt:  d.DownloadedAt,
		ResourceTitle: dto.UnknownResourceLabel,
		ResourceType:  dto.UnknownResourceLabel,
	}

	if d.ResourceTitle != nil {
		response.ResourceTitle = *d.ResourceTitle
	}
	if d.ResourceType != nil {
		response.ResourceType = *d.ResourceType
	}

	return response
}
