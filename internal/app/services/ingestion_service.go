package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/derya/acadvault/internal/app/models"
	"github.com/derya/acadvault/internal/app/models/dto"
	"github.com/derya/acadvault/internal/app/repositories"
	"github.com/derya/acadvault/internal/pkg/apperrors"
	"github.com/derya/acadvault/internal/pkg/logger"
	"github.com/derya/acadvault/internal/pkg/objectstore"
	"github.com/derya/acadvault/internal/pkg/sizefmt"
)

// UploadInput carries an incoming file and its catalog metadata
type UploadInput struct {
	ProgramID   uuid.UUID
	Semester    int
	Title       string
	Type        models.ResourceType
	Filename    string
	Size        int64
	ContentType string
	Content     io.Reader
	UploaderID  *uuid.UUID
}

// ProgressFunc receives advisory upload progress in percent. Reported values
// are monotonically non-decreasing and reach 100 only after the resource row
// is durably created.
type ProgressFunc func(percent int)

// IngestionService defines the write side of the resource catalog
type IngestionService interface {
	// Upload validates the input, stores the file in the object store, then
	// creates the resource row. On any failure no resource row exists; a
	// blob stored before a late failure is not rolled back.
	Upload(ctx context.Context, in *UploadInput, progress ProgressFunc) (*dto.ResourceResponse, error)

	// Delete removes a resource from the catalog. Download history is kept.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ingestionServiceImpl implements IngestionService
type ingestionServiceImpl struct {
	programRepo  repositories.ProgramStore
	resourceRepo repositories.ResourceStore
	store        objectstore.Client
	maxBytes     int64
}

// NewIngestionService creates a new IngestionService. maxBytes caps the
// accepted file size.
func NewIngestionService(
	programRepo repositories.ProgramStore,
	resourceRepo repositories.ResourceStore,
	store objectstore.Client,
	maxBytes int64,
) IngestionService {
	return &ingestionServiceImpl{
		programRepo:  programRepo,
		resourceRepo: resourceRepo,
		store:        store,
		maxBytes:     maxBytes,
	}
}

// progressReporter enforces the monotonic, non-decreasing progress contract
type progressReporter struct {
	fn   ProgressFunc
	last int
}

func (p *progressReporter) report(percent int) {
	if p.fn == nil {
		return
	}
	if percent < p.last {
		percent = p.last
	}
	p.last = percent
	p.fn(percent)
}

// Upload runs the ingestion pipeline: ordered validation, object store
// write, resource row creation. Validation order is part of the contract;
// the first failing rule wins and nothing is stored before all rules pass.
func (s *ingestionServiceImpl) Upload(ctx context.Context, in *UploadInput, progress ProgressFunc) (*dto.ResourceResponse, error) {
	reporter := &progressReporter{fn: progress}
	reporter.report(0)

	// 1. Required fields
	if in.ProgramID == uuid.Nil || in.Title == "" || in.Content == nil || in.Type == "" {
		return nil, apperrors.NewValidationError("missing required field")
	}

	// 2. Size cap
	if in.Size > s.maxBytes {
		return nil, apperrors.NewValidationError("file too large")
	}

	// 3. Program must exist
	program, err := s.programRepo.GetByID(ctx, in.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("error resolving program: %w", err)
	}
	if program == nil {
		return nil, apperrors.NewValidationError("unknown program")
	}

	// 4. Semester within the program's range
	if in.Semester < 1 || in.Semester > program.Semesters {
		return nil, apperrors.NewValidationError("semester out of range")
	}

	reporter.report(25)

	key, err := objectstore.GenerateKey(in.Filename)
	if err != nil {
		return nil, fmt.Errorf("error generating object key: %w", err)
	}

	fileURL, err := s.store.Store(ctx, key, in.Content, in.Size, in.ContentType)
	if err != nil {
		logger.Error().Err(err).Str("key", key).Msg("Object store write failed")
		return nil, apperrors.NewStorageError("failed to store file")
	}

	reporter.report(80)

	sizeLabel := sizefmt.Label(in.Size)
	resource := &models.Resource{
		ProgramID:  in.ProgramID,
		Semester:   in.Semester,
		Title:      in.Title,
		Type:       in.Type,
		FileURL:    fileURL,
		FileSize:   &sizeLabel,
		UploadedBy: in.UploaderID,
	}

	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		// The stored blob is orphaned here; object-store cleanup is out of
		// scope and the failure is surfaced as-is.
		logger.Error().Err(err).Str("key", key).Msg("Resource row creation failed after blob store")
		return nil, fmt.Errorf("error creating resource: %w", err)
	}

	reporter.report(100)

	resource.Program = program
	response := toResourceResponse(resource)
	return &response, nil
}

// Delete removes a resource row and makes a best-effort attempt to remove
// the underlying blob. Download history rows are untouched.
func (s *ingestionServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error getting resource: %w", err)
	}
	if resource == nil {
		return apperrors.ErrResourceNotFound
	}

	if err := s.resourceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return err
		}
		return fmt.Errorf("error deleting resource: %w", err)
	}

	// Best effort: the catalog row is already gone, a leftover blob only
	// costs storage.
	if key := objectstore.KeyFromURL(resource.FileURL); key != "" {
		if err := s.store.Remove(ctx, key); err != nil {
			logger.Warn().Err(err).Str("key", key).Msg("Failed to remove blob for deleted resource")
		}
	}

	return nil
}
