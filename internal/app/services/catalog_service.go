package services

import (
	"context"
	"fmt"

	"github.com/derya/acadvault/internal/app/models"
	"github.com/derya/acadvault/internal/app/models/dto"
	"github.com/derya/acadvault/internal/app/repositories"
)

// CatalogService defines the read side of the resource catalog
type CatalogService interface {
	// ListPrograms returns all programs, undergraduate before postgraduate,
	// then by name.
	ListPrograms(ctx context.Context) ([]dto.ProgramResponse, error)

	// ListResources returns resources matching the filter, most recent
	// upload first, each with its owning program attached. A semester
	// filter without a program scope is silently ignored.
	ListResources(ctx context.Context, filter *models.ResourceFilter) ([]dto.ResourceResponse, error)
}

// catalogServiceImpl implements CatalogService
type catalogServiceImpl struct {
	programRepo  repositories.ProgramStore
	resourceRepo repositories.ResourceStore
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(programRepo repositories.ProgramStore, resourceRepo repositories.ResourceStore) CatalogService {
	return &catalogServiceImpl{
		programRepo:  programRepo,
		resourceRepo: resourceRepo,
	}
}

// ListPrograms retrieves all programs
func (s *catalogServiceImpl) ListPrograms(ctx context.Context) ([]dto.ProgramResponse, error) {
	programs, err := s.programRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing programs: %w", err)
	}

	responses := make([]dto.ProgramResponse, 0, len(programs))
	for i := range programs {
		responses = append(responses, toProgramResponse(&programs[i]))
	}

	return responses, nil
}

// ListResources retrieves resources matching the filter
func (s *catalogServiceImpl) ListResources(ctx context.Context, filter *models.ResourceFilter) ([]dto.ResourceResponse, error) {
	resources, err := s.resourceRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing resources: %w", err)
	}

	responses := make([]dto.ResourceResponse, 0, len(resources))
	for i := range resources {
		responses = append(responses, toResourceResponse(&resources[i]))
	}

	return responses, nil
}

// toProgramResponse converts a Program model to its response DTO
func toProgramResponse(program *models.Program) dto.ProgramResponse {
	return dto.ProgramResponse{
		ID:              program.ID,
		Name:            program.Name,
		Type:            string(program.Type),
		Specializations: program.Specializations,
		Semesters:       program.Semesters,
		CreatedAt:       program.CreatedAt,
	}
}

// toResourceResponse converts a Resource model to its response DTO
func toResourceResponse(resource *models.Resource) dto.ResourceResponse {
	response := dto.ResourceResponse{
		ID:         resource.ID,
		ProgramID:  resource.ProgramID,
		Semester:   resource.Semester,
		Title:      resource.Title,
		Type:       string(resource.Type),
		FileURL:    resource.FileURL,
		FileSize:   resource.FileSize,
		UploadDate: resource.UploadDate,
		UploadedBy: resource.UploadedBy,
		CreatedAt:  resource.CreatedAt,
	}

	if resource.Program != nil {
		program := toProgramResponse(resource.Program)
		response.Program = &program
	}

	return response
}
