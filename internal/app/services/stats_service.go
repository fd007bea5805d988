package services

import (
	"context"
	"fmt"

	"github.com/derya/acadvault/internal/app/models/dto"
	"github.com/derya/acadvault/internal/app/repositories"
)

// StatsService aggregates catalog counts for the admin dashboard
type StatsService interface {
	// Dashboard returns the four headline counts. The counts are read
	// independently, not in one snapshot; concurrent writes may skew them
	// slightly relative to each other.
	Dashboard(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

// statsServiceImpl implements StatsService
type statsServiceImpl struct {
	programRepo  repositories.ProgramStore
	resourceRepo repositories.ResourceStore
	downloadRepo repositories.DownloadStore
	contactRepo  repositories.ContactMessageStore
}

// NewStatsService creates a new StatsService
func NewStatsService(
	programRepo repositories.ProgramStore,
	resourceRepo repositories.ResourceStore,
	downloadRepo repositories.DownloadStore,
	contactRepo repositories.ContactMessageStore,
) StatsService {
	return &statsServiceImpl{
		programRepo:  programRepo,
		resourceRepo: resourceRepo,
		downloadRepo: downloadRepo,
		contactRepo:  contactRepo,
	}
}

// Dashboard collects the entity counts shown on the admin dashboard
func (s *statsServiceImpl) Dashboard(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	programs, err := s.programRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting programs: %w", err)
	}

	resources, err := s.resourceRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting resources: %w", err)
	}

	downloads, err := s.downloadRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting downloads: %w", err)
	}

	messages, err := s.contactRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting contact messages: %w", err)
	}

	return &dto.DashboardStatsResponse{
		Programs:  programs,
		Resources: resources,
		Downloads: downloads,
		Messages:  messages,
	}, nil
}
