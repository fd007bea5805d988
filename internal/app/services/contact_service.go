package services

import (
	"context"
	"fmt"

	"github.com/derya/acadvault/internal/app/models"
	"github.com/derya/acadvault/internal/app/models/dto"
	"github.com/derya/acadvault/internal/app/repositories"
)

// ContactService handles contact form submissions and the admin inbox
type ContactService interface {
	Submit(ctx context.Context, req *dto.SubmitContactMessageRequest) (*dto.ContactMessageResponse, error)
	List(ctx context.Context) ([]dto.ContactMessageResponse, error)
}

// contactServiceImpl implements ContactService
type contactServiceImpl struct {
	contactRepo repositories.ContactMessageStore
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo repositories.ContactMessageStore) ContactService {
	return &contactServiceImpl{contactRepo: contactRepo}
}

// Submit stores a contact form submission
func (s *contactServiceImpl) Submit(ctx context.Context, req *dto.SubmitContactMessageRequest) (*dto.ContactMessageResponse, error) {
	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.contactRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("error submitting contact message: %w", err)
	}

	response := toContactMessageResponse(message)
	return &response, nil
}

// List retrieves all contact messages, most recent first
func (s *contactServiceImpl) List(ctx context.Context) ([]dto.ContactMessageResponse, error) {
	messages, err := s.contactRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing contact messages: %w", err)
	}

	responses := make([]dto.ContactMessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, toContactMessageResponse(&messages[i]))
	}

	return responses, nil
}

// toContactMessageResponse converts a ContactMessage model to its response DTO
func toContactMessageResponse(message *models.ContactMessage) dto.ContactMessageResponse {
	return dto.ContactMessageResponse{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Subject:   message.Subject,
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
	}
}
