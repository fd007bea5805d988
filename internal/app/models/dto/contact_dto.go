package dto

import (
	"time"

	"github.com/google/uuid"
)

// SubmitContactMessageRequest represents contact form data
type SubmitContactMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ContactMessageResponse represents a stored contact message
type ContactMessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactMessageListResponse represents a list of contact messages
type ContactMessageListResponse struct {
	Messages []ContactMessageResponse `json:"messages"`
}
