package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/derya/acadvault/internal/app/models/dto"
	"github.com/derya/acadvault/internal/app/services"
	"github.com/derya/acadvault/internal/middleware"
)

// ContactController handles contact form operations
type ContactController struct {
	contactService services.ContactService
}

// NewContactController creates a new ContactController
func NewContactController(contactService services.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// SubmitContactMessage handles a contact form submission
// @Summary Submit a contact message
// @Description Stores a visitor's contact form submission
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.SubmitContactMessageRequest true "Contact form data"
// @Success 201 {object} dto.APIResponse{data=dto.ContactMessageResponse} "Message submitted successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /contact [post]
func (c *ContactController) SubmitContactMessage(ctx *gin.Context) {
	var req dto.SubmitContactMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid contact form data")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	message, err := c.contactService.Submit(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(message))
}

// GetAllContactMessages handles retrieving the contact inbox
// @Summary Get all contact messages
// @Description Retrieves all contact messages, most recent first
// @Tags contact
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ContactMessageListResponse} "Messages retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/messages [get]
func (c *ContactController) GetAllContactMessages(ctx *gin.Context) {
	messages, err := c.contactService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ContactMessageListResponse{Messages: messages}))
}
