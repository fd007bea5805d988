package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/derya/acadvault/internal/app/models"
	"github.com/derya/acadvault/internal/app/models/dto"
	"github.com/derya/acadvault/internal/app/services"
	"github.com/derya/acadvault/internal/middleware"
	"github.com/derya/acadvault/internal/pkg/logger"
)

// ResourceController handles resource catalog and ingestion operations
type ResourceController struct {
	catalogService   services.CatalogService
	ingestionService services.IngestionService
	downloadService  services.DownloadService
}

// NewResourceController creates a new ResourceController
func NewResourceController(
	catalogService services.CatalogService,
	ingestionService services.IngestionService,
	downloadService services.DownloadService,
) *ResourceController {
	return &ResourceController{
		catalogService:   catalogService,
		ingestionService: ingestionService,
		downloadService:  downloadService,
	}
}

// GetAllResources handles retrieving resources with optional filtering
// @Summary Get all resources
// @Description Retrieves resources with optional program and semester filtering, most recent upload first. A semester filter without programId is ignored.
// @Tags resources
// @Produce json
// @Param programId query string false "Filter by program ID"
// @Param semester query int false "Filter by semester (requires programId)"
// @Success 200 {object} dto.APIResponse{data=dto.ResourceListResponse} "Resources retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /resources [get]
func (c *ResourceController) GetAllResources(ctx *gin.Context) {
	var req dto.ResourceFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid filter parameters")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	filter := &models.ResourceFilter{Semester: req.Semester}
	if req.ProgramID != nil && *req.ProgramID != "" {
		programID, err := uuid.Parse(*req.ProgramID)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid program ID").
				WithField("programId")
			ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
			return
		}
		filter.ProgramID = &programID
	}

	resources, err := c.catalogService.ListResources(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ResourceListResponse{Resources: resources}))
}

// UploadResource handles uploading a new resource
// @Summary Upload a resource
// @Description Validates the form fields, stores the file, then creates the catalog entry
// @Tags resources
// @Accept multipart/form-data
// @Produce json
// @Param programId formData string true "Owning program ID"
// @Param semester formData int true "Semester within the program"
// @Param title formData string true "Resource title"
// @Param type formData string true "Resource type (previous_year_papers, study_material, syllabus)"
// @Param file formData file true "Document file"
// @Success 201 {object} dto.APIResponse{data=dto.ResourceResponse} "Resource created successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 502 {object} dto.ErrorResponse "Storage failure"
// @Security BearerAuth
// @Router /admin/resources [post]
func (c *ResourceController) UploadResource(ctx *gin.Context) {
	var req dto.UploadResourceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid form fields")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	input := &services.UploadInput{
		Semester: req.Semester,
		Title:    req.Title,
		Type:     models.ResourceType(req.Type),
	}

	if req.ProgramID != "" {
		programID, err := uuid.Parse(req.ProgramID)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid program ID").
				WithField("programId")
			ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
			return
		}
		input.ProgramID = programID
	}

	// A missing file is reported by the pipeline as a missing required
	// field, so binding errors here are not fatal.
	fileHeader, err := ctx.FormFile("file")
	if err == nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			logger.Error().Err(openErr).Msg("Failed to open uploaded file")
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
			ctx.JSON(http.StatusInternalServerError, dto.APIResponse{Error: errorDetail})
			return
		}
		defer file.Close()

		input.Content = file
		input.Filename = fileHeader.Filename
		input.Size = fileHeader.Size
		input.ContentType = fileHeader.Header.Get("Content-Type")
	}

	if adminID, exists := ctx.Get(middleware.ContextAdminID); exists {
		if id, ok := adminID.(uuid.UUID); ok {
			input.UploaderID = &id
		}
	}

	resource, err := c.ingestionService.Upload(ctx, input, nil)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resource))
}

// DeleteResource handles deleting a resource
// @Summary Delete a resource
// @Description Removes a resource from the catalog; its download history is preserved
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Resource deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid resource ID"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Security BearerAuth
// @Router /admin/resources/{id} [delete]
func (c *ResourceController) DeleteResource(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid resource ID").
			WithField("id")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	if err := c.ingestionService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Resource deleted successfully"}))
}

// RecordDownload handles recording a download event
// @Summary Record a download
// @Description Appends a download event to the log and returns the file URL when the resource exists
// @Tags downloads
// @Produce json
// @Param id path string true "Resource ID"
// @Success 201 {object} dto.APIResponse{data=dto.DownloadResponse} "Download recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid resource ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /resources/{id}/download [post]
func (c *ResourceController) RecordDownload(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid resource ID").
			WithField("id")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail})
		return
	}

	var ip *string
	if clientIP := ctx.ClientIP(); clientIP != "" {
		ip = &clientIP
	}

	download, err := c.downloadService.Record(ctx, id, ip)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(download))
}
