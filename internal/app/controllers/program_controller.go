package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/derya/acadvault/internal/app/models/dto"
	"github.com/derya/acadvault/internal/app/services"
	"github.com/derya/acadvault/internal/middleware"
)

// ProgramController handles program catalog operations
type ProgramController struct {
	catalogService services.CatalogService
}

// NewProgramController creates a new ProgramController
func NewProgramController(catalogService services.CatalogService) *ProgramController {
	return &ProgramController{catalogService: catalogService}
}

// GetAllPrograms handles retrieving the program catalog
// @Summary Get all programs
// @Description Retrieves all academic programs, undergraduate first, then by name
// @Tags programs
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ProgramListResponse} "Programs retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs [get]
func (c *ProgramController) GetAllPrograms(ctx *gin.Context) {
	programs, err := c.catalogService.ListPrograms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ProgramListResponse{Programs: programs}))
}
