package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/derya/acadvault/internal/app/models/dto"
	"github.com/derya/acadvault/internal/app/services"
	"github.com/derya/acadvault/internal/middleware"
)

// DashboardController handles admin dashboard operations
type DashboardController struct {
	statsService    services.StatsService
	downloadService services.DownloadService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(statsService services.StatsService, downloadService services.DownloadService) *DashboardController {
	return &DashboardController{
		statsService:    statsService,
		downloadService: downloadService,
	}
}

// GetDashboardStats handles retrieving the dashboard counters
// @Summary Get dashboard statistics
// @Description Retrieves program, resource, download and contact message counts
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DashboardStatsResponse} "Statistics retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (c *DashboardController) GetDashboardStats(ctx *gin.Context) {
	stats, err := c.statsService.Dashboard(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}

// GetRecentDownloads handles retrieving the recent download feed
// @Summary Get recent downloads
// @Description Retrieves the newest download events joined with their resource; deleted resources appear as "unknown"
// @Tags dashboard
// @Produce json
// @Param limit query int false "Number of events to return (default: 10)"
// @Success 200 {object} dto.APIResponse{data=dto.RecentDownloadListResponse} "Downloads retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/downloads [get]
func (c *DashboardController) GetRecentDownloads(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	downloads, err := c.downloadService.Recent(ctx, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.RecentDownloadListResponse{Downloads: downloads}))
}
