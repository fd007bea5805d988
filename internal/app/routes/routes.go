package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/derya/acadvault/internal/app/controllers"
	"github.com/derya/acadvault/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	programController *controllers.ProgramController,
	resourceController *controllers.ResourceController,
	dashboardController *controllers.DashboardController,
	contactController *controllers.ContactController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/api/v1/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public catalog routes ---
	v1.GET("/programs", programController.GetAllPrograms)

	resources := v1.Group("/resources")
	{
		resources.GET("", resourceController.GetAllResources)
		resources.POST("/:id/download", resourceController.RecordDownload)
	}

	// --- Public contact and auth routes ---
	v1.POST("/contact", contactController.SubmitContactMessage)

	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Admin routes, all behind JWT auth ---
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.JWTAuth())
	{
		admin.POST("/resources", resourceController.UploadResource)
		admin.DELETE("/resources/:id", resourceController.DeleteResource)
		admin.GET("/dashboard", dashboardController.GetDashboardStats)
		admin.GET("/downloads", dashboardController.GetRecentDownloads)
		admin.GET("/messages", contactController.GetAllContactMessages)
	}
}
