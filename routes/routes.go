package routes

import (
	"time"

	"report2clean/handlers"
	"report2clean/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes registers report submission and browsing endpoints.
func RegisterReportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reports")
	api.Use(middleware.UserAuthMiddleware())
	{
		api.POST("", hb.CreateReport)
		api.GET("/mine", hb.MyReports)
		api.GET("/nearby/:lat/:lng/:radius", hb.NearbyReports)
		api.GET("/:id", hb.GetReport)
	}
}

// RegisterDashboardRoutes registers the dashboard endpoint.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	api.Use(middleware.UserAuthMiddleware())
	{
		api.GET("/stats", hb.DashboardStats)
	}
}

// RegisterNotificationRoutes registers inbox endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	api.Use(middleware.UserAuthMiddleware())
	{
		api.GET("/latest", hb.LatestNotifications)
		api.PUT("/read-all", hb.MarkAllNotificationsRead)
		api.PUT("/:entryId/read", hb.MarkNotificationRead)
	}
}

// RegisterUserRoutes registers profile and preference endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users/me")
	api.Use(middleware.UserAuthMiddleware())
	{
		api.GET("", hb.GetProfile)
		api.GET("/preferences", hb.GetPreferences)
		api.PUT("/preferences", hb.UpdatePreferences)
		api.PUT("/location", hb.VerifyLocation)
		api.PUT("/fcm-token", hb.SetFCMToken)
	}
}

// RegisterAdminRoutes registers report triage endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.UserAuthMiddleware(), middleware.AdminAuthMiddleware())
	{
		api.GET("/reports", hb.AdminListReports)
		api.PUT("/reports/:id/status/:status", hb.AdminUpdateStatus)
		api.PUT("/reports/:id/accept", hb.AdminAcceptReport)
		api.DELETE("/reports/:id", hb.AdminDeleteReport)
	}
}

// RegisterHealthRoute registers the unauthenticated health endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes wires CORS and every route group.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterReportRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
