package handlers

import (
	"report2clean/services/dashboard"
	"report2clean/services/notify"
	"report2clean/services/report"
	"report2clean/services/storage"
	"report2clean/services/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for routing.
type HandlerBundle struct {
	// Report endpoints
	CreateReport  gin.HandlerFunc
	NearbyReports gin.HandlerFunc
	GetReport     gin.HandlerFunc
	MyReports     gin.HandlerFunc

	// Dashboard
	DashboardStats gin.HandlerFunc

	// Notifications and preferences
	LatestNotifications      gin.HandlerFunc
	MarkNotificationRead     gin.HandlerFunc
	MarkAllNotificationsRead gin.HandlerFunc
	GetPreferences           gin.HandlerFunc
	UpdatePreferences        gin.HandlerFunc

	// User profile
	GetProfile     gin.HandlerFunc
	VerifyLocation gin.HandlerFunc
	SetFCMToken    gin.HandlerFunc

	// Admin triage
	AdminUpdateStatus gin.HandlerFunc
	AdminAcceptReport gin.HandlerFunc
	AdminDeleteReport gin.HandlerFunc
	AdminListReports  gin.HandlerFunc
}

// NewHandlerBundle binds every handler to its service.
func NewHandlerBundle(
	reportSvc report.ReportService,
	dashboardSvc dashboard.DashboardService,
	notificationSvc notify.NotificationService,
	userSvc user.UserService,
	store storage.StorageService,
) *HandlerBundle {
	return &HandlerBundle{
		CreateReport:  CreateReportHandler(reportSvc, store),
		NearbyReports: NearbyReportsHandler(reportSvc),
		GetReport:     GetReportHandler(reportSvc),
		MyReports:     MyReportsHandler(reportSvc),

		DashboardStats: DashboardStatsHandler(dashboardSvc),

		LatestNotifications:      LatestNotificationsHandler(notificationSvc),
		MarkNotificationRead:     MarkNotificationReadHandler(notificationSvc),
		MarkAllNotificationsRead: MarkAllNotificationsReadHandler(notificationSvc),
		GetPreferences:           GetPreferencesHandler(notificationSvc),
		UpdatePreferences:        UpdatePreferencesHandler(notificationSvc),

		GetProfile:     GetProfileHandler(userSvc),
		VerifyLocation: VerifyLocationHandler(userSvc),
		SetFCMToken:    SetFCMTokenHandler(userSvc),

		AdminUpdateStatus: AdminUpdateStatusHandler(reportSvc),
		AdminAcceptReport: AdminAcceptReportHandler(reportSvc),
		AdminDeleteReport: AdminDeleteReportHandler(reportSvc),
		AdminListReports:  AdminListReportsHandler(reportSvc),
	}
}
