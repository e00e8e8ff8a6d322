package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"report2clean/config"
	"report2clean/cron"
	"report2clean/database"
	notificationRepoPkg "report2clean/database/repository/notification"
	preferenceRepoPkg "report2clean/database/repository/preference"
	reportRepoPkg "report2clean/database/repository/report"
	userRepoPkg "report2clean/database/repository/user"
	"report2clean/handlers"
	"report2clean/middleware"
	"report2clean/routes"
	"report2clean/services/dashboard"
	"report2clean/services/notify"
	"report2clean/services/report"
	"report2clean/services/storage"
	"report2clean/services/user"
	"report2clean/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	storageService, err := storage.NewCloudinaryStorage()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	reportRepo := reportRepoPkg.NewMongoReportRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	inboxRepo := notificationRepoPkg.NewMongoInboxRepo()
	prefRepo := preferenceRepoPkg.NewMongoPreferenceRepo()

	// delivery channels.
	mailer := notify.NewSendgridMailer()
	pusher := notify.NewFCMPusher()

	fanout := notify.NewFanoutDispatcher(
		userRepo,
		prefRepo,
		inboxRepo,
		mailer,
		pusher,
		config.AppConfig.FanoutRadiusMeters,
	)

	// services.
	reportService := &report.DefaultReportService{
		Repo:      reportRepo,
		Users:     userRepo,
		Fanout:    fanout,
		Scheduler: notify.NewAsyncScheduler(),
		Mailer:    mailer,
	}
	dashboardService := &dashboard.DefaultDashboardService{
		Reports: reportRepo,
		Users:   userRepo,
		Cache:   utils.GetCacheClient(),
	}
	notificationService := &notify.DefaultNotificationService{
		Inbox:       inboxRepo,
		Preferences: prefRepo,
	}
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(
		reportService,
		dashboardService,
		notificationService,
		userService,
		storageService,
	)
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitDigestWorker(reportRepo, userRepo, mailer)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
