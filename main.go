package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/yurayurastudio/studio_backend/config"
	"github.com/yurayurastudio/studio_backend/controllers"
	"github.com/yurayurastudio/studio_backend/middleware"
	"github.com/yurayurastudio/studio_backend/repositories"
	"github.com/yurayurastudio/studio_backend/routes"
	"github.com/yurayurastudio/studio_backend/services"
	"github.com/yurayurastudio/studio_backend/utils"
	"github.com/yurayurastudio/studio_backend/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	log := config.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := config.ConnectDB(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.WithError(err).Error("Failed to disconnect from MongoDB")
		}
	}()

	// Connect to Redis; rewards are computed uncached without it
	var rewardCache services.RewardCache
	if redisClient := config.ConnectRedis(ctx, cfg, log); redisClient != nil {
		defer redisClient.Close()
		rewardCache = repositories.NewRewardCache(redisClient, cfg.RewardCacheTTL)
	}

	// Create WebSocket hub
	wsHub := websocket.NewHub(log)
	go wsHub.Run(ctx)

	channels := services.NotificationChannels{Realtime: wsHub}
	if mailer := utils.NewMailer(cfg); mailer != nil {
		channels.Mailer = mailer
	}
	firebaseApp, err := config.InitFirebase(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Warn("Firebase initialization failed, push notifications disabled")
	}
	push, err := utils.NewPushSender(ctx, firebaseApp)
	if err != nil {
		log.WithError(err).Warn("FCM client unavailable, push notifications disabled")
	}
	if push != nil {
		channels.Push = push
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	distributionRepo := repositories.NewRewardDistributionRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	settingsRepo := repositories.NewNotificationSettingsRepository(db)

	jwtAuth := middleware.NewJWTAuth(cfg.JWTSecret, cfg.JWTTTL, log)
	policy := services.NewRolePolicy()

	// Initialize services
	notificationService := services.NewNotificationService(notificationRepo, settingsRepo, userRepo, channels, log)
	rewardService := services.NewRewardService(projectRepo, distributionRepo, rewardCache, policy, log)
	projectService := services.NewProjectService(projectRepo, distributionRepo, rewardService, notificationService, policy, cfg.AppURL, log)
	userService := services.NewUserService(userRepo, jwtAuth, policy, log)

	e := echo.New()
	e.HideBanner = true
	e.Validator = controllers.NewValidator()

	rateLimiter := middleware.NewRateLimiter()
	go rateLimiter.Cleanup(ctx, time.Minute)

	// Middleware
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(middleware.CORS(cfg.CORSAllowedOrigins, cfg.IsDevelopment()))
	e.Use(middleware.SecurityHeaders(!cfg.IsDevelopment()))
	e.Use(rateLimiter.RateLimit())

	routes.SetupRoutes(e, &routes.Handlers{
		Auth:          controllers.NewAuthController(userService, log),
		Users:         controllers.NewUserController(userService, log),
		Projects:      controllers.NewProjectController(projectService, log),
		Rewards:       controllers.NewRewardController(rewardService, log),
		Notifications: controllers.NewNotificationController(notificationService, log),
		JWT:           jwtAuth,
		Policy:        policy,
		Hub:           wsHub,
		DB:            client,
	})

	go func() {
		log.WithField("port", cfg.Port).Info("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}
