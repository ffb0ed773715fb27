package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campBuzz/app/echo-server/router"
	"campBuzz/business/budget"
	"campBuzz/business/event"
	"campBuzz/business/recommendation"
	"campBuzz/business/sponsorship"
	userService "campBuzz/business/user"
	"campBuzz/internal/middleware"
	"campBuzz/internal/repository/notification"
	psqlRepo "campBuzz/internal/repository/postgres"
	redisRepo "campBuzz/internal/repository/redis"
	"campBuzz/internal/rest"
	"campBuzz/pkg/config"
	"campBuzz/pkg/database"
	redisdb "campBuzz/pkg/database/redis"
	"campBuzz/pkg/logger"
	"campBuzz/pkg/metrics"
	"campBuzz/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting CampBuzz", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Init redis session store. Without it auth falls back to plain JWT.
	var tokenRepo *redisRepo.TokenRepository
	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("Failed to connect to redis, sessions disabled", err)
	} else {
		tokenRepo = redisRepo.NewTokenRepository(redisClient)
		defer func() {
			if err := redisdb.CloseRedisClient(redisClient); err != nil {
				logger.Error("Failed to close redis client", err)
			}
		}()
	}

	// Init notification from mailjet
	mailjetEmail := notification.NewMailjetRepository(
		notification.MailjetConfig{
			MailjetBaseURL:           cfg.Mailjet.MailjetBaseUrl,
			MailjetBasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
			MailjetBasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
			MailjetSenderEmail:       cfg.Mailjet.MailjetSenderEmail,
			MailjetSenderName:        cfg.Mailjet.MailjetSenderName,
		},
	)

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	prefRepo := psqlRepo.NewPreferenceRepository(db)
	eventRepo := psqlRepo.NewEventRepository(db)
	budgetRepo := psqlRepo.NewBudgetRepository(db)
	sponsorRepo := psqlRepo.NewSponsorRepository(db)
	dealRepo := psqlRepo.NewDealRepository(db)

	// Init service
	var sessionStore userService.TokenRepository
	if tokenRepo != nil {
		sessionStore = tokenRepo
	}
	usrService := userService.NewUserService(userRepo, prefRepo, sessionStore, validate, mailjetEmail, cfg.App.AppEmailVerificationKey, cfg.App.AppDeploymentUrl)
	eventService := event.NewEventService(eventRepo)
	recService := recommendation.NewService(eventRepo, prefRepo, recommendation.DefaultWeights())
	budgetService := budget.NewBudgetService(budgetRepo)
	sponsorshipService := sponsorship.NewSponsorshipService(sponsorRepo, dealRepo, budgetRepo)

	// Init handler
	userHandler := rest.NewUserHandler(usrService)
	eventHandler := rest.NewEventHandler(eventService)
	recHandler := rest.NewRecommendationHandler(recService)
	budgetHandler := rest.NewBudgetHandler(budgetService)
	sponsorshipHandler := rest.NewSponsorshipHandler(sponsorshipService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddleware()
	if tokenRepo != nil {
		authRequired = middleware.AuthMiddlewareWithRedis(usrService)
	}

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired, middleware.CollegeAdminOnly())
	router.SetupEventRoutes(api, eventHandler, authRequired, middleware.ClubAdminOnly())
	router.SetRecommendationRoutes(api, recHandler, authRequired)
	router.SetBudgetRoutes(api, budgetHandler, authRequired, middleware.ClubAdminOnly(), middleware.CollegeAdminOnly())
	router.SetSponsorshipRoutes(api, sponsorshipHandler, authRequired, middleware.ClubAdminOnly())

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
