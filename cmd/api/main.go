package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"github.com/docspot/booking-api/internal/config"
	"github.com/docspot/booking-api/internal/email"
	adminHandler "github.com/docspot/booking-api/internal/handler/admin"
	doctorHandler "github.com/docspot/booking-api/internal/handler/doctor"
	"github.com/docspot/booking-api/internal/handler/metrics"
	userHandler "github.com/docspot/booking-api/internal/handler/user"
	"github.com/docspot/booking-api/internal/middleware"
	"github.com/docspot/booking-api/internal/repository/postgres"
	"github.com/docspot/booking-api/internal/router"
	authService "github.com/docspot/booking-api/internal/service/auth"
	doctorService "github.com/docspot/booking-api/internal/service/doctor"
	userService "github.com/docspot/booking-api/internal/service/user"
	workflowService "github.com/docspot/booking-api/internal/service/workflow"
	"github.com/docspot/booking-api/pkg/auth"
	"github.com/docspot/booking-api/pkg/logger"
	"github.com/docspot/booking-api/pkg/security"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(cfg.Log.Level, cfg.Log.Pretty)

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)

	// Shared infrastructure
	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	hasher := security.NewBcryptHasher(12)
	mailer := email.NewService(cfg.SMTP)
	doctorCache := cache.New(time.Minute, 5*time.Minute)

	// Services
	authSvc := authService.NewService(userRepo, jwtSvc, hasher)
	userSvc := userService.NewService(userRepo, doctorRepo, notificationRepo)
	doctorSvc := doctorService.NewService(doctorRepo, doctorCache)
	workflowSvc := workflowService.NewService(userRepo, doctorRepo, appointmentRepo, mailer, doctorCache)

	// Middleware and handlers
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, userRepo)
	metricsH := metrics.New()
	userH := userHandler.NewHandler(authSvc, userSvc, workflowSvc)
	doctorH := doctorHandler.NewHandler(doctorSvc, workflowSvc)
	adminH := adminHandler.NewHandler(userSvc, doctorSvc, workflowSvc)

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}

	r := router.NewRouter(authMiddleware, userH, doctorH, adminH, metricsH, router.Config{
		RateLimit: middleware.RateLimiterConfig{
			RPS:   cfg.RateLimit.RPS,
			Burst: cfg.RateLimit.Burst,
		},
		CORSConfig: corsConfig,
	})
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
