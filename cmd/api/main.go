package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sanari/health-api/internal/config"
	"github.com/sanari/health-api/internal/handler"
	appointmentHandler "github.com/sanari/health-api/internal/handler/appointment"
	authHandler "github.com/sanari/health-api/internal/handler/auth"
	reminderHandler "github.com/sanari/health-api/internal/handler/reminder"
	uploadHandler "github.com/sanari/health-api/internal/handler/upload"
	vaccinationHandler "github.com/sanari/health-api/internal/handler/vaccination"
	"github.com/sanari/health-api/internal/middleware"
	"github.com/sanari/health-api/internal/model"
	"github.com/sanari/health-api/internal/router"
	appointmentService "github.com/sanari/health-api/internal/service/appointment"
	authService "github.com/sanari/health-api/internal/service/auth"
	eventService "github.com/sanari/health-api/internal/service/event"
	"github.com/sanari/health-api/internal/service/notification"
	reminderService "github.com/sanari/health-api/internal/service/reminder"
	uploadService "github.com/sanari/health-api/internal/service/upload"
	vaccinationService "github.com/sanari/health-api/internal/service/vaccination"
	"github.com/sanari/health-api/internal/store"
	"github.com/sanari/health-api/internal/worker"
	pkgauth "github.com/sanari/health-api/pkg/auth"
	"github.com/sanari/health-api/pkg/logger"
	"github.com/sanari/health-api/pkg/messaging"
	redisbroker "github.com/sanari/health-api/pkg/messaging/redis"
	"github.com/sanari/health-api/pkg/metrics"
	"github.com/sanari/health-api/pkg/security"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	appLogger := logger.NewLogger(&logger.Config{
		Level:      level,
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
		Pretty:     cfg.Log.Pretty,
	})
	log.Logger = *appLogger.Zerolog()

	m := metrics.NewMetrics("sanari")

	// Message broker for record lifecycle events. Without Redis configured
	// events just get logged.
	var broker messaging.Broker
	if cfg.Redis.URL != "" {
		broker, err = redisbroker.NewBroker(redisbroker.Config{
			URL:          cfg.Redis.URL,
			MaxRetries:   cfg.Redis.MaxRetries,
			RetryBackoff: cfg.Redis.RetryBackoff,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		}, &log.Logger)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
	} else {
		broker = messaging.NewLogBroker(&log.Logger)
	}
	defer broker.Close()

	events := eventService.NewPublisher(broker, &log.Logger, m, cfg.Events.Channel)

	// One in-memory store per record type, owned by this process.
	reminderStore := store.New[*model.Reminder]()
	vaccinationStore := store.New[*model.Vaccination]()
	appointmentStore := store.New[*model.Appointment]()
	uploadStore := store.New[*model.UploadedFile]()
	userStore := store.New[*model.User]()

	tokens := pkgauth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	hasher := security.NewBcryptHasher(0)

	reminderSvc := reminderService.NewService(reminderStore, events, m)
	vaccinationSvc := vaccinationService.NewService(vaccinationStore, events, m)
	appointmentSvc := appointmentService.NewService(appointmentStore, events, m)
	uploadSvc := uploadService.NewService(uploadStore, uploadService.DataURLIngestor{}, events, m, cfg.Uploads.MaxFiles)
	authSvc := authService.NewService(userStore, hasher, tokens)

	var sender notification.Sender
	switch cfg.Notifications.Mode {
	case "email":
		sender = notification.NewEmailSender(notification.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
	default:
		sender = notification.NewSMSSender(&log.Logger)
	}

	authMiddleware := middleware.NewAuthMiddleware(tokens)

	h := handler.NewHandler()
	r := router.NewRouter(
		authMiddleware,
		authHandler.NewHandler(authSvc),
		reminderHandler.NewHandler(reminderSvc),
		vaccinationHandler.NewHandler(vaccinationSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		uploadHandler.NewHandler(uploadSvc),
		h,
		router.Config{
			RateLimit: middleware.RateLimiterConfig{
				RPS:   cfg.RateLimit.RPS,
				Burst: cfg.RateLimit.Burst,
			},
			CORS:      corsConfig(cfg),
			Namespace: "sanari",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	checkerCfg, err := worker.CheckerConfigFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load reminder checker config")
	}
	if checkerCfg.Enabled {
		checker := worker.NewReminderChecker(reminderSvc, sender, &log.Logger, m, checkerCfg)
		go checker.Start(ctx)
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
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

func corsConfig(cfg *config.Config) middleware.CORSConfig {
	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsCfg.AllowedOrigins = cfg.CORS.AllowedOrigins
	}
	return corsCfg
}
