package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"mentorship-service/logger"
	"mentorship-service/src/config"
	"mentorship-service/src/controller"
	"mentorship-service/src/db"
	"mentorship-service/src/hub"
	"mentorship-service/src/rabbitmq"
	"mentorship-service/src/repository"
	"mentorship-service/src/router"
	"mentorship-service/src/service"
)

func main() {
	cfg := loadConfig()
	setupLogging()
	requestLogger := logger.New(cfg.LogLevel)

	database, err := db.NewDB(&cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	publisher := connectPublisher(cfg.AMQPURL)
	if publisher != nil {
		defer publisher.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := createServer(ctx, cfg, database, publisher, requestLogger)
	startServerWithGracefulShutdown(ctx, server, cfg)
}

func loadConfig() config.GlobalConfig {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return cfg
}

func setupLogging() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
}

// connectPublisher connects to RabbitMQ when AMQP_URL is set. The broker is
// optional; without it notifications stay database-only.
func connectPublisher(amqpURL string) *rabbitmq.AMQPPublisher {
	if amqpURL == "" {
		slog.Warn("AMQP_URL not set, notification events will not be published")
		return nil
	}
	publisher, err := rabbitmq.NewAMQPPublisher(amqpURL)
	if err != nil {
		slog.Warn("Failed to connect to RabbitMQ, continuing without event publishing", "error", err)
		return nil
	}
	slog.Info("Connected to RabbitMQ")
	return publisher
}

func createServer(ctx context.Context, cfg config.GlobalConfig, database *db.DB, amqpPublisher *rabbitmq.AMQPPublisher, requestLogger *logrus.Logger) *http.Server {
	sessionRepo := repository.NewSessionRepository(database)
	userRepo := repository.NewUserRepository(database)
	questionRepo := repository.NewQuestionRepository(database)
	notificationRepo := repository.NewNotificationRepository(database)
	messageRepo := repository.NewMessageRepository(database)
	courseRepo := repository.NewCourseRepository(database)

	var publisher rabbitmq.Publisher
	if amqpPublisher != nil {
		publisher = amqpPublisher
	}

	notificationSvc := service.NewNotificationService(notificationRepo, publisher)
	sessionSvc := service.NewSessionService(sessionRepo, userRepo, notificationSvc)
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	userSvc := service.NewUserService(userRepo)
	questionSvc := service.NewQuestionService(questionRepo, userRepo, courseRepo, sessionRepo, notificationSvc)
	adminSvc := service.NewAdminService(userRepo, sessionRepo)
	chatSvc := service.NewChatService(messageRepo)

	chatHub := hub.NewHub(ctx, chatSvc)
	go chatHub.Run()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	r := router.Router{
		Logger:    requestLogger,
		JWTSecret: cfg.JWTSecret,
		UploadDir: cfg.UploadDir,
		Controllers: router.Controllers{
			Auth:         controller.NewAuthController(authSvc, requestLogger),
			Session:      controller.NewSessionController(sessionSvc, requestLogger),
			User:         controller.NewUserController(userSvc, cfg.UploadDir, requestLogger),
			Question:     controller.NewQuestionController(questionSvc, requestLogger),
			Admin:        controller.NewAdminController(adminSvc, requestLogger),
			Notification: controller.NewNotificationController(notificationSvc, requestLogger),
			Chat:         controller.NewChatController(chatSvc, chatHub, cfg.JWTSecret, requestLogger),
			Course:       controller.NewCourseController(courseRepo, requestLogger),
		},
	}

	engine, err := r.SetUpRouter()
	if err != nil {
		log.Fatalf("Failed to set up router: %v", err)
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	return &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler: c.Handler(engine),
	}
}

func startServerWithGracefulShutdown(ctx context.Context, server *http.Server, cfg config.GlobalConfig) {
	go func() {
		slog.Info("Starting server", "host", cfg.Host, "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server...")

	if err := server.Shutdown(context.Background()); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		return
	}
	slog.Info("Server exited gracefully")
}
