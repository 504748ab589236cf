package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contact-relay-backend/config"
	_ "contact-relay-backend/docs" // Important for Swagger
	v1 "contact-relay-backend/internal/delivery/http/v1"
	"contact-relay-backend/internal/usecase"
	"contact-relay-backend/pkg/email"
	"contact-relay-backend/pkg/logger"
	"contact-relay-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// @title           Contact Relay API
// @version         1.0
// @description     Relays portfolio contact form submissions to the owner's inbox over SMTP.
// @host            localhost:4000
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logCloser := logger.Init(logger.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	defer logCloser.Close()
	logger.Log.Info("Starting contact relay", "port", cfg.Port, "allowed_origins", cfg.AllowedOrigins)

	// 3. Setup Mail Transport
	transport := email.NewSMTPTransport(email.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
	})
	if !cfg.HasSMTPCredentials() {
		logger.Log.Warn("GMAIL_USER or GMAIL_APP_PASS not set - every submission will fail authentication")
	}

	// 4. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	contactUC := usecase.NewContactUsecase(transport, validate, usecase.ContactSettings{
		Recipient:     cfg.ContactEmailTo,
		SubjectPrefix: cfg.SubjectPrefix,
	})

	// 5. Setup Router
	gin.SetMode(cfg.GinMode)
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		Config:    cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()
	logger.Log.Info("Server is running", "addr", srv.Addr)

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
