package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/synergy-dev/synergysphere/db"
	"github.com/synergy-dev/synergysphere/internal/auth"
	"github.com/synergy-dev/synergysphere/internal/config"
	"github.com/synergy-dev/synergysphere/internal/handlers"
	"github.com/synergy-dev/synergysphere/internal/middleware"
	"github.com/synergy-dev/synergysphere/internal/notifier"
	"github.com/synergy-dev/synergysphere/internal/router"
	"github.com/synergy-dev/synergysphere/internal/services"
	"github.com/synergy-dev/synergysphere/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()

	gdb, err := db.Connect(cfg.DatabaseURL)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	authn, err := auth.NewJWT(cfg.JWTSecret, time.Hour*168)

	if err != nil {
		log.Fatalf("Failed to initialize authenticator: %v", err)
	}

	entities := store.New(gdb)

	var sender notifier.Notifier = notifier.Disabled{}

	if cfg.MailEnabled {
		smtpSender, err := notifier.NewSMTP(notifier.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})

		if err != nil {
			log.Fatalf("Failed to initialize mailer: %v", err)
		}

		sender = smtpSender
	}

	dispatcher := notifier.NewDispatcher(sender, entities)
	svc := services.New(entities, dispatcher)
	hub := handlers.NewHub(cfg.AllowedOrigins)
	h := handlers.New(svc, authn, hub, cfg.Domain)

	r := router.New(h, middleware.Auth(authn, entities), cfg.AllowedOrigins)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
