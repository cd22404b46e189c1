package main

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"

	"github.com/dtkhuong/warbler/internal/config"
	"github.com/dtkhuong/warbler/internal/database"
	"github.com/dtkhuong/warbler/internal/handlers"
	"github.com/dtkhuong/warbler/internal/logger"
	"github.com/dtkhuong/warbler/internal/render"
	"github.com/dtkhuong/warbler/internal/repositories"
	"github.com/dtkhuong/warbler/internal/routes"
)

func main() {
	cfg := config.Load()
	logger.InitLogger(cfg.LogLevel)

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("Failed to open database: %v", err)
	}

	renderer, err := render.New()
	if err != nil {
		logrus.Fatalf("Failed to parse templates: %v", err)
	}

	store := sessions.NewCookieStore([]byte(cfg.SecretKey))

	h := handlers.New(
		repositories.NewUserRepository(db),
		repositories.NewMessageRepository(db),
		repositories.NewFollowRepository(db),
		repositories.NewLikeRepository(db),
		store,
		renderer,
	)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: routes.SetupRoutes(h),
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logrus.Infof("Server running on port %s", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.Fatalf("Could not listen on port %s: %v", cfg.Port, err)
	}
}
