package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/vitalog/vitalog-server/internal/api/http/router"
	httpServer "github.com/vitalog/vitalog-server/internal/api/http/server"
	"github.com/vitalog/vitalog-server/internal/config"
	"github.com/vitalog/vitalog-server/internal/logger"
	"github.com/vitalog/vitalog-server/internal/provider/gemini"
	"github.com/vitalog/vitalog-server/internal/repository/postgres"
	"github.com/vitalog/vitalog-server/internal/service"
	"github.com/vitalog/vitalog-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	location, err := time.LoadLocation(cfg.Suggestion.Timezone)
	if err != nil {
		logger.Fatal("failed to load suggestion timezone", "timezone", cfg.Suggestion.Timezone, "error", err)
	}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	entryRepo := postgres.NewEntryRepository(db)
	suggestionRepo := postgres.NewSuggestionRepository(db)

	tokenManager := token.NewJWT(cfg.JWT.Secret)
	provider := gemini.NewClient(cfg.Gemini)

	authService := service.NewAuth(userRepo, profileRepo, entryRepo, suggestionRepo, tokenManager, logger)
	profileService := service.NewProfile(profileRepo, location, logger)
	entryService := service.NewEntry(entryRepo, logger)
	suggestionService := service.NewSuggestion(
		suggestionRepo, entryRepo, profileRepo, provider,
		location, cfg.Suggestion.RecentEntries, cfg.Gemini.Timeout, logger,
	)

	r := router.New(authService, profileService, entryService, suggestionService, tokenManager, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Starting server on", "address", srv.Address())
		if err := srv.Start(); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
