package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pageza/recipe-translate/backend/config"
	"github.com/pageza/recipe-translate/backend/internal/logger"
	"github.com/pageza/recipe-translate/backend/internal/provider/translation"
	"github.com/pageza/recipe-translate/backend/internal/server"
	"github.com/pageza/recipe-translate/backend/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		bootLog := logger.New("info", "json", os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	gin.SetMode(config.GetEnvironment().GinMode())

	recipeService, provider, err := service.NewRecipeServiceFromConfig(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	recipeKey := cfg.SpoonacularAPIKey
	if cfg.RecipeProvider == config.RecipeProviderRapidAPI {
		recipeKey = cfg.RapidAPIKey
	}
	log.Info().
		Str("recipe_provider", cfg.RecipeProvider).
		Str("recipe_api_key", config.MaskKey(recipeKey)).
		Str("translation_provider", cfg.TranslationProvider).
		Msg("providers configured")
	logTranslationUsage(log, provider, cfg.TranslationTimeout)

	// Create and start server
	srv := server.New(cfg, recipeService, log)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
		return
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("received signal")
	}

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server shutdown error")
	}
	log.Info().Msg("server stopped")
}

// logTranslationUsage reports the translation quota once; failures are informational only
func logTranslationUsage(log zerolog.Logger, provider translation.Provider, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	usage, err := translation.QueryUsage(ctx, provider)
	if err != nil {
		log.Warn().Err(err).Str("provider", provider.Name()).Msg("translation usage unavailable")
		return
	}
	log.Info().
		Str("provider", provider.Name()).
		Int64("character_count", usage.CharacterCount).
		Int64("character_limit", usage.CharacterLimit).
		Int64("character_remaining", usage.Remaining()).
		Msg("translation usage")
}
