package service

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pageza/recipe-translate/backend/config"
	"github.com/pageza/recipe-translate/backend/internal/provider/recipe"
	"github.com/pageza/recipe-translate/backend/internal/provider/translation"
)

// NewRecipeServiceFromConfig wires the configured providers into a RecipeService.
// The translation provider is returned as well for startup usage diagnostics.
func NewRecipeServiceFromConfig(cfg *config.Config, logger zerolog.Logger) (*RecipeService, translation.Provider, error) {
	searcher, err := recipe.NewSearcher(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create recipe provider: %w", err)
	}

	provider, err := translation.NewProvider(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create translation provider: %w", err)
	}

	client := translation.NewClient(provider, cfg.TranslationTimeout, logger)
	svc := NewRecipeService(searcher, client, cfg.DefaultCuisine, cfg.DefaultTargetLanguage, logger)

	return svc, provider, nil
}
