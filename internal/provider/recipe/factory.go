package recipe

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pageza/recipe-translate/backend/config"
)

// NewSearcher builds the adapter selected by cfg.RecipeProvider
func NewSearcher(cfg *config.Config, logger zerolog.Logger) (Searcher, error) {
	switch cfg.RecipeProvider {
	case config.RecipeProviderSpoonacular:
		return NewSpoonacularClient(cfg.SpoonacularBaseURL, cfg.SpoonacularAPIKey, cfg.RecipeTimeout, logger), nil
	case config.RecipeProviderRapidAPI:
		return NewRapidAPIClient(cfg.RapidAPIBaseURL, cfg.RapidAPIHost, cfg.RapidAPIKey, cfg.RecipeTimeout, logger), nil
	default:
		return nil, fmt.Errorf("unknown recipe provider %q", cfg.RecipeProvider)
	}
}
