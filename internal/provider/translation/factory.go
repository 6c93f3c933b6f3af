package translation

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pageza/recipe-translate/backend/config"
)

// NewProvider builds the adapter selected by cfg.TranslationProvider behind a circuit breaker
func NewProvider(cfg *config.Config, logger zerolog.Logger) (Provider, error) {
	var inner Provider
	switch cfg.TranslationProvider {
	case config.TranslationProviderDeepL:
		inner = NewDeepLClient(cfg.DeepLBaseURL, cfg.DeepLAPIKey, cfg.TranslationTimeout)
	case config.TranslationProviderOpenAI:
		inner = NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, "")
	default:
		return nil, fmt.Errorf("unknown translation provider %q", cfg.TranslationProvider)
	}

	return NewBreakerProvider(inner, cfg.TranslationBreakerFailures, cfg.TranslationBreakerCooldown, logger), nil
}
