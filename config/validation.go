package config

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// requiredCredentials lists the secret each provider cannot run without
var requiredCredentials = map[string]string{
	RecipeProviderSpoonacular: "SPOONACULAR_API_KEY",
	RecipeProviderRapidAPI:    "RAPIDAPI_KEY",
	TranslationProviderDeepL:  "DEEPL_API_KEY",
	TranslationProviderOpenAI: "OPENAI_API_KEY",
}

// ValidateConfig checks that the selected providers are known and have credentials
func ValidateConfig(cfg *Config) error {
	var errs []error

	switch cfg.RecipeProvider {
	case RecipeProviderSpoonacular:
		if cfg.SpoonacularAPIKey == "" {
			errs = append(errs, missingCredential(cfg.RecipeProvider))
		}
	case RecipeProviderRapidAPI:
		if cfg.RapidAPIKey == "" {
			errs = append(errs, missingCredential(cfg.RecipeProvider))
		}
		if cfg.RapidAPIHost == "" {
			errs = append(errs, ValidationError{Field: "RAPIDAPI_HOST", Message: "is required for the rapidapi provider"})
		}
	default:
		errs = append(errs, ValidationError{Field: "RECIPE_PROVIDER", Message: fmt.Sprintf("unknown provider %q", cfg.RecipeProvider)})
	}

	switch cfg.TranslationProvider {
	case TranslationProviderDeepL:
		if cfg.DeepLAPIKey == "" {
			errs = append(errs, missingCredential(cfg.TranslationProvider))
		}
	case TranslationProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			errs = append(errs, missingCredential(cfg.TranslationProvider))
		}
	default:
		errs = append(errs, ValidationError{Field: "TRANSLATION_PROVIDER", Message: fmt.Sprintf("unknown provider %q", cfg.TranslationProvider)})
	}

	if cfg.RecipeTimeout <= 0 {
		errs = append(errs, ValidationError{Field: "RECIPE_TIMEOUT", Message: "must be positive"})
	}
	if cfg.TranslationTimeout <= 0 {
		errs = append(errs, ValidationError{Field: "TRANSLATION_TIMEOUT", Message: "must be positive"})
	}
	if cfg.TranslationBreakerCooldown <= 0 {
		errs = append(errs, ValidationError{Field: "TRANSLATION_BREAKER_COOLDOWN", Message: "must be positive"})
	}
	if strings.TrimSpace(cfg.DefaultCuisine) == "" {
		errs = append(errs, ValidationError{Field: "DEFAULT_CUISINE", Message: "must not be empty"})
	}
	if strings.TrimSpace(cfg.DefaultTargetLanguage) == "" {
		errs = append(errs, ValidationError{Field: "DEFAULT_TARGET_LANGUAGE", Message: "must not be empty"})
	}

	return errors.Join(errs...)
}

func missingCredential(provider string) error {
	key := requiredCredentials[provider]
	return ValidationError{
		Field:   key,
		Message: fmt.Sprintf("is required for the %s provider (set %s or %s_FILE)", provider, key, key),
	}
}
