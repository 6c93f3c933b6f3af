package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Provider names accepted by RECIPE_PROVIDER and TRANSLATION_PROVIDER
const (
	RecipeProviderSpoonacular = "spoonacular"
	RecipeProviderRapidAPI    = "rapidapi"

	TranslationProviderDeepL  = "deepl"
	TranslationProviderOpenAI = "openai"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort         string
	ServerHost         string
	CORSAllowedOrigins []string

	// Logging configuration
	LogLevel  string
	LogFormat string

	// Recipe provider configuration
	RecipeProvider     string
	SpoonacularAPIKey  string
	SpoonacularBaseURL string
	RapidAPIKey        string
	RapidAPIHost       string
	RapidAPIBaseURL    string
	RecipeTimeout      time.Duration

	// Translation provider configuration
	TranslationProvider        string
	DeepLAPIKey                string
	DeepLBaseURL               string
	OpenAIAPIKey               string
	OpenAIModel                string
	TranslationTimeout         time.Duration
	TranslationBreakerFailures uint32
	TranslationBreakerCooldown time.Duration

	// Query defaults
	DefaultCuisine        string
	DefaultTargetLanguage string
}

// secretKeys are resolved from the environment, a <KEY>_FILE path or the secrets directory
var secretKeys = []string{
	"SPOONACULAR_API_KEY",
	"RAPIDAPI_KEY",
	"DEEPL_API_KEY",
	"OPENAI_API_KEY",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")

	v.SetDefault("RECIPE_PROVIDER", RecipeProviderSpoonacular)
	v.SetDefault("SPOONACULAR_BASE_URL", "https://api.spoonacular.com")
	v.SetDefault("RAPIDAPI_HOST", "spoonacular-recipe-food-nutrition-v1.p.rapidapi.com")
	v.SetDefault("RAPIDAPI_BASE_URL", "")
	v.SetDefault("RECIPE_TIMEOUT", "10s")

	v.SetDefault("TRANSLATION_PROVIDER", TranslationProviderDeepL)
	v.SetDefault("DEEPL_BASE_URL", "https://api-free.deepl.com")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("TRANSLATION_TIMEOUT", "10s")
	v.SetDefault("TRANSLATION_BREAKER_FAILURES", 5)
	v.SetDefault("TRANSLATION_BREAKER_COOLDOWN", "30s")

	v.SetDefault("DEFAULT_CUISINE", "French")
	v.SetDefault("DEFAULT_TARGET_LANGUAGE", "fr")
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	// A missing .env file is normal outside local development
	_ = godotenv.Load(".env")

	env := GetEnvironment()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	for _, key := range secretKeys {
		value, err := resolveSecret(v, key, env)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", key, err)
		}
		v.Set(key, value)
	}

	cfg, err := fromViper(v)
	if err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func fromViper(v *viper.Viper) (*Config, error) {
	recipeTimeout, err := parseDuration(v, "RECIPE_TIMEOUT")
	if err != nil {
		return nil, err
	}
	translationTimeout, err := parseDuration(v, "TRANSLATION_TIMEOUT")
	if err != nil {
		return nil, err
	}
	cooldown, err := parseDuration(v, "TRANSLATION_BREAKER_COOLDOWN")
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:         v.GetString("SERVER_PORT"),
		ServerHost:         v.GetString("SERVER_HOST"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),

		LogLevel:  strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat: strings.ToLower(v.GetString("LOG_FORMAT")),

		RecipeProvider:     strings.ToLower(v.GetString("RECIPE_PROVIDER")),
		SpoonacularAPIKey:  v.GetString("SPOONACULAR_API_KEY"),
		SpoonacularBaseURL: strings.TrimRight(v.GetString("SPOONACULAR_BASE_URL"), "/"),
		RapidAPIKey:        v.GetString("RAPIDAPI_KEY"),
		RapidAPIHost:       v.GetString("RAPIDAPI_HOST"),
		RapidAPIBaseURL:    strings.TrimRight(v.GetString("RAPIDAPI_BASE_URL"), "/"),
		RecipeTimeout:      recipeTimeout,

		TranslationProvider:        strings.ToLower(v.GetString("TRANSLATION_PROVIDER")),
		DeepLAPIKey:                v.GetString("DEEPL_API_KEY"),
		DeepLBaseURL:               strings.TrimRight(v.GetString("DEEPL_BASE_URL"), "/"),
		OpenAIAPIKey:               v.GetString("OPENAI_API_KEY"),
		OpenAIModel:                v.GetString("OPENAI_MODEL"),
		TranslationTimeout:         translationTimeout,
		TranslationBreakerFailures: v.GetUint32("TRANSLATION_BREAKER_FAILURES"),
		TranslationBreakerCooldown: cooldown,

		DefaultCuisine:        v.GetString("DEFAULT_CUISINE"),
		DefaultTargetLanguage: v.GetString("DEFAULT_TARGET_LANGUAGE"),
	}, nil
}

// resolveSecret returns the first non-empty value of KEY, the file named by KEY_FILE,
// or (in production) the Docker secret named after the lowercased key
func resolveSecret(v *viper.Viper, key string, env Environment) (string, error) {
	if value := strings.TrimSpace(v.GetString(key)); value != "" {
		return value, nil
	}

	if path := os.Getenv(key + "_FILE"); path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read secret file %s: %w", path, err)
		}
		return strings.TrimSpace(string(content)), nil
	}

	if env == Production {
		return readSecret(strings.ToLower(key)), nil
	}

	return "", nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q", key, raw)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// MaskKey returns the first five characters of a credential for diagnostic logging
func MaskKey(key string) string {
	if len(key) <= 5 {
		return strings.Repeat("*", len(key))
	}
	return key[:5] + "..."
}
