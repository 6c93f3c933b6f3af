package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pageza/recipe-translate/backend/internal/provider/recipe"
	"github.com/pageza/recipe-translate/backend/internal/provider/translation"
	"github.com/pageza/recipe-translate/backend/internal/types"
)

// ErrMissingDish is returned for a query without a dish name
var ErrMissingDish = errors.New("missing dish name")

// searchCount is fixed: only the first match is ever consumed
const searchCount = 1

// RecipeService fetches one recipe, translates its text fields and merges everything into a RecipeResult.
// It holds no per-request state and is safe for concurrent use.
type RecipeService struct {
	searcher       recipe.Searcher
	translator     Translator
	defaultCuisine string
	defaultLang    string
	logger         zerolog.Logger
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(searcher recipe.Searcher, translator Translator, defaultCuisine, defaultLang string, logger zerolog.Logger) *RecipeService {
	return &RecipeService{
		searcher:       searcher,
		translator:     translator,
		defaultCuisine: defaultCuisine,
		defaultLang:    defaultLang,
		logger:         logger.With().Str("component", "recipe_service").Logger(),
	}
}

// Normalize fills empty cuisine and language with the service defaults
func (s *RecipeService) Normalize(q types.RecipeQuery) types.RecipeQuery {
	q.Dish = strings.TrimSpace(q.Dish)
	if q.Cuisine = strings.TrimSpace(q.Cuisine); q.Cuisine == "" {
		q.Cuisine = s.defaultCuisine
	}
	if q.TargetLanguage = strings.TrimSpace(q.TargetLanguage); q.TargetLanguage == "" {
		q.TargetLanguage = s.defaultLang
	}
	return q
}

// Run executes the pipeline. The returned envelope is always well formed;
// its Error field is set exactly when the status class is not StatusOK.
func (s *RecipeService) Run(ctx context.Context, query types.RecipeQuery) (*types.RecipeResult, types.StatusClass) {
	result := types.NewRecipeResult()
	query = s.Normalize(query)

	if query.Dish == "" {
		result.SetError(ErrMissingDish.Error())
		return result, types.StatusBadRequest
	}

	log := s.logger.With().
		Str("dish", query.Dish).
		Str("cuisine", query.Cuisine).
		Str("target_language", query.TargetLanguage).
		Logger()

	outcome := s.searcher.Search(ctx, query.Dish, query.Cuisine, searchCount)
	result.Quota = outcome.Quota

	switch outcome.Status {
	case recipe.StatusFailed:
		result.SetError(outcome.Failure.Error())
		status := ClassifyFailure(outcome.Failure.Kind)
		log.Warn().Str("kind", outcome.Failure.Kind.String()).Str("status", string(status)).Msg("recipe search failed")
		return result, status
	case recipe.StatusNotFound:
		result.SetError(fmt.Sprintf("No recipes found for '%s' in %s cuisine.", query.Dish, query.Cuisine))
		log.Info().Msg("no recipes found")
		return result, types.StatusNotFound
	case recipe.StatusFound:
	default:
		result.SetError(fmt.Sprintf("unexpected search outcome %s", outcome.Status))
		return result, types.StatusServerError
	}

	found := outcome.Recipe
	title := found.Title
	result.TitleSource = &title
	result.CookingTimeMinutes = found.ReadyInMinutes

	if title != "" {
		translated := s.translate(ctx, title, query.TargetLanguage)
		result.TitleTarget = &translated.Text
	} else {
		empty := ""
		result.TitleTarget = &empty
	}

	degraded := 0
	for _, ing := range found.Ingredients {
		if ing.Original == "" {
			continue
		}
		out := s.translate(ctx, ing.Original, query.TargetLanguage)
		if out.Degraded {
			degraded++
		}
		result.Ingredients = append(result.Ingredients, types.IngredientTranslation{
			Source: ing.Original,
			Target: out.Text,
		})
	}

	log.Info().
		Str("title", title).
		Int("ingredients", len(result.Ingredients)).
		Int("degraded", degraded).
		Msg("recipe assembled")

	return result, types.StatusOK
}

// translate skips the provider once the request context has ended
func (s *RecipeService) translate(ctx context.Context, text, targetLanguage string) translation.Outcome {
	if err := ctx.Err(); err != nil {
		return translation.Degraded(err)
	}
	return s.translator.Translate(ctx, text, targetLanguage)
}
