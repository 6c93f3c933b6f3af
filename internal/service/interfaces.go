package service

import (
	"context"

	"github.com/pageza/recipe-translate/backend/internal/provider/translation"
	"github.com/pageza/recipe-translate/backend/internal/types"
)

// IRecipeService defines the fetch-translate-merge pipeline
type IRecipeService interface {
	Run(ctx context.Context, query types.RecipeQuery) (*types.RecipeResult, types.StatusClass)
}

// Translator translates one text and degrades instead of failing.
// *translation.Client is the production implementation.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) translation.Outcome
}
