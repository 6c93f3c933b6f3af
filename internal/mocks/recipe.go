package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-translate/backend/internal/provider/recipe"
	"github.com/pageza/recipe-translate/backend/internal/types"
)

// MockSearcher is a mock implementation of recipe.Searcher
type MockSearcher struct {
	mock.Mock
}

// Search mocks the Search method
func (m *MockSearcher) Search(ctx context.Context, query, cuisine string, count int) recipe.Outcome {
	args := m.Called(ctx, query, cuisine, count)
	return args.Get(0).(recipe.Outcome)
}

// Name mocks the Name method
func (m *MockSearcher) Name() string {
	return "mock"
}

// MockRecipeService is a mock implementation of the recipe pipeline
type MockRecipeService struct {
	mock.Mock
}

// Run mocks the Run method
func (m *MockRecipeService) Run(ctx context.Context, query types.RecipeQuery) (*types.RecipeResult, types.StatusClass) {
	args := m.Called(ctx, query)
	return args.Get(0).(*types.RecipeResult), args.Get(1).(types.StatusClass)
}
