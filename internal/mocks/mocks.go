package mocks

import (
	"context"
	"strings"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-translate/backend/internal/provider/translation"
)

// MockTranslator is a mock implementation of service.Translator
type MockTranslator struct {
	mock.Mock
}

// Translate mocks the Translate method
func (m *MockTranslator) Translate(ctx context.Context, text, targetLanguage string) translation.Outcome {
	args := m.Called(ctx, text, targetLanguage)
	return args.Get(0).(translation.Outcome)
}

// MockTranslationProvider is a mock implementation of translation.Provider
type MockTranslationProvider struct {
	mock.Mock
}

// Translate mocks the Translate method
func (m *MockTranslationProvider) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	args := m.Called(ctx, text, targetLanguage)
	return args.String(0), args.Error(1)
}

// Name mocks the Name method
func (m *MockTranslationProvider) Name() string {
	return "mock"
}

// PrefixProvider is a deterministic translation.Provider returning prefix+text
type PrefixProvider struct {
	Prefix string
	// FailOn lists texts that make Translate return an error
	FailOn []string
}

func (p PrefixProvider) Name() string {
	return "prefix"
}

func (p PrefixProvider) Translate(_ context.Context, text, _ string) (string, error) {
	for _, f := range p.FailOn {
		if strings.EqualFold(f, text) {
			return "", &translation.StatusError{Provider: "prefix", StatusCode: 503}
		}
	}
	return p.Prefix + text, nil
}
