// Package translation wraps machine-translation providers. Provider adapters return plain
// errors; Client folds them into per-item Outcomes so a failed item never aborts its caller.
package translation

import (
	"context"
	"errors"
)

// ErrUsageUnsupported is returned by providers that expose no usage endpoint
var ErrUsageUnsupported = errors.New("usage reporting not supported by provider")

// Provider translates a single text; the source language is detected by the provider
type Provider interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
	Name() string
}

// Usage is the provider's billing-period character usage
type Usage struct {
	CharacterCount int64 `json:"character_count"`
	CharacterLimit int64 `json:"character_limit"`
}

// Remaining returns the characters left in the period, never negative
func (u Usage) Remaining() int64 {
	if u.CharacterLimit <= u.CharacterCount {
		return 0
	}
	return u.CharacterLimit - u.CharacterCount
}

// UsageReporter is implemented by providers that can report quota usage
type UsageReporter interface {
	Usage(ctx context.Context) (*Usage, error)
}

// QueryUsage asks p for its usage when it supports it
func QueryUsage(ctx context.Context, p Provider) (*Usage, error) {
	r, ok := p.(UsageReporter)
	if !ok {
		return nil, ErrUsageUnsupported
	}
	return r.Usage(ctx)
}
