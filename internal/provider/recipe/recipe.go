// Package recipe wraps the external recipe-search providers behind a single Searcher interface.
package recipe

import (
	"context"
	"fmt"

	"github.com/pageza/recipe-translate/backend/internal/types"
)

// Recipe is the subset of a provider search result the pipeline consumes
type Recipe struct {
	Title          string
	ReadyInMinutes *int
	Ingredients    []Ingredient
}

// Ingredient is one raw ingredient entry; Original is empty when the provider omitted it
type Ingredient struct {
	Original string
}

// OutcomeStatus tags which variant an Outcome holds
type OutcomeStatus int

const (
	StatusFound OutcomeStatus = iota
	StatusNotFound
	StatusFailed
)

func (s OutcomeStatus) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not_found"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("OutcomeStatus(%d)", int(s))
	}
}

// Outcome is the result of one search call.
// Recipe is set only for StatusFound and Failure only for StatusFailed.
// Quota carries whatever telemetry the provider sent, including on failures.
type Outcome struct {
	Status  OutcomeStatus
	Recipe  *Recipe
	Quota   types.QuotaInfo
	Failure *Failure
}

// Found builds a StatusFound outcome
func Found(r *Recipe, quota types.QuotaInfo) Outcome {
	return Outcome{Status: StatusFound, Recipe: r, Quota: quota}
}

// NotFound builds a StatusNotFound outcome
func NotFound(quota types.QuotaInfo) Outcome {
	return Outcome{Status: StatusNotFound, Quota: quota}
}

// Failed builds a StatusFailed outcome
func Failed(f *Failure, quota types.QuotaInfo) Outcome {
	return Outcome{Status: StatusFailed, Failure: f, Quota: quota}
}

// Searcher is implemented by every recipe provider adapter
type Searcher interface {
	// Search runs one search and returns at most count recipes' worth of data;
	// only the first match is ever surfaced.
	Search(ctx context.Context, query, cuisine string, count int) Outcome
	// Name identifies the provider in logs
	Name() string
}
