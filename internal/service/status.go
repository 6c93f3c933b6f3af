package service

import (
	"github.com/pageza/recipe-translate/backend/internal/provider/recipe"
	"github.com/pageza/recipe-translate/backend/internal/types"
)

// ClassifyFailure maps a recipe search failure kind onto a status class
func ClassifyFailure(kind recipe.FailureKind) types.StatusClass {
	switch kind {
	case recipe.KindUnauthorized, recipe.KindForbidden:
		return types.StatusClientAuthError
	case recipe.KindQuotaExceeded:
		return types.StatusPaymentRequired
	default:
		return types.StatusServerError
	}
}
