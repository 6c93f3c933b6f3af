package api

import (
	"net/http"

	"github.com/pageza/recipe-translate/backend/internal/types"
)

// HTTPStatus maps a pipeline status class onto the HTTP response code
func HTTPStatus(class types.StatusClass) int {
	switch class {
	case types.StatusOK:
		return http.StatusOK
	case types.StatusBadRequest:
		return http.StatusBadRequest
	case types.StatusClientAuthError:
		return http.StatusUnauthorized
	case types.StatusPaymentRequired:
		return http.StatusPaymentRequired
	case types.StatusNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
