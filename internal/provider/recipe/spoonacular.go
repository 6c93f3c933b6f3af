package recipe

import (
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/pageza/recipe-translate/backend/internal/types"
)

const spoonacularSearchPath = "/recipes/complexSearch"

// Spoonacular quota headers, reported in points
const (
	HeaderQuotaRequest = "X-API-Quota-Request"
	HeaderQuotaUsed    = "X-API-Quota-Used"
	HeaderQuotaLeft    = "X-API-Quota-Left"
)

// SpoonacularClient calls the Spoonacular API directly with an apiKey query parameter
type SpoonacularClient struct {
	*complexSearch
}

// NewSpoonacularClient creates a client against baseURL (e.g. https://api.spoonacular.com)
func NewSpoonacularClient(baseURL, apiKey string, timeout time.Duration, logger zerolog.Logger) *SpoonacularClient {
	return &SpoonacularClient{
		complexSearch: &complexSearch{
			provider: "spoonacular",
			endpoint: baseURL + spoonacularSearchPath,
			client:   &http.Client{Timeout: timeout},
			logger:   logger.With().Str("component", "spoonacular").Logger(),
			authorize: func(_ *http.Request, params url.Values) {
				params.Set("apiKey", apiKey)
			},
			readQuota: readSpoonacularQuota,
		},
	}
}

func readSpoonacularQuota(h http.Header) types.QuotaInfo {
	return types.QuotaInfo{
		RequestCost: headerValue(h, HeaderQuotaRequest),
		Used:        headerValue(h, HeaderQuotaUsed),
		Remaining:   headerValue(h, HeaderQuotaLeft),
	}
}
