package recipe

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/pageza/recipe-translate/backend/internal/types"
)

// RapidAPI gateway rate-limit headers
const (
	HeaderRapidLimit     = "X-RateLimit-Requests-Limit"
	HeaderRapidRemaining = "X-RateLimit-Requests-Remaining"
)

// RapidAPIClient calls Spoonacular through the RapidAPI gateway
type RapidAPIClient struct {
	*complexSearch
}

// NewRapidAPIClient creates a client for the given RapidAPI host.
// baseURL may be empty, in which case https://<host> is used.
func NewRapidAPIClient(baseURL, host, apiKey string, timeout time.Duration, logger zerolog.Logger) *RapidAPIClient {
	if baseURL == "" {
		baseURL = "https://" + host
	}
	return &RapidAPIClient{
		complexSearch: &complexSearch{
			provider: "rapidapi",
			endpoint: baseURL + spoonacularSearchPath,
			client:   &http.Client{Timeout: timeout},
			logger:   logger.With().Str("component", "rapidapi").Logger(),
			authorize: func(req *http.Request, _ url.Values) {
				req.Header.Set("X-RapidAPI-Key", apiKey)
				req.Header.Set("X-RapidAPI-Host", host)
			},
			readQuota: readRapidAPIQuota,
		},
	}
}

// readRapidAPIQuota prefers the forwarded Spoonacular point headers and falls back
// to the gateway's request counters
func readRapidAPIQuota(h http.Header) types.QuotaInfo {
	quota := readSpoonacularQuota(h)
	if !quota.Empty() {
		return quota
	}

	remaining := headerValue(h, HeaderRapidRemaining)
	quota.Remaining = remaining

	if limit := headerValue(h, HeaderRapidLimit); limit != nil && remaining != nil {
		l, errL := strconv.Atoi(*limit)
		r, errR := strconv.Atoi(*remaining)
		if errL == nil && errR == nil {
			used := strconv.Itoa(l - r)
			quota.Used = &used
		}
	}
	return quota
}
