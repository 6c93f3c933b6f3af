package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pageza/recipe-translate/backend/internal/types"
)

// complexSearchResponse mirrors the fields of /recipes/complexSearch with addRecipeInformation=true
type complexSearchResponse struct {
	Results []struct {
		Title               string `json:"title"`
		ReadyInMinutes      *int   `json:"readyInMinutes"`
		ExtendedIngredients []struct {
			Original string `json:"original"`
		} `json:"extendedIngredients"`
	} `json:"results"`
}

// complexSearch performs the GET shared by the direct and proxied Spoonacular adapters.
// authorize adds credentials; readQuota extracts quota headers.
type complexSearch struct {
	provider  string
	endpoint  string
	client    *http.Client
	logger    zerolog.Logger
	authorize func(req *http.Request, params url.Values)
	readQuota func(h http.Header) types.QuotaInfo
}

func (s *complexSearch) Name() string {
	return s.provider
}

func (s *complexSearch) Search(ctx context.Context, query, cuisine string, count int) Outcome {
	if count < 1 {
		count = 1
	}

	params := url.Values{}
	params.Set("query", query)
	if cuisine != "" {
		params.Set("cuisine", cuisine)
	}
	params.Set("number", strconv.Itoa(count))
	params.Set("addRecipeInformation", "true")
	params.Set("fillIngredients", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return Failed(&Failure{Kind: KindUnknown, Detail: fmt.Sprintf("failed to build %s request: %v", s.provider, err), Err: err}, types.QuotaInfo{})
	}
	req.Header.Set("Accept", "application/json")
	s.authorize(req, params)
	req.URL.RawQuery = params.Encode()

	s.logger.Debug().
		Str("query", query).
		Str("cuisine", cuisine).
		Int("number", count).
		Msg("searching recipes")

	resp, err := s.client.Do(req)
	if err != nil {
		f := transportFailure(s.provider, err)
		s.logger.Warn().Err(err).Str("kind", f.Kind.String()).Msg("recipe search failed")
		return Failed(f, types.QuotaInfo{})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		kind := kindForStatus(resp.StatusCode)
		if shortCircuits(kind) {
			f := statusFailure(s.provider, resp.StatusCode)
			s.logger.Warn().Int("status", resp.StatusCode).Str("kind", kind.String()).Msg("recipe search rejected")
			return Failed(f, types.QuotaInfo{})
		}

		quota := s.readQuota(resp.Header)
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		f := statusFailure(s.provider, resp.StatusCode)
		s.logger.Warn().
			Int("status", resp.StatusCode).
			Str("body", strings.TrimSpace(string(snippet))).
			Str("kind", kind.String()).
			Interface("quota", quota).
			Msg("recipe search failed")
		return Failed(f, quota)
	}

	quota := s.readQuota(resp.Header)
	if quota.Empty() {
		s.logger.Debug().Msg("quota headers not found in response")
	}

	var body complexSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Failed(malformedFailure(s.provider, err), quota)
	}

	if len(body.Results) == 0 {
		return NotFound(quota)
	}

	first := body.Results[0]
	recipe := &Recipe{
		Title:          first.Title,
		ReadyInMinutes: first.ReadyInMinutes,
		Ingredients:    make([]Ingredient, 0, len(first.ExtendedIngredients)),
	}
	for _, ing := range first.ExtendedIngredients {
		recipe.Ingredients = append(recipe.Ingredients, Ingredient{Original: ing.Original})
	}

	return Found(recipe, quota)
}

// headerValue returns a pointer to the trimmed header value, or nil when it is absent
func headerValue(h http.Header, key string) *string {
	v := strings.TrimSpace(h.Get(key))
	if v == "" {
		return nil
	}
	return &v
}
