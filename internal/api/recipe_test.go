package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-translate/backend/internal/mocks"
	"github.com/pageza/recipe-translate/backend/internal/provider/recipe"
	"github.com/pageza/recipe-translate/backend/internal/provider/translation"
	"github.com/pageza/recipe-translate/backend/internal/service"
	"github.com/pageza/recipe-translate/backend/internal/types"
)

func setupRecipeTestRouter(t *testing.T, svc service.IRecipeService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewRecipeHandler(svc, zerolog.Nop()).RegisterRoutes(router)
	return router
}

func TestSearchMissingDish(t *testing.T) {
	svc := new(mocks.MockRecipeService)
	router := setupRecipeTestRouter(t, svc)

	for _, target := range []string{"/api/search", "/api/search?dish=", "/api/search?dish=%20%20"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", target, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"`+MissingDishMessage+`"}`, w.Body.String())
	}
	svc.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestSearchMapsStatusClasses(t *testing.T) {
	tests := []struct {
		class types.StatusClass
		code  int
	}{
		{types.StatusOK, http.StatusOK},
		{types.StatusClientAuthError, http.StatusUnauthorized},
		{types.StatusPaymentRequired, http.StatusPaymentRequired},
		{types.StatusNotFound, http.StatusNotFound},
		{types.StatusServerError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			result := types.NewRecipeResult()
			if tt.class != types.StatusOK {
				result.SetError("something went wrong")
			}
			svc := new(mocks.MockRecipeService)
			svc.On("Run", mock.Anything, types.RecipeQuery{Dish: "ratatouille", Cuisine: "Italian", TargetLanguage: "de"}).
				Return(result, tt.class)
			router := setupRecipeTestRouter(t, svc)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("GET", "/api/search?dish=ratatouille&cuisine=Italian&lang=de", nil))

			assert.Equal(t, tt.code, w.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Contains(t, body, "ingredients")
			assert.Contains(t, body, "quota")
			assert.Contains(t, body, "error")
			svc.AssertExpectations(t)
		})
	}
}

func TestHomeAndHealth(t *testing.T) {
	router := setupRecipeTestRouter(t, new(mocks.MockRecipeService))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/search?dish=")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

// fakeUpstreams starts a Spoonacular-like search server and a DeepL-like translate server
func fakeUpstreams(t *testing.T, searchBody string, searchStatus int) (string, string) {
	t.Helper()
	search := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(recipe.HeaderQuotaRequest, "1")
		w.Header().Set(recipe.HeaderQuotaUsed, "10")
		w.Header().Set(recipe.HeaderQuotaLeft, "140")
		w.WriteHeader(searchStatus)
		_, _ = w.Write([]byte(searchBody))
	}))
	t.Cleanup(search.Close)

	deepl := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		text := r.PostForm.Get("text")
		if text == "1 eggplant" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"translations": []map[string]string{{"text": "T:" + text}},
		})
	}))
	t.Cleanup(deepl.Close)

	return search.URL, deepl.URL
}

func newWiredRouter(t *testing.T, searchURL, deeplURL string) *gin.Engine {
	t.Helper()
	searcher := recipe.NewSpoonacularClient(searchURL, "k", time.Second, zerolog.Nop())
	provider := translation.NewDeepLClient(deeplURL, "k", time.Second)
	client := translation.NewClient(provider, time.Second, zerolog.Nop())
	svc := service.NewRecipeService(searcher, client, "French", "fr", zerolog.Nop())
	return setupRecipeTestRouter(t, svc)
}

func TestSearchEndToEnd(t *testing.T) {
	searchURL, deeplURL := fakeUpstreams(t, `{"results":[{"title":"Ratatouille","readyInMinutes":45,
		"extendedIngredients":[{"original":"2 zucchini"},{"original":"1 eggplant"}]}]}`, http.StatusOK)
	router := newWiredRouter(t, searchURL, deeplURL)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/search?dish="+url.QueryEscape("ratatouille"), nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"title_source": "Ratatouille",
		"title_target": "T:Ratatouille",
		"cooking_time_minutes": 45,
		"ingredients": [
			{"source": "2 zucchini", "target": "T:2 zucchini"},
			{"source": "1 eggplant", "target": "[translation unavailable]"}
		],
		"quota": {"request_cost": "1", "used": "10", "remaining": "140"},
		"error": null
	}`, w.Body.String())
}

func TestSearchEndToEndNoResults(t *testing.T) {
	searchURL, deeplURL := fakeUpstreams(t, `{"results":[]}`, http.StatusOK)
	router := newWiredRouter(t, searchURL, deeplURL)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/search?dish=zzznonexistent", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body types.RecipeResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Contains(t, *body.Error, "No recipes found")
	assert.Nil(t, body.TitleSource)
}

func TestSearchEndToEndQuotaExceeded(t *testing.T) {
	searchURL, deeplURL := fakeUpstreams(t, `{"status":"failure","code":402}`, http.StatusPaymentRequired)
	router := newWiredRouter(t, searchURL, deeplURL)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/search?dish=ratatouille", nil))

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	var body types.RecipeResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Contains(t, *body.Error, "Quota Exceeded")
	require.NotNil(t, body.Quota.Remaining)
	assert.Equal(t, "140", *body.Quota.Remaining)
}

func TestHTTPStatusDefaultsToServerError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(types.StatusClass("weird")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(types.StatusBadRequest))
}
