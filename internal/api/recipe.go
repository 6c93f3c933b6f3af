package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pageza/recipe-translate/backend/internal/middleware"
	"github.com/pageza/recipe-translate/backend/internal/service"
	"github.com/pageza/recipe-translate/backend/internal/types"
)

// MissingDishMessage is the fixed body returned when the dish parameter is absent
const MissingDishMessage = "Missing 'dish' query parameter. Example: /api/search?dish=ratatouille"

const welcomeMessage = "Welcome to the Recipe API! Use /api/search?dish=<your_dish_query>"

type RecipeHandler struct {
	recipeService service.IRecipeService
	logger        zerolog.Logger
}

func NewRecipeHandler(recipeService service.IRecipeService, logger zerolog.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		logger:        logger.With().Str("component", "recipe_handler").Logger(),
	}
}

func (h *RecipeHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/", h.Home)
	router.GET("/health", h.Health)
	router.GET("/api/search", h.Search)
}

// Home returns the usage hint
func (h *RecipeHandler) Home(c *gin.Context) {
	c.String(http.StatusOK, welcomeMessage)
}

func (h *RecipeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Search handles GET /api/search?dish=<name>[&cuisine=<cuisine>][&lang=<code>]
func (h *RecipeHandler) Search(c *gin.Context) {
	dish := strings.TrimSpace(c.Query("dish"))
	if dish == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": MissingDishMessage})
		return
	}

	query := types.RecipeQuery{
		Dish:           dish,
		Cuisine:        c.Query("cuisine"),
		TargetLanguage: c.Query("lang"),
	}

	h.logger.Info().
		Str("dish", dish).
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Msg("received search request")

	result, status := h.recipeService.Run(c.Request.Context(), query)
	c.JSON(HTTPStatus(status), result)
}
