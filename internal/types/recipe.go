package types

// RecipeQuery is the input of one pipeline run
type RecipeQuery struct {
	Dish           string `json:"dish"`
	Cuisine        string `json:"cuisine"`
	TargetLanguage string `json:"target_language"`
}

// QuotaInfo holds the usage telemetry a recipe provider reported for one call.
// Every field is optional; nil means the provider did not send it.
type QuotaInfo struct {
	RequestCost *string `json:"request_cost"`
	Used        *string `json:"used"`
	Remaining   *string `json:"remaining"`
}

// Empty reports whether no quota field was populated
func (q QuotaInfo) Empty() bool {
	return q.RequestCost == nil && q.Used == nil && q.Remaining == nil
}

// IngredientTranslation pairs an ingredient line with its translation
type IngredientTranslation struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// RecipeResult is the envelope returned for every search, success or failure
type RecipeResult struct {
	TitleSource        *string                 `json:"title_source"`
	TitleTarget        *string                 `json:"title_target"`
	CookingTimeMinutes *int                    `json:"cooking_time_minutes"`
	Ingredients        []IngredientTranslation `json:"ingredients"`
	Quota              QuotaInfo               `json:"quota"`
	Error              *string                 `json:"error"`
}

// NewRecipeResult returns an envelope with an empty, non-nil ingredient list
func NewRecipeResult() *RecipeResult {
	return &RecipeResult{Ingredients: []IngredientTranslation{}}
}

// SetError records a classified error message on the envelope
func (r *RecipeResult) SetError(msg string) {
	r.Error = &msg
}
