package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// RecipeRequest is the recipe aggregate as submitted by the recipe form.
// Older clients post storage-style snake_case names, so every header field
// with a compound name is accepted under both spellings; the camelCase one
// wins when both are sent. Used for create and update alike: on update only
// the fields present in the body are written.
type RecipeRequest struct {
	Name     *string `json:"name"     validate:"omitempty,max=200"`
	Category *string `json:"category" validate:"omitempty,max=80"`

	MeasurementUnit    *string  `json:"measurementUnit"  validate:"omitempty,oneof=g ml"`
	MeasurementUnitAlt *string  `json:"measurement_unit" validate:"omitempty,oneof=g ml"`
	CookingIndex       Number   `json:"cookingIndex"`
	CookingIndexAlt    Number   `json:"cooking_index"`
	InternalCode       *string  `json:"internalCode"  validate:"omitempty,max=60"`
	InternalCodeAlt    *string  `json:"internal_code" validate:"omitempty,max=60"`
	PrepTime           Number   `json:"prepTime"`
	PrepTimeAlt        Number   `json:"prep_time"`
	Yield              Number   `json:"yield"`
	Difficulty         *string  `json:"difficulty" validate:"omitempty,oneof=Fácil Médio Difícil"`
	Notes              *string  `json:"notes"`
	Image              *string  `json:"image"`
	Tags               []string `json:"tags" validate:"omitempty,dive,max=60"`

	GrossWeight         Number `json:"grossWeight"`
	GrossWeightAlt      Number `json:"gross_weight"`
	NetWeight           Number `json:"netWeight"`
	NetWeightAlt        Number `json:"net_weight"`
	CorrectionFactor    Number `json:"correctionFactor"`
	CorrectionFactorAlt Number `json:"correction_factor"`

	// nil means "not sent": update leaves the stored collection alone.
	// An empty, non-nil slice clears it.
	Ingredients      []RecipeIngredientInput `json:"ingredients"      validate:"omitempty,dive"`
	PreparationSteps []StepInput             `json:"preparationSteps" validate:"omitempty,dive"`
	Steps            []StepInput             `json:"steps"            validate:"omitempty,dive"`
}

// StepList returns the submitted steps, preferring preparationSteps.
func (r *RecipeRequest) StepList() []StepInput {
	if r.PreparationSteps != nil {
		return r.PreparationSteps
	}
	return r.Steps
}

// RecipeIngredientInput is one ingredient usage line. IngredientID may be
// empty when the line was typed as free text, and it is not checked against
// the ingredient table: the reference may dangle.
type RecipeIngredientInput struct {
	IngredientID        Ref    `json:"ingredient_id"`
	IngredientIDAlt     Ref    `json:"ingredientId"`
	Name                string `json:"name"`
	Quantity            Number `json:"quantity"`
	Unit                string `json:"unit" validate:"omitempty,oneof=g ml"`
	CorrectionFactor    Number `json:"correctionFactor"`
	CorrectionFactorAlt Number `json:"correction_factor"`
}

// StepInput is one preparation step. Number/step_number are accepted from
// older clients but ignored: the stored numbering follows list position.
type StepInput struct {
	Number      Number `json:"number"`
	StepNumber  Number `json:"step_number"`
	Description string `json:"description" validate:"max=2000"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// RecipeHeaderResponse is the header row as stored. Create and update return
// it; children are read back through the list/get endpoints.
type RecipeHeaderResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	MeasurementUnit  string    `json:"measurementUnit"`
	CookingIndex     float64   `json:"cookingIndex"`
	InternalCode     *string   `json:"internalCode"`
	PrepTime         *int      `json:"prepTime"`
	Yield            *int      `json:"yield"`
	Difficulty       *string   `json:"difficulty"`
	Notes            *string   `json:"notes"`
	Image            string    `json:"image"`
	Tags             []string  `json:"tags"`
	GrossWeight      float64   `json:"grossWeight"`
	NetWeight        float64   `json:"netWeight"`
	CorrectionFactor float64   `json:"correctionFactor"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// RecipeResponse is the hydrated aggregate.
type RecipeResponse struct {
	RecipeHeaderResponse
	Ingredients      []RecipeIngredientResponse `json:"ingredients"`
	PreparationSteps []StepResponse             `json:"preparationSteps"`
}

type RecipeIngredientResponse struct {
	ID           string  `json:"id"`
	IngredientID *string `json:"ingredient_id"`
	// Name is the referenced ingredient's description, "" when the reference
	// is empty or points at a deleted ingredient.
	Name             string   `json:"name"`
	Quantity         float64  `json:"quantity"`
	Unit             string   `json:"unit"`
	CorrectionFactor *float64 `json:"correctionFactor"`
}

type StepResponse struct {
	Number      int    `json:"number"`
	Description string `json:"description"`
}

// IncompleteWriteResponse lists a recipe whose last write stopped half way.
type IncompleteWriteResponse struct {
	RecipeID string    `json:"recipe_id"`
	Stage    string    `json:"stage"`
	Reason   string    `json:"reason"`
	FailedAt time.Time `json:"failed_at"`
}
