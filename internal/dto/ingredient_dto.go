package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/uiliamvenerio/salada-landing/internal/model"
)

// IngredientRequest carries the identifying fields plus any subset of the
// nutrient columns (JSON key == column name, see model.NutrientColumns).
// Only keys present in the body are written on update.
type IngredientRequest struct {
	TableOfOrigin *string `json:"table_of_origin" validate:"omitempty,max=120"`
	FoodNumber    *string `json:"food_number"     validate:"omitempty,max=60"`
	Description   *string `json:"description"     validate:"omitempty,max=255"`
	Category      *string `json:"category"        validate:"omitempty,max=120"`

	Nutrients map[string]Number `json:"-"`
}

func (r *IngredientRequest) UnmarshalJSON(b []byte) error {
	type fields IngredientRequest
	var f fields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	f.Nutrients = make(map[string]Number, len(raw))
	for _, col := range model.NutrientColumns {
		v, ok := raw[col]
		if !ok {
			continue
		}
		var n Number
		if err := n.UnmarshalJSON(v); err != nil {
			return fmt.Errorf("%s: %w", col, err)
		}
		f.Nutrients[col] = n
	}
	*r = IngredientRequest(f)
	return nil
}

type IngredientResponse struct {
	ID            string `json:"id"`
	TableOfOrigin string `json:"table_of_origin"`
	FoodNumber    string `json:"food_number"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	model.NutrientProfile
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
