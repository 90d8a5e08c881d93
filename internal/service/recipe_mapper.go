package service

import (
	"math"
	"strings"

	"github.com/uiliamvenerio/salada-landing/internal/dto"
	"github.com/uiliamvenerio/salada-landing/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// headerField maps one recipes column to the request. read returns the
// canonical value (nil stores NULL), whether the request carries the field at
// all, and whether the value had to be coerced. fallback is what create
// stores when the field is absent.
type headerField struct {
	column   string
	read     func(r *dto.RecipeRequest) (v any, present, coerced bool)
	fallback any
	assign   func(m *model.Recipe, v any)
}

// recipeHeaderFields is the single place where request names meet column
// names. Fields with two spellings read the camelCase one first.
var recipeHeaderFields = []headerField{
	{
		column:   "name",
		read:     func(r *dto.RecipeRequest) (any, bool, bool) { return text(r.Name) },
		fallback: "",
		assign:   func(m *model.Recipe, v any) { m.Name = v.(string) },
	},
	{
		column:   "category",
		read:     func(r *dto.RecipeRequest) (any, bool, bool) { return text(r.Category) },
		fallback: "",
		assign:   func(m *model.Recipe, v any) { m.Category = v.(string) },
	},
	{
		column: "measurement_unit",
		read: func(r *dto.RecipeRequest) (any, bool, bool) {
			return nonBlank(r.MeasurementUnit, r.MeasurementUnitAlt)
		},
		fallback: model.UnitGram,
		assign:   func(m *model.Recipe, v any) { m.MeasurementUnit = v.(string) },
	},
	{
		column: "cooking_index",
		read: func(r *dto.RecipeRequest) (any, bool, bool) {
			return float(dto.FirstNumber(r.CookingIndex, r.CookingIndexAlt))
		},
		fallback: 0.0,
		assign:   func(m *model.Recipe, v any) { m.CookingIndex = v.(float64) },
	},
	{
		column: "internal_code",
		read: func(r *dto.RecipeRequest) (any, bool, bool) {
			return optional(r.InternalCode, r.InternalCodeAlt)
		},
		assign: func(m *model.Recipe, v any) { m.InternalCode = strPtr(v) },
	},
	{
		column: "prep_time",
		read: func(r *dto.RecipeRequest) (any, bool, bool) {
			return integer(dto.FirstNumber(r.PrepTime, r.PrepTimeAlt))
		},
		assign: func(m *model.Recipe, v any) { m.PrepTime = intPtr(v) },
	},
	{
		column: "yield",
		read:   func(r *dto.RecipeRequest) (any, bool, bool) { return integer(r.Yield) },
		assign: func(m *model.Recipe, v any) { m.Yield = intPtr(v) },
	},
	{
		column: "difficulty",
		read:   func(r *dto.RecipeRequest) (any, bool, bool) { return optional(r.Difficulty) },
		assign: func(m *model.Recipe, v any) { m.Difficulty = strPtr(v) },
	},
	{
		column: "notes",
		read:   func(r *dto.RecipeRequest) (any, bool, bool) { return optional(r.Notes) },
		assign: func(m *model.Recipe, v any) { m.Notes = strPtr(v) },
	},
	{
		column:   "image",
		read:     func(r *dto.RecipeRequest) (any, bool, bool) { return text(r.Image) },
		fallback: "",
		assign:   func(m *model.Recipe, v any) { m.Image = v.(string) },
	},
	{
		column: "tags",
		read: func(r *dto.RecipeRequest) (any, bool, bool) {
			if r.Tags == nil {
				return nil, false, false
			}
			return datatypes.JSONSlice[string](r.Tags), true, false
		},
		fallback: datatypes.JSONSlice[string]{},
		assign:   func(m *model.Recipe, v any) { m.Tags = v.(datatypes.JSONSlice[string]) },
	},
	{
		column: "gross_weight",
		read: func(r *dto.RecipeRequest) (any, bool, bool) {
			return float(dto.FirstNumber(r.GrossWeight, r.GrossWeightAlt))
		},
		fallback: 0.0,
		assign:   func(m *model.Recipe, v any) { m.GrossWeight = v.(float64) },
	},
	{
		column: "net_weight",
		read: func(r *dto.RecipeRequest) (any, bool, bool) {
			return float(dto.FirstNumber(r.NetWeight, r.NetWeightAlt))
		},
		fallback: 0.0,
		assign:   func(m *model.Recipe, v any) { m.NetWeight = v.(float64) },
	},
	{
		column: "correction_factor",
		read: func(r *dto.RecipeRequest) (any, bool, bool) {
			return float(dto.FirstNumber(r.CorrectionFactor, r.CorrectionFactorAlt))
		},
		fallback: 0.0,
		assign:   func(m *model.Recipe, v any) { m.CorrectionFactor = v.(float64) },
	},
}

// toStorage builds the header row for create. Absent fields take their
// fallback; the second result lists columns whose value was coerced.
func toStorage(req *dto.RecipeRequest) (model.Recipe, []string) {
	var (
		rec     model.Recipe
		coerced []string
	)
	for _, f := range recipeHeaderFields {
		v, present, c := f.read(req)
		if !present {
			v = f.fallback
		}
		if c {
			coerced = append(coerced, f.column)
		}
		f.assign(&rec, v)
	}
	return rec, coerced
}

// toColumns builds the column set for a partial update: only fields carried
// by the request appear in the map.
func toColumns(req *dto.RecipeRequest) (map[string]any, []string) {
	cols := make(map[string]any, len(recipeHeaderFields))
	var coerced []string
	for _, f := range recipeHeaderFields {
		v, present, c := f.read(req)
		if !present {
			continue
		}
		if c {
			coerced = append(coerced, f.column)
		}
		cols[f.column] = v
	}
	return cols, coerced
}

// toUsageRows converts the submitted ingredient lines. quantity always ends
// up a number (0 when unusable); correction_factor is a number or NULL.
func toUsageRows(recipeID uuid.UUID, in []dto.RecipeIngredientInput) ([]model.RecipeIngredient, []string) {
	rows := make([]model.RecipeIngredient, 0, len(in))
	var coerced []string
	for i, u := range in {
		row := model.RecipeIngredient{
			RecipeID: recipeID,
			Position: i,
			Unit:     model.UnitGram,
		}
		if u.Unit != "" {
			row.Unit = u.Unit
		}
		if raw, ok := dto.FirstRef(u.IngredientIDAlt, u.IngredientID).Value(); ok {
			// UUIDs are stored in canonical form so they match ingredients.id.
			if id, err := uuid.Parse(raw); err == nil {
				raw = id.String()
			}
			row.IngredientID = &raw
		}
		if q, ok := u.Quantity.Float(); ok {
			row.Quantity = q
		} else {
			coerced = append(coerced, "quantity")
		}
		cf := dto.FirstNumber(u.CorrectionFactor, u.CorrectionFactorAlt)
		if v, ok := cf.Float(); ok {
			row.CorrectionFactor = &v
		} else if cf.Present() {
			coerced = append(coerced, "correction_factor")
		}
		rows = append(rows, row)
	}
	return rows, coerced
}

// toHeaderResponse renders the stored header in the aggregate's naming.
func toHeaderResponse(m *model.Recipe) dto.RecipeHeaderResponse {
	tags := []string(m.Tags)
	if tags == nil {
		tags = []string{}
	}
	return dto.RecipeHeaderResponse{
		ID:               m.ID.String(),
		Name:             m.Name,
		Category:         m.Category,
		MeasurementUnit:  m.MeasurementUnit,
		CookingIndex:     m.CookingIndex,
		InternalCode:     m.InternalCode,
		PrepTime:         m.PrepTime,
		Yield:            m.Yield,
		Difficulty:       m.Difficulty,
		Notes:            m.Notes,
		Image:            m.Image,
		Tags:             tags,
		GrossWeight:      m.GrossWeight,
		NetWeight:        m.NetWeight,
		CorrectionFactor: m.CorrectionFactor,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// fromStorage assembles the aggregate from its three row sets. Steps are
// expected in step_number order and usages in position order. A usage whose
// ingredient is gone renders with an empty name.
func fromStorage(m *model.Recipe, usages []model.RecipeIngredientRow, steps []model.PreparationStep) dto.RecipeResponse {
	out := dto.RecipeResponse{
		RecipeHeaderResponse: toHeaderResponse(m),
		Ingredients:          make([]dto.RecipeIngredientResponse, 0, len(usages)),
		PreparationSteps:     make([]dto.StepResponse, 0, len(steps)),
	}
	for _, u := range usages {
		item := dto.RecipeIngredientResponse{
			ID:               u.ID.String(),
			Quantity:         u.Quantity,
			Unit:             u.Unit,
			CorrectionFactor: u.CorrectionFactor,
		}
		if u.IngredientID != nil {
			id := *u.IngredientID
			item.IngredientID = &id
		}
		if u.IngredientName != nil {
			item.Name = *u.IngredientName
		}
		out.Ingredients = append(out.Ingredients, item)
	}
	for _, s := range steps {
		out.PreparationSteps = append(out.PreparationSteps, dto.StepResponse{
			Number:      s.StepNumber,
			Description: s.Description,
		})
	}
	return out
}

// ── value readers ────────────────────────────────────────────────────────────

func text(s *string) (any, bool, bool) {
	if s == nil {
		return nil, false, false
	}
	return *s, true, false
}

// nonBlank reads a required enum-like string; "" counts as not sent.
func nonBlank(candidates ...*string) (any, bool, bool) {
	if s, ok := nonBlankString(candidates...); ok {
		return s, true, false
	}
	return nil, false, false
}

func nonBlankString(candidates ...*string) (string, bool) {
	for _, c := range candidates {
		if c != nil && strings.TrimSpace(*c) != "" {
			return *c, true
		}
	}
	return "", false
}

// optional reads a nullable string: the first non-nil candidate wins and ""
// is stored as NULL.
func optional(candidates ...*string) (any, bool, bool) {
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if *c == "" {
			return nil, true, false
		}
		return *c, true, false
	}
	return nil, false, false
}

// float reads a weight-like number; unparsable input becomes 0.
func float(n dto.Number) (any, bool, bool) {
	if !n.Present() {
		return nil, false, false
	}
	v, ok := n.Float()
	if !ok {
		return 0.0, true, true
	}
	return v, true, false
}

// integer reads a nullable whole number (minutes, portions). Fractions are
// truncated; unparsable input and values outside the int32 range become NULL.
func integer(n dto.Number) (any, bool, bool) {
	if !n.Present() {
		return nil, false, false
	}
	v, ok := n.Float()
	if !ok || v >= math.MaxInt32+1 || v <= math.MinInt32-1 {
		return nil, true, true
	}
	return int(v), true, false
}

func strPtr(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

func intPtr(v any) *int {
	i, ok := v.(int)
	if !ok {
		return nil
	}
	return &i
}
