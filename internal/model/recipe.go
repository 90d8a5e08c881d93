package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Recipe is the aggregate root header. Its ingredient usages and preparation
// steps live in their own tables keyed by recipe_id and are written by the
// service layer as a unit (see service.RecipeWriter).
type Recipe struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"not null"`
	Category         string    `gorm:"not null"`
	MeasurementUnit  string    `gorm:"not null;default:'g'"`
	CookingIndex     float64   `gorm:"not null;default:0"`
	InternalCode     *string
	PrepTime         *int
	Yield            *int `gorm:"column:yield"`
	Difficulty       *string
	Notes            *string
	Image            string
	Tags             datatypes.JSONSlice[string]
	GrossWeight      float64 `gorm:"not null;default:0"`
	NetWeight        float64 `gorm:"not null;default:0"`
	CorrectionFactor float64 `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Recipe) TableName() string { return "recipes" }

// RecipeIngredient is one ingredient usage inside a recipe. IngredientID is a
// weak reference kept as text: it may be nil (free-text entry), a legacy
// numeric id, or point at a deleted row. Position is the 0-based index in the
// submitted list.
type RecipeIngredient struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipeID         uuid.UUID `gorm:"type:uuid;index;not null"`
	IngredientID     *string   `gorm:"type:text"`
	Position         int       `gorm:"not null;default:0"`
	Quantity         float64   `gorm:"not null"`
	Unit             string    `gorm:"not null;default:'g'"`
	CorrectionFactor *float64
	CreatedAt        time.Time
}

func (RecipeIngredient) TableName() string { return "recipe_ingredients" }

// RecipeIngredientRow is a usage joined with the referenced ingredient's
// description. IngredientName is nil when the reference is null or dangling.
type RecipeIngredientRow struct {
	RecipeIngredient
	IngredientName *string
}

// PreparationStep is one ordered instruction of a recipe. StepNumber is dense
// 1..N within a recipe after every write.
type PreparationStep struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipeID    uuid.UUID `gorm:"type:uuid;index;not null"`
	StepNumber  int       `gorm:"not null"`
	Description string    `gorm:"not null"`
}

func (PreparationStep) TableName() string { return "preparation_steps" }

// Measurement units accepted for recipes and ingredient usages.
const (
	UnitGram       = "g"
	UnitMilliliter = "ml"
)

// Difficulty levels offered by the recipe form.
var Difficulties = []string{"Fácil", "Médio", "Difícil"}

// RecipeCategories is the closed list of categories offered by the recipe form.
var RecipeCategories = []string{
	"Acompanhamento", "Couvert", "Drinks", "Entrada", "Entrada Fria",
	"Entrada Quente", "Guarnição", "Lanche Rápido", "Massa", "Molho",
	"Outro", "Pães", "Petisco", "Prato Principal", "Prato Único",
	"Receita Base", "Salgado", "Sanduíche", "Sobremesa", "Sopa",
}
