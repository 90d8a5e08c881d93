package model

import (
	"time"

	"github.com/google/uuid"
)

// Ingredient is a raw food item from a nutritional composition table.
// (TableOfOrigin, FoodNumber) identifies it in the source table; the surrogate
// ID is what recipes reference.
type Ingredient struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TableOfOrigin string    `gorm:"index:idx_ingredients_origin;not null"`
	FoodNumber    string    `gorm:"index:idx_ingredients_origin;not null"`
	Description   string    `gorm:"not null"`
	Category      string    `gorm:"not null"`
	NutrientProfile
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Ingredient) TableName() string { return "ingredients" }

// NutrientProfile holds nutrient amounts per 100 units of the ingredient's base
// measure. Embedded into the ingredients table.
type NutrientProfile struct {
	MoisturePct   float64 `gorm:"not null;default:0" json:"moisture_pct"`
	EnergyKcal    float64 `gorm:"not null;default:0" json:"energy_kcal"`
	EnergyKJ      float64 `gorm:"column:energy_kj;not null;default:0" json:"energy_kj"`
	ProteinG      float64 `gorm:"not null;default:0" json:"protein_g"`
	LipidsG       float64 `gorm:"not null;default:0" json:"lipids_g"`
	CholesterolMg float64 `gorm:"not null;default:0" json:"cholesterol_mg"`
	CarbohydrateG float64 `gorm:"not null;default:0" json:"carbohydrate_g"`
	DietaryFiberG float64 `gorm:"not null;default:0" json:"dietary_fiber_g"`
	AshG          float64 `gorm:"not null;default:0" json:"ash_g"`
	CalciumMg     float64 `gorm:"not null;default:0" json:"calcium_mg"`
	MagnesiumMg   float64 `gorm:"not null;default:0" json:"magnesium_mg"`
	ManganeseMg   float64 `gorm:"not null;default:0" json:"manganese_mg"`
	PhosphorusMg  float64 `gorm:"not null;default:0" json:"phosphorus_mg"`
	IronMg        float64 `gorm:"not null;default:0" json:"iron_mg"`
	SodiumMg      float64 `gorm:"not null;default:0" json:"sodium_mg"`
	PotassiumMg   float64 `gorm:"not null;default:0" json:"potassium_mg"`
	CopperMg      float64 `gorm:"not null;default:0" json:"copper_mg"`
	ZincMg        float64 `gorm:"not null;default:0" json:"zinc_mg"`
	RetinolMcg    float64 `gorm:"not null;default:0" json:"retinol_mcg"`
	REMcg         float64 `gorm:"column:re_mcg;not null;default:0" json:"re_mcg"`
	RAEMcg        float64 `gorm:"column:rae_mcg;not null;default:0" json:"rae_mcg"`
	ThiamineMg    float64 `gorm:"not null;default:0" json:"thiamine_mg"`
	RiboflavinMg  float64 `gorm:"not null;default:0" json:"riboflavin_mg"`
	PyridoxineMg  float64 `gorm:"not null;default:0" json:"pyridoxine_mg"`
	NiacinMg      float64 `gorm:"not null;default:0" json:"niacin_mg"`
	VitaminCMg    float64 `gorm:"column:vitamin_c_mg;not null;default:0" json:"vitamin_c_mg"`
}

// NutrientColumns lists every nutrient column in storage order. The JSON key
// of each nutrient equals its column name.
var NutrientColumns = []string{
	"moisture_pct", "energy_kcal", "energy_kj", "protein_g", "lipids_g",
	"cholesterol_mg", "carbohydrate_g", "dietary_fiber_g", "ash_g",
	"calcium_mg", "magnesium_mg", "manganese_mg", "phosphorus_mg", "iron_mg",
	"sodium_mg", "potassium_mg", "copper_mg", "zinc_mg", "retinol_mcg",
	"re_mcg", "rae_mcg", "thiamine_mg", "riboflavin_mg", "pyridoxine_mg",
	"niacin_mg", "vitamin_c_mg",
}

// Field returns a pointer to the nutrient stored in column, or nil when the
// column is not a nutrient.
func (p *NutrientProfile) Field(column string) *float64 {
	switch column {
	case "moisture_pct":
		return &p.MoisturePct
	case "energy_kcal":
		return &p.EnergyKcal
	case "energy_kj":
		return &p.EnergyKJ
	case "protein_g":
		return &p.ProteinG
	case "lipids_g":
		return &p.LipidsG
	case "cholesterol_mg":
		return &p.CholesterolMg
	case "carbohydrate_g":
		return &p.CarbohydrateG
	case "dietary_fiber_g":
		return &p.DietaryFiberG
	case "ash_g":
		return &p.AshG
	case "calcium_mg":
		return &p.CalciumMg
	case "magnesium_mg":
		return &p.MagnesiumMg
	case "manganese_mg":
		return &p.ManganeseMg
	case "phosphorus_mg":
		return &p.PhosphorusMg
	case "iron_mg":
		return &p.IronMg
	case "sodium_mg":
		return &p.SodiumMg
	case "potassium_mg":
		return &p.PotassiumMg
	case "copper_mg":
		return &p.CopperMg
	case "zinc_mg":
		return &p.ZincMg
	case "retinol_mcg":
		return &p.RetinolMcg
	case "re_mcg":
		return &p.REMcg
	case "rae_mcg":
		return &p.RAEMcg
	case "thiamine_mg":
		return &p.ThiamineMg
	case "riboflavin_mg":
		return &p.RiboflavinMg
	case "pyridoxine_mg":
		return &p.PyridoxineMg
	case "niacin_mg":
		return &p.NiacinMg
	case "vitamin_c_mg":
		return &p.VitaminCMg
	}
	return nil
}
