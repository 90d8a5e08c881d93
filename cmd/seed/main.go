// Command seed loads a few TACO ingredients and a demo recipe.
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"os"
	"time"

	"github.com/uiliamvenerio/salada-landing/internal/config"
	"github.com/uiliamvenerio/salada-landing/internal/dto"
	"github.com/uiliamvenerio/salada-landing/internal/infra"
	"github.com/uiliamvenerio/salada-landing/internal/repository"
	"github.com/uiliamvenerio/salada-landing/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type seedIngredient struct {
	number, description, category string
	nutrients                     map[string]float64
}

var ingredients = []seedIngredient{
	{"3", "Arroz, tipo 1, cozido", "Cereais e derivados", map[string]float64{
		"moisture_pct": 69.1, "energy_kcal": 128, "energy_kj": 536, "protein_g": 2.5,
		"lipids_g": 0.2, "carbohydrate_g": 28.1, "dietary_fiber_g": 1.6, "sodium_mg": 1,
	}},
	{"45", "Farinha, de trigo", "Cereais e derivados", map[string]float64{
		"moisture_pct": 13, "energy_kcal": 360, "energy_kj": 1508, "protein_g": 9.8,
		"lipids_g": 1.4, "carbohydrate_g": 75.1, "dietary_fiber_g": 2.3, "iron_mg": 1,
	}},
	{"488", "Ovo, de galinha, inteiro, cru", "Ovos e derivados", map[string]float64{
		"moisture_pct": 75.6, "energy_kcal": 143, "energy_kj": 599, "protein_g": 13,
		"lipids_g": 8.9, "cholesterol_mg": 356, "carbohydrate_g": 1.6, "sodium_mg": 168,
	}},
	{"559", "Açúcar, refinado", "Produtos açucarados", map[string]float64{
		"moisture_pct": 0.1, "energy_kcal": 387, "energy_kj": 1619, "carbohydrate_g": 99.5,
	}},
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	ctx := context.Background()
	ingredientSvc := service.NewIngredientService(repository.NewIngredientRepository(db), nil)
	recipeSvc := service.NewRecipeService(repository.NewRecipeRepository(db), nil, nil, false)

	ids := make(map[string]string, len(ingredients))
	for _, in := range ingredients {
		origin := "TACO"
		req := dto.IngredientRequest{
			TableOfOrigin: &origin,
			FoodNumber:    &in.number,
			Description:   &in.description,
			Category:      &in.category,
			Nutrients:     make(map[string]dto.Number, len(in.nutrients)),
		}
		for col, v := range in.nutrients {
			req.Nutrients[col] = dto.Num(v)
		}
		resp, err := ingredientSvc.Create(ctx, req)
		if err != nil {
			log.Fatal().Err(err).Str("ingredient", in.description).Msg("seed ingredient")
		}
		ids[in.number] = resp.ID
	}

	name, category, unit := "Bolo simples", "Sobremesa", "g"
	flour, egg, sugar := ids["45"], ids["488"], ids["559"]
	recipe, err := recipeSvc.Create(ctx, dto.RecipeRequest{
		Name:            &name,
		Category:        &category,
		MeasurementUnit: &unit,
		CookingIndex:    dto.Num(1.2),
		Ingredients: []dto.RecipeIngredientInput{
			{IngredientID: dto.RefOf(flour), Quantity: dto.NumString("200"), Unit: "g", CorrectionFactor: dto.NumString("1.1")},
			{IngredientID: dto.RefOf(egg), Quantity: dto.Num(100), Unit: "g"},
			{IngredientID: dto.RefOf(sugar), Quantity: dto.Num(150), Unit: "g"},
		},
		PreparationSteps: []dto.StepInput{
			{Description: "Misturar os ingredientes secos"},
			{Description: "Adicionar os ovos e bater"},
			{Description: "Assar a 180 °C por 40 minutos"},
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed recipe")
	}
	log.Info().Int("ingredients", len(ids)).Str("recipe_id", recipe.ID).Msg("seed completed")
}
