package service

import (
	"context"

	"github.com/uiliamvenerio/salada-landing/internal/dto"
	"github.com/uiliamvenerio/salada-landing/internal/model"
	"github.com/uiliamvenerio/salada-landing/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// IngredientService is flat CRUD over the nutrient catalogue. Each call is a
// single store round trip (update rereads the row); store errors come back
// unchanged except missing rows, which become ErrNotFound.
type IngredientService interface {
	List(ctx context.Context, search string) ([]dto.IngredientResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.IngredientResponse, error)
	Create(ctx context.Context, req dto.IngredientRequest) (*dto.IngredientResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.IngredientRequest) (*dto.IngredientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ingredientService struct {
	repo    repository.IngredientRepository
	recipes *RecipeListCache
}

// NewIngredientService takes the recipe list cache because recipe usages
// render the ingredient description.
func NewIngredientService(repo repository.IngredientRepository, recipes *RecipeListCache) IngredientService {
	return &ingredientService{repo: repo, recipes: recipes}
}

func (s *ingredientService) List(ctx context.Context, search string) ([]dto.IngredientResponse, error) {
	list, err := s.repo.List(ctx, search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.IngredientResponse, len(list))
	for i := range list {
		out[i] = toIngredientResponse(&list[i])
	}
	return out, nil
}

func (s *ingredientService) GetByID(ctx context.Context, id uuid.UUID) (*dto.IngredientResponse, error) {
	ing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	resp := toIngredientResponse(ing)
	return &resp, nil
}

func (s *ingredientService) Create(ctx context.Context, req dto.IngredientRequest) (*dto.IngredientResponse, error) {
	ing := model.Ingredient{}
	if req.TableOfOrigin != nil {
		ing.TableOfOrigin = *req.TableOfOrigin
	}
	if req.FoodNumber != nil {
		ing.FoodNumber = *req.FoodNumber
	}
	if req.Description != nil {
		ing.Description = *req.Description
	}
	if req.Category != nil {
		ing.Category = *req.Category
	}
	for col, n := range req.Nutrients {
		if f := ing.NutrientProfile.Field(col); f != nil {
			*f = nutrientValue(col, n)
		}
	}
	if err := s.repo.Create(ctx, &ing); err != nil {
		return nil, err
	}
	resp := toIngredientResponse(&ing)
	return &resp, nil
}

func (s *ingredientService) Update(ctx context.Context, id uuid.UUID, req dto.IngredientRequest) (*dto.IngredientResponse, error) {
	cols := map[string]any{}
	if req.TableOfOrigin != nil {
		cols["table_of_origin"] = *req.TableOfOrigin
	}
	if req.FoodNumber != nil {
		cols["food_number"] = *req.FoodNumber
	}
	if req.Description != nil {
		cols["description"] = *req.Description
	}
	if req.Category != nil {
		cols["category"] = *req.Category
	}
	for col, n := range req.Nutrients {
		cols[col] = nutrientValue(col, n)
	}
	ing, err := s.repo.Update(ctx, id, cols)
	if err != nil {
		return nil, notFound(err)
	}
	if req.Description != nil {
		s.recipes.Invalidate(ctx)
	}
	resp := toIngredientResponse(ing)
	return &resp, nil
}

// Delete does not look at recipe usages: they keep the dangling id and read
// back with an empty name.
func (s *ingredientService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err)
	}
	s.recipes.Invalidate(ctx)
	return nil
}

// nutrientValue coerces a submitted nutrient; blank or unparsable input is
// stored as 0.
func nutrientValue(col string, n dto.Number) float64 {
	v, ok := n.Float()
	if !ok && n.Present() {
		log.Warn().Str("field", col).Msg("ingredient: unparsable nutrient stored as 0")
	}
	return v
}

func toIngredientResponse(i *model.Ingredient) dto.IngredientResponse {
	return dto.IngredientResponse{
		ID:              i.ID.String(),
		TableOfOrigin:   i.TableOfOrigin,
		FoodNumber:      i.FoodNumber,
		Description:     i.Description,
		Category:        i.Category,
		NutrientProfile: i.NutrientProfile,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}
