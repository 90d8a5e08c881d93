package repository

import (
	"context"

	"github.com/uiliamvenerio/salada-landing/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IngredientRepository defines CRUD operations for the ingredient catalogue.
type IngredientRepository interface {
	Create(ctx context.Context, i *model.Ingredient) error
	List(ctx context.Context, search string) ([]model.Ingredient, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Ingredient, error)
	Update(ctx context.Context, id uuid.UUID, columns map[string]any) (*model.Ingredient, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ingredientRepo struct{ db *gorm.DB }

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepo{db: db}
}

func (r *ingredientRepo) Create(ctx context.Context, i *model.Ingredient) error {
	return r.db.WithContext(ctx).Create(i).Error
}

// List returns the catalogue ordered by description. A non-empty search
// filters on description, case-insensitive.
func (r *ingredientRepo) List(ctx context.Context, search string) ([]model.Ingredient, error) {
	q := r.db.WithContext(ctx).Model(&model.Ingredient{})
	if search != "" {
		q = q.Where("LOWER(description) LIKE LOWER(?)", "%"+search+"%")
	}
	var list []model.Ingredient
	err := q.Order("description ASC").Find(&list).Error
	return list, err
}

func (r *ingredientRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Ingredient, error) {
	var i model.Ingredient
	if err := r.db.WithContext(ctx).First(&i, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *ingredientRepo) Update(ctx context.Context, id uuid.UUID, columns map[string]any) (*model.Ingredient, error) {
	db := r.db.WithContext(ctx)
	if len(columns) > 0 {
		if err := affected(db.Model(&model.Ingredient{}).Where("id = ?", id).Updates(columns)); err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

// Delete removes the catalogue row only. Recipe usages keep their
// ingredient_id and render with an empty name afterwards.
func (r *ingredientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return affected(r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Ingredient{}))
}
