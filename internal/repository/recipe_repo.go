package repository

import (
	"context"

	"github.com/uiliamvenerio/salada-landing/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeRepository is the row-level access to the three recipe tables.
// It knows nothing about the aggregate: ordering of calls, replace semantics
// and failure policy belong to the service layer. Write methods accept an
// optional tx (nil = autocommit on the repository's handle).
type RecipeRepository interface {
	CreateHeader(ctx context.Context, tx *gorm.DB, r *model.Recipe) error
	// UpdateHeader writes only the given columns and returns the fresh row.
	UpdateHeader(ctx context.Context, tx *gorm.DB, id uuid.UUID, columns map[string]any) (*model.Recipe, error)
	DeleteHeader(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	FindHeader(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
	ListHeaders(ctx context.Context) ([]model.Recipe, error)

	InsertIngredients(ctx context.Context, tx *gorm.DB, rows []model.RecipeIngredient) error
	DeleteIngredients(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID) error
	// ListIngredientRows returns the usages of the given recipes joined with the
	// referenced ingredient's description only.
	ListIngredientRows(ctx context.Context, recipeIDs []uuid.UUID) ([]model.RecipeIngredientRow, error)

	InsertSteps(ctx context.Context, tx *gorm.DB, rows []model.PreparationStep) error
	DeleteSteps(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID) error
	ListSteps(ctx context.Context, recipeIDs []uuid.UUID) ([]model.PreparationStep, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type recipeRepo struct{ db *gorm.DB }

func NewRecipeRepository(db *gorm.DB) RecipeRepository { return &recipeRepo{db: db} }

func (r *recipeRepo) DB() *gorm.DB { return r.db }

func (r *recipeRepo) CreateHeader(ctx context.Context, tx *gorm.DB, rec *model.Recipe) error {
	return pick(r.db, tx).WithContext(ctx).Create(rec).Error
}

func (r *recipeRepo) UpdateHeader(ctx context.Context, tx *gorm.DB, id uuid.UUID, columns map[string]any) (*model.Recipe, error) {
	conn := pick(r.db, tx).WithContext(ctx)
	res := conn.Model(&model.Recipe{}).Where("id = ?", id).Updates(columns)
	if err := affected(res); err != nil {
		return nil, err
	}
	var rec model.Recipe
	if err := conn.First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recipeRepo) DeleteHeader(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return affected(pick(r.db, tx).WithContext(ctx).Where("id = ?", id).Delete(&model.Recipe{}))
}

func (r *recipeRepo) FindHeader(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var rec model.Recipe
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recipeRepo) ListHeaders(ctx context.Context) ([]model.Recipe, error) {
	var list []model.Recipe
	err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&list).Error
	return list, err
}

func (r *recipeRepo) InsertIngredients(ctx context.Context, tx *gorm.DB, rows []model.RecipeIngredient) error {
	if len(rows) == 0 {
		return nil
	}
	return pick(r.db, tx).WithContext(ctx).Create(&rows).Error
}

func (r *recipeRepo) DeleteIngredients(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID) error {
	return pick(r.db, tx).WithContext(ctx).Where("recipe_id = ?", recipeID).Delete(&model.RecipeIngredient{}).Error
}

func (r *recipeRepo) ListIngredientRows(ctx context.Context, recipeIDs []uuid.UUID) ([]model.RecipeIngredientRow, error) {
	rows := []model.RecipeIngredientRow{}
	if len(recipeIDs) == 0 {
		return rows, nil
	}
	err := r.db.WithContext(ctx).
		Table("recipe_ingredients").
		Select("recipe_ingredients.*, ingredients.description AS ingredient_name").
		Joins("LEFT JOIN ingredients ON CAST(ingredients.id AS TEXT) = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id IN ?", recipeIDs).
		Order("recipe_ingredients.position ASC").
		Order("recipe_ingredients.created_at ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *recipeRepo) InsertSteps(ctx context.Context, tx *gorm.DB, rows []model.PreparationStep) error {
	if len(rows) == 0 {
		return nil
	}
	return pick(r.db, tx).WithContext(ctx).Create(&rows).Error
}

func (r *recipeRepo) DeleteSteps(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID) error {
	return pick(r.db, tx).WithContext(ctx).Where("recipe_id = ?", recipeID).Delete(&model.PreparationStep{}).Error
}

func (r *recipeRepo) ListSteps(ctx context.Context, recipeIDs []uuid.UUID) ([]model.PreparationStep, error) {
	steps := []model.PreparationStep{}
	if len(recipeIDs) == 0 {
		return steps, nil
	}
	err := r.db.WithContext(ctx).
		Where("recipe_id IN ?", recipeIDs).
		Order("recipe_id").Order("step_number ASC").
		Find(&steps).Error
	return steps, err
}
