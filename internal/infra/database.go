package infra

import (
	"fmt"

	"github.com/uiliamvenerio/salada-landing/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and brings the schema
// up to date (AutoMigrate followed by idempotent SQL patches).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations creates / updates all tables. It is shared by the server and
// by repository tests (SQLite), so dialect-specific DDL lives in
// applySchemaPatches and only runs on PostgreSQL.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Organization{},
		&model.Ingredient{},
		&model.Recipe{},
		&model.RecipeIngredient{},
		&model.PreparationStep{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL statements that GORM AutoMigrate cannot
// express. Each statement is guarded so re-running on a patched DB is a no-op.
//
// Child tables get ON DELETE CASCADE towards recipes. The application still
// deletes children explicitly; the constraint only protects against rows
// removed outside this service. recipe_ingredients.ingredient_id deliberately
// has no constraint: usages keep pointing at deleted ingredients.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		{"fk recipe_ingredients.recipe_id", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_recipe_ingredients_recipe') THEN
    ALTER TABLE recipe_ingredients
      ADD CONSTRAINT fk_recipe_ingredients_recipe
      FOREIGN KEY (recipe_id) REFERENCES recipes(id) ON DELETE CASCADE;
  END IF;
END $$`},
		{"fk preparation_steps.recipe_id", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_preparation_steps_recipe') THEN
    ALTER TABLE preparation_steps
      ADD CONSTRAINT fk_preparation_steps_recipe
      FOREIGN KEY (recipe_id) REFERENCES recipes(id) ON DELETE CASCADE;
  END IF;
END $$`},
		{"index recipes.created_at",
			`CREATE INDEX IF NOT EXISTS idx_recipes_created_at ON recipes (created_at DESC)`},
		{"index ingredients.description",
			`CREATE INDEX IF NOT EXISTS idx_ingredients_description ON ingredients (description)`},
	}
	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
