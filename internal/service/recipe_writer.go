package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/uiliamvenerio/salada-landing/internal/dto"
	"github.com/uiliamvenerio/salada-landing/internal/model"
	"github.com/uiliamvenerio/salada-landing/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// incompleteLog is the part of writelog.Ledger the writer needs.
type incompleteLog interface {
	Record(ctx context.Context, recipeID, stage string, cause error)
	Clear(ctx context.Context, recipeID string)
}

// recipeWriter persists a recipe aggregate as a sequence of statements:
// header, ingredient usages, preparation steps. The first failing statement
// stops the sequence. Without atomic mode nothing is rolled back and a
// failure after the header surfaces as *PartialWriteError.
type recipeWriter struct {
	repo   repository.RecipeRepository
	ledger incompleteLog
	atomic bool
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// run executes one write sequence. In atomic mode a partial failure rolls
// back and is reported as a plain error; otherwise it is recorded in the
// ledger and returned as is.
func (w *recipeWriter) run(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if w.atomic {
		err := runTx(ctx, w.repo.DB(), fn)
		var pw *PartialWriteError
		if errors.As(err, &pw) {
			return fmt.Errorf("%s: %w", pw.Stage, pw.Err)
		}
		return err
	}
	err := fn(nil)
	var pw *PartialWriteError
	if errors.As(err, &pw) && w.ledger != nil {
		w.ledger.Record(ctx, pw.RecipeID, pw.Stage, pw.Err)
	}
	return err
}

// Create inserts the header, then the usages, then the steps. Empty child
// lists issue no statement.
func (w *recipeWriter) Create(ctx context.Context, req *dto.RecipeRequest) (*model.Recipe, error) {
	var rec model.Recipe
	err := w.run(ctx, func(tx *gorm.DB) error {
		var coerced []string
		rec, coerced = toStorage(req)
		warnCoerced("create", rec.Name, coerced)
		if err := w.repo.CreateHeader(ctx, tx, &rec); err != nil {
			return err
		}
		return w.writeChildren(ctx, tx, rec.ID, req.Ingredients, req.StepList(), false)
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update writes the header columns carried by req, then replaces each child
// collection whose key was sent: all existing rows are deleted and the new
// list inserted. An empty list leaves the recipe without rows; an absent key
// leaves the stored rows untouched.
func (w *recipeWriter) Update(ctx context.Context, id uuid.UUID, req *dto.RecipeRequest) (*model.Recipe, error) {
	var rec *model.Recipe
	err := w.run(ctx, func(tx *gorm.DB) error {
		cols, coerced := toColumns(req)
		warnCoerced("update", id.String(), coerced)
		var err error
		if rec, err = w.repo.UpdateHeader(ctx, tx, id, cols); err != nil {
			return notFound(err)
		}
		return w.writeChildren(ctx, tx, id, req.Ingredients, req.StepList(), true)
	})
	if err != nil {
		return nil, err
	}
	// Only a full rewrite of both collections repairs an earlier partial
	// write; a header-only edit leaves the children as they were.
	if w.ledger != nil && req.Ingredients != nil && req.StepList() != nil {
		w.ledger.Clear(ctx, id.String())
	}
	return rec, nil
}

// Delete removes steps, usages and finally the header, so an interrupted
// delete leaves a readable recipe behind rather than orphaned children.
func (w *recipeWriter) Delete(ctx context.Context, id uuid.UUID) error {
	err := w.run(ctx, func(tx *gorm.DB) error {
		if err := w.repo.DeleteSteps(ctx, tx, id); err != nil {
			return err
		}
		if err := w.repo.DeleteIngredients(ctx, tx, id); err != nil {
			return partial(id, StageIngredientsDelete, err)
		}
		if err := w.repo.DeleteHeader(ctx, tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return partial(id, StageHeaderDelete, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if w.ledger != nil {
		w.ledger.Clear(ctx, id.String())
	}
	return nil
}

// writeChildren runs the usage and step statements that follow a header
// write. With replace set, a non-nil list first deletes the stored rows.
func (w *recipeWriter) writeChildren(ctx context.Context, tx *gorm.DB, id uuid.UUID,
	ingredients []dto.RecipeIngredientInput, steps []dto.StepInput, replace bool) error {

	if replace && ingredients != nil {
		if err := w.repo.DeleteIngredients(ctx, tx, id); err != nil {
			return partial(id, StageIngredientsDelete, err)
		}
	}
	if len(ingredients) > 0 {
		rows, coerced := toUsageRows(id, ingredients)
		warnCoerced("ingredients", id.String(), coerced)
		if err := w.repo.InsertIngredients(ctx, tx, rows); err != nil {
			return partial(id, StageIngredientsInsert, err)
		}
	}

	if replace && steps != nil {
		if err := w.repo.DeleteSteps(ctx, tx, id); err != nil {
			return partial(id, StageStepsDelete, err)
		}
	}
	if len(steps) > 0 {
		if err := w.repo.InsertSteps(ctx, tx, sequenceSteps(id, steps)); err != nil {
			return partial(id, StageStepsInsert, err)
		}
	}
	return nil
}

func partial(id uuid.UUID, stage string, err error) error {
	return &PartialWriteError{RecipeID: id.String(), Stage: stage, Err: err}
}

func warnCoerced(op, recipe string, fields []string) {
	if len(fields) == 0 {
		return
	}
	log.Warn().
		Str("op", op).
		Str("recipe", recipe).
		Strs("fields", fields).
		Msg("recipe: unparsable values stored as defaults")
}
