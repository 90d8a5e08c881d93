package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when the addressed row does not exist.
var ErrNotFound = errors.New("registro não encontrado")

// notFound maps gorm.ErrRecordNotFound to ErrNotFound and passes every other
// error through unchanged.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Stages of a recipe write after the header. They name where a
// PartialWriteError stopped.
const (
	StageIngredientsDelete = "ingredients.delete"
	StageIngredientsInsert = "ingredients.insert"
	StageStepsDelete       = "steps.delete"
	StageStepsInsert       = "steps.insert"
	StageHeaderDelete      = "header.delete"
)

// PartialWriteError reports a recipe write that failed after at least one
// statement had already been applied. Earlier statements are not rolled
// back; the caller decides whether to re-issue the write.
type PartialWriteError struct {
	RecipeID string
	Stage    string
	Err      error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("receita %s gravada parcialmente (etapa %s): %v", e.RecipeID, e.Stage, e.Err)
}

func (e *PartialWriteError) Unwrap() error { return e.Err }
