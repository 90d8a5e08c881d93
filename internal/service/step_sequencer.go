package service

import (
	"sort"

	"github.com/uiliamvenerio/salada-landing/internal/dto"
	"github.com/uiliamvenerio/salada-landing/internal/model"

	"github.com/google/uuid"
)

// sequenceSteps numbers the submitted steps 1..N in list order. Numbers sent
// by the caller are not trusted: the form renumbers before submitting, and a
// stale or duplicated number must not leave gaps in storage.
func sequenceSteps(recipeID uuid.UUID, in []dto.StepInput) []model.PreparationStep {
	rows := make([]model.PreparationStep, len(in))
	for i, s := range in {
		rows[i] = model.PreparationStep{
			RecipeID:    recipeID,
			StepNumber:  i + 1,
			Description: s.Description,
		}
	}
	return rows
}

// sortSteps orders stored rows for hydration. Stable, so rows with equal
// numbers keep the order the store returned them in.
func sortSteps(steps []model.PreparationStep) {
	sort.SliceStable(steps, func(a, b int) bool { return steps[a].StepNumber < steps[b].StepNumber })
}
