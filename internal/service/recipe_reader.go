package service

import (
	"context"

	"github.com/uiliamvenerio/salada-landing/internal/dto"
	"github.com/uiliamvenerio/salada-landing/internal/model"
	"github.com/uiliamvenerio/salada-landing/internal/repository"

	"github.com/google/uuid"
)

// recipeReader hydrates aggregates with three queries regardless of how many
// recipes are read: headers, usages joined with ingredient descriptions, and
// steps.
type recipeReader struct {
	repo repository.RecipeRepository
}

// List returns every recipe, newest first.
func (r *recipeReader) List(ctx context.Context) ([]dto.RecipeResponse, error) {
	headers, err := r.repo.ListHeaders(ctx)
	if err != nil {
		return nil, err
	}
	return r.hydrate(ctx, headers)
}

func (r *recipeReader) Get(ctx context.Context, id uuid.UUID) (*dto.RecipeResponse, error) {
	header, err := r.repo.FindHeader(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	list, err := r.hydrate(ctx, []model.Recipe{*header})
	if err != nil {
		return nil, err
	}
	return &list[0], nil
}

func (r *recipeReader) hydrate(ctx context.Context, headers []model.Recipe) ([]dto.RecipeResponse, error) {
	out := make([]dto.RecipeResponse, 0, len(headers))
	if len(headers) == 0 {
		return out, nil
	}
	ids := make([]uuid.UUID, len(headers))
	for i, h := range headers {
		ids[i] = h.ID
	}

	usages, err := r.repo.ListIngredientRows(ctx, ids)
	if err != nil {
		return nil, err
	}
	steps, err := r.repo.ListSteps(ctx, ids)
	if err != nil {
		return nil, err
	}

	usagesBy := make(map[uuid.UUID][]model.RecipeIngredientRow, len(headers))
	for _, u := range usages {
		usagesBy[u.RecipeID] = append(usagesBy[u.RecipeID], u)
	}
	stepsBy := make(map[uuid.UUID][]model.PreparationStep, len(headers))
	for _, s := range steps {
		stepsBy[s.RecipeID] = append(stepsBy[s.RecipeID], s)
	}

	for i := range headers {
		h := &headers[i]
		recipeSteps := stepsBy[h.ID]
		sortSteps(recipeSteps)
		out = append(out, fromStorage(h, usagesBy[h.ID], recipeSteps))
	}
	return out, nil
}
