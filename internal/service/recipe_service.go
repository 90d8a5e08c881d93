package service

import (
	"context"

	"github.com/uiliamvenerio/salada-landing/internal/dto"
	"github.com/uiliamvenerio/salada-landing/internal/repository"
	"github.com/uiliamvenerio/salada-landing/internal/writelog"

	"github.com/google/uuid"
)

// RecipeService is the public surface of the recipe aggregate.
type RecipeService interface {
	List(ctx context.Context) ([]dto.RecipeResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.RecipeResponse, error)
	// Create and Update return the stored header only.
	Create(ctx context.Context, req dto.RecipeRequest) (*dto.RecipeHeaderResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.RecipeRequest) (*dto.RecipeHeaderResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Incomplete lists recipes whose last write stopped after the header.
	Incomplete(ctx context.Context) ([]dto.IncompleteWriteResponse, error)
}

// ledger is what the service needs from writelog.Ledger.
type ledger interface {
	incompleteLog
	List(ctx context.Context) ([]writelog.Entry, error)
}

// listCache is what the service needs from RecipeListCache.
type listCache interface {
	Get(ctx context.Context) ([]dto.RecipeResponse, bool)
	Generation(ctx context.Context) (int64, bool)
	Set(ctx context.Context, gen int64, list []dto.RecipeResponse)
	Invalidate(ctx context.Context)
}

type recipeService struct {
	writer *recipeWriter
	reader *recipeReader
	cache  listCache
	ledger ledger
}

// NewRecipeService wires the writer and reader over repo. cache and incomplete
// may be nil. atomicWrites runs each write in one transaction instead of
// independent statements.
func NewRecipeService(repo repository.RecipeRepository, cache *RecipeListCache, incomplete *writelog.Ledger, atomicWrites bool) RecipeService {
	return newRecipeService(repo, cache, incomplete, atomicWrites)
}

func newRecipeService(repo repository.RecipeRepository, cache listCache, l ledger, atomic bool) *recipeService {
	if cache == nil {
		// A nil *RecipeListCache is a disabled cache.
		cache = (*RecipeListCache)(nil)
	}
	return &recipeService{
		writer: &recipeWriter{repo: repo, ledger: l, atomic: atomic},
		reader: &recipeReader{repo: repo},
		cache:  cache,
		ledger: l,
	}
}

func (s *recipeService) List(ctx context.Context) ([]dto.RecipeResponse, error) {
	if list, ok := s.cache.Get(ctx); ok {
		return list, nil
	}
	// Taken before the read: a write committed meanwhile moves it on.
	gen, cacheable := s.cache.Generation(ctx)
	list, err := s.reader.List(ctx)
	if err != nil {
		return nil, err
	}
	if cacheable {
		s.cache.Set(ctx, gen, list)
	}
	return list, nil
}

func (s *recipeService) Get(ctx context.Context, id uuid.UUID) (*dto.RecipeResponse, error) {
	return s.reader.Get(ctx, id)
}

func (s *recipeService) Create(ctx context.Context, req dto.RecipeRequest) (*dto.RecipeHeaderResponse, error) {
	rec, err := s.writer.Create(ctx, &req)
	s.cache.Invalidate(ctx)
	if err != nil {
		return nil, err
	}
	resp := toHeaderResponse(rec)
	return &resp, nil
}

func (s *recipeService) Update(ctx context.Context, id uuid.UUID, req dto.RecipeRequest) (*dto.RecipeHeaderResponse, error) {
	rec, err := s.writer.Update(ctx, id, &req)
	s.cache.Invalidate(ctx)
	if err != nil {
		return nil, err
	}
	resp := toHeaderResponse(rec)
	return &resp, nil
}

func (s *recipeService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.writer.Delete(ctx, id)
	s.cache.Invalidate(ctx)
	return err
}

func (s *recipeService) Incomplete(ctx context.Context) ([]dto.IncompleteWriteResponse, error) {
	out := []dto.IncompleteWriteResponse{}
	if s.ledger == nil {
		return out, nil
	}
	entries, err := s.ledger.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		out = append(out, dto.IncompleteWriteResponse{
			RecipeID: e.RecipeID,
			Stage:    e.Stage,
			Reason:   e.Reason,
			FailedAt: e.FailedAt,
		})
	}
	return out, nil
}
