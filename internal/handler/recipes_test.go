package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/uiliamvenerio/salada-landing/internal/dto"
	"github.com/uiliamvenerio/salada-landing/internal/middleware"
	"github.com/uiliamvenerio/salada-landing/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRecipeService returns canned results and remembers the last request.
type stubRecipeService struct {
	err     error
	lastReq dto.RecipeRequest
	lastID  uuid.UUID
}

func (s *stubRecipeService) List(context.Context) ([]dto.RecipeResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []dto.RecipeResponse{{RecipeHeaderResponse: dto.RecipeHeaderResponse{Name: "Bolo"}}}, nil
}

func (s *stubRecipeService) Get(_ context.Context, id uuid.UUID) (*dto.RecipeResponse, error) {
	s.lastID = id
	if s.err != nil {
		return nil, s.err
	}
	return &dto.RecipeResponse{RecipeHeaderResponse: dto.RecipeHeaderResponse{ID: id.String()}}, nil
}

func (s *stubRecipeService) Create(_ context.Context, req dto.RecipeRequest) (*dto.RecipeHeaderResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &dto.RecipeHeaderResponse{ID: uuid.NewString(), Name: *req.Name}, nil
}

func (s *stubRecipeService) Update(_ context.Context, id uuid.UUID, req dto.RecipeRequest) (*dto.RecipeHeaderResponse, error) {
	s.lastID, s.lastReq = id, req
	if s.err != nil {
		return nil, s.err
	}
	return &dto.RecipeHeaderResponse{ID: id.String()}, nil
}

func (s *stubRecipeService) Delete(_ context.Context, id uuid.UUID) error {
	s.lastID = id
	return s.err
}

func (s *stubRecipeService) Incomplete(context.Context) ([]dto.IncompleteWriteResponse, error) {
	return []dto.IncompleteWriteResponse{{RecipeID: "r1", Stage: service.StageStepsInsert, FailedAt: time.Unix(0, 0).UTC()}}, s.err
}

func newRecipeRouter(svc service.RecipeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	h := NewRecipesHandler(svc)
	g := r.Group("/v1/recipes")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/incomplete", h.Incomplete)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRecipesHandler_Create(t *testing.T) {
	svc := &stubRecipeService{}
	r := newRecipeRouter(svc)

	w := do(r, http.MethodPost, "/v1/recipes", `{"name":"Bolo","cooking_index":"1.2","ingredients":[{"quantity":"200"}]}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	v, ok := svc.lastReq.CookingIndexAlt.Float()
	assert.True(t, ok)
	assert.Equal(t, 1.2, v)
	require.Len(t, svc.lastReq.Ingredients, 1)
}

func TestRecipesHandler_CreateBadInput(t *testing.T) {
	r := newRecipeRouter(&stubRecipeService{})

	w := do(r, http.MethodPost, "/v1/recipes", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/v1/recipes", `{"name":"Bolo","measurementUnit":"kg"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "oneof", body.Fields["RecipeRequest.MeasurementUnit"])

	w = do(r, http.MethodPost, "/v1/recipes", `{"name":"Bolo","ingredients":[{"ingredient_id":true}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "a reference is a string or a number")
}

func TestRecipesHandler_InvalidID(t *testing.T) {
	r := newRecipeRouter(&stubRecipeService{})
	for _, m := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w := do(r, m, "/v1/recipes/not-a-uuid", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code, m)
	}
}

func TestRecipesHandler_NotFound(t *testing.T) {
	r := newRecipeRouter(&stubRecipeService{err: service.ErrNotFound})
	w := do(r, http.MethodGet, "/v1/recipes/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Receita não encontrada"}`, w.Body.String())
}

func TestRecipesHandler_PartialWrite(t *testing.T) {
	id := uuid.NewString()
	svc := &stubRecipeService{err: &service.PartialWriteError{
		RecipeID: id,
		Stage:    service.StageIngredientsInsert,
		Err:      errors.New("pq: connection refused"),
	}}
	r := newRecipeRouter(svc)

	w := do(r, http.MethodPost, "/v1/recipes", `{"name":"Bolo"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, id, body["recipe_id"])
	assert.Equal(t, service.StageIngredientsInsert, body["stage"])
	assert.NotContains(t, body["detail"], "pq:")
}

func TestRecipesHandler_StoreErrorIsHidden(t *testing.T) {
	r := newRecipeRouter(&stubRecipeService{err: errors.New("pq: relation \"recipes\" does not exist")})
	w := do(r, http.MethodGet, "/v1/recipes", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "relation")
}

func TestRecipesHandler_UpdateAndDelete(t *testing.T) {
	svc := &stubRecipeService{}
	r := newRecipeRouter(svc)
	id := uuid.New()

	w := do(r, http.MethodPut, "/v1/recipes/"+id.String(), `{"ingredients":[]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, svc.lastID)
	assert.NotNil(t, svc.lastReq.Ingredients)
	assert.Nil(t, svc.lastReq.StepList())

	w = do(r, http.MethodDelete, "/v1/recipes/"+id.String(), "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRecipesHandler_Incomplete(t *testing.T) {
	r := newRecipeRouter(&stubRecipeService{})
	w := do(r, http.MethodGet, "/v1/recipes/incomplete", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"stage":"steps.insert"`)
}
