package handler

import (
	"net/http"

	"github.com/uiliamvenerio/salada-landing/internal/dto"
	"github.com/uiliamvenerio/salada-landing/internal/service"

	"github.com/gin-gonic/gin"
)

const recipeNotFound = "Receita não encontrada"

type RecipesHandler struct{ svc service.RecipeService }

func NewRecipesHandler(svc service.RecipeService) *RecipesHandler {
	return &RecipesHandler{svc: svc}
}

// List GET /v1/recipes
func (h *RecipesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, recipeNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get GET /v1/recipes/:id
func (h *RecipesHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, recipeNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create POST /v1/recipes
func (h *RecipesHandler) Create(c *gin.Context) {
	var req dto.RecipeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, recipeNotFound)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update PUT /v1/recipes/:id
func (h *RecipesHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.RecipeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, recipeNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /v1/recipes/:id
func (h *RecipesHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, recipeNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// Incomplete GET /v1/recipes/incomplete
func (h *RecipesHandler) Incomplete(c *gin.Context) {
	resp, err := h.svc.Incomplete(c.Request.Context())
	if err != nil {
		respondError(c, err, recipeNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}
