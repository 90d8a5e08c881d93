package handler

import (
	"net/http"

	"github.com/uiliamvenerio/salada-landing/internal/dto"
	"github.com/uiliamvenerio/salada-landing/internal/service"

	"github.com/gin-gonic/gin"
)

const ingredientNotFound = "Ingrediente não encontrado"

type IngredientsHandler struct{ svc service.IngredientService }

func NewIngredientsHandler(svc service.IngredientService) *IngredientsHandler {
	return &IngredientsHandler{svc: svc}
}

// List GET /v1/ingredients?search=
func (h *IngredientsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err, ingredientNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get GET /v1/ingredients/:id
func (h *IngredientsHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, ingredientNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create POST /v1/ingredients
func (h *IngredientsHandler) Create(c *gin.Context) {
	var req dto.IngredientRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, ingredientNotFound)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update PUT /v1/ingredients/:id
func (h *IngredientsHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.IngredientRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, ingredientNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /v1/ingredients/:id
func (h *IngredientsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, ingredientNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
