package handler

import (
	"net/http"

	"github.com/uiliamvenerio/salada-landing/internal/dto"
	"github.com/uiliamvenerio/salada-landing/internal/service"

	"github.com/gin-gonic/gin"
)

const organizationNotFound = "Organização não encontrada"

type OrganizationsHandler struct{ svc service.OrganizationService }

func NewOrganizationsHandler(svc service.OrganizationService) *OrganizationsHandler {
	return &OrganizationsHandler{svc: svc}
}

// List GET /v1/organizations
func (h *OrganizationsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, organizationNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get GET /v1/organizations/:id
func (h *OrganizationsHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, organizationNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create POST /v1/organizations
func (h *OrganizationsHandler) Create(c *gin.Context) {
	var req dto.OrganizationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, organizationNotFound)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update PUT /v1/organizations/:id
func (h *OrganizationsHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.OrganizationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, organizationNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /v1/organizations/:id
func (h *OrganizationsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, organizationNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
