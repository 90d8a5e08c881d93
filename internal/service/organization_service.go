package service

import (
	"context"

	"github.com/uiliamvenerio/salada-landing/internal/dto"
	"github.com/uiliamvenerio/salada-landing/internal/model"
	"github.com/uiliamvenerio/salada-landing/internal/repository"

	"github.com/google/uuid"
)

// OrganizationService manages the clients of the nutrition service.
type OrganizationService interface {
	List(ctx context.Context) ([]dto.OrganizationResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.OrganizationResponse, error)
	Create(ctx context.Context, req dto.OrganizationRequest) (*dto.OrganizationResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.OrganizationRequest) (*dto.OrganizationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type organizationService struct {
	repo repository.OrganizationRepository
}

func NewOrganizationService(repo repository.OrganizationRepository) OrganizationService {
	return &organizationService{repo: repo}
}

func (s *organizationService) List(ctx context.Context) ([]dto.OrganizationResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrganizationResponse, len(list))
	for i := range list {
		out[i] = toOrganizationResponse(&list[i])
	}
	return out, nil
}

func (s *organizationService) GetByID(ctx context.Context, id uuid.UUID) (*dto.OrganizationResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	resp := toOrganizationResponse(o)
	return &resp, nil
}

func (s *organizationService) Create(ctx context.Context, req dto.OrganizationRequest) (*dto.OrganizationResponse, error) {
	o := model.Organization{
		Address:     emptyAsNil(req.Address),
		Phone:       emptyAsNil(req.Phone),
		Responsible: emptyAsNil(req.Responsible),
		Avatar:      emptyAsNil(req.Avatar),
		Notes:       emptyAsNil(req.Notes),
	}
	if req.Name != nil {
		o.Name = *req.Name
	}
	if err := s.repo.Create(ctx, &o); err != nil {
		return nil, err
	}
	resp := toOrganizationResponse(&o)
	return &resp, nil
}

func (s *organizationService) Update(ctx context.Context, id uuid.UUID, req dto.OrganizationRequest) (*dto.OrganizationResponse, error) {
	cols := map[string]any{}
	if req.Name != nil {
		cols["name"] = *req.Name
	}
	optional := map[string]*string{
		"address":     req.Address,
		"phone":       req.Phone,
		"responsible": req.Responsible,
		"avatar":      req.Avatar,
		"notes":       req.Notes,
	}
	for col, v := range optional {
		if v == nil {
			continue
		}
		if p := emptyAsNil(v); p != nil {
			cols[col] = *p
		} else {
			cols[col] = nil
		}
	}
	o, err := s.repo.Update(ctx, id, cols)
	if err != nil {
		return nil, notFound(err)
	}
	resp := toOrganizationResponse(o)
	return &resp, nil
}

func (s *organizationService) Delete(ctx context.Context, id uuid.UUID) error {
	return notFound(s.repo.Delete(ctx, id))
}

func emptyAsNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func toOrganizationResponse(o *model.Organization) dto.OrganizationResponse {
	return dto.OrganizationResponse{
		ID:          o.ID.String(),
		Name:        o.Name,
		Address:     o.Address,
		Phone:       o.Phone,
		Responsible: o.Responsible,
		Avatar:      o.Avatar,
		Notes:       o.Notes,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
