package repository

import (
	"context"

	"github.com/uiliamvenerio/salada-landing/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganizationRepository interface {
	Create(ctx context.Context, o *model.Organization) error
	List(ctx context.Context) ([]model.Organization, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	Update(ctx context.Context, id uuid.UUID, columns map[string]any) (*model.Organization, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type organizationRepo struct{ db *gorm.DB }

func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepo{db: db}
}

func (r *organizationRepo) Create(ctx context.Context, o *model.Organization) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *organizationRepo) List(ctx context.Context) ([]model.Organization, error) {
	var list []model.Organization
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *organizationRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var o model.Organization
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *organizationRepo) Update(ctx context.Context, id uuid.UUID, columns map[string]any) (*model.Organization, error) {
	db := r.db.WithContext(ctx)
	if len(columns) > 0 {
		if err := affected(db.Model(&model.Organization{}).Where("id = ?", id).Updates(columns)); err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

func (r *organizationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return affected(r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Organization{}))
}
