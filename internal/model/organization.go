package model

import (
	"time"

	"github.com/google/uuid"
)

// Organization is a client of the nutrition service (restaurant, school,
// hospital kitchen). Flat entity, no relations.
type Organization struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	Address     *string
	Phone       *string
	Responsible *string
	Avatar      *string
	Notes       *string
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

func (Organization) TableName() string { return "organizations" }
