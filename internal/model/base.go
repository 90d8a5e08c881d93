package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newID assigns an application-side UUID when the caller left it empty.
// PostgreSQL could default the column, but SQLite (used by the repository
// tests) cannot.
func newID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (o *Organization) BeforeCreate(*gorm.DB) error      { newID(&o.ID); return nil }
func (i *Ingredient) BeforeCreate(*gorm.DB) error        { newID(&i.ID); return nil }
func (r *Recipe) BeforeCreate(*gorm.DB) error            { newID(&r.ID); return nil }
func (ri *RecipeIngredient) BeforeCreate(*gorm.DB) error { newID(&ri.ID); return nil }
func (s *PreparationStep) BeforeCreate(*gorm.DB) error   { newID(&s.ID); return nil }
