package dto

import "time"

type OrganizationRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1,max=200"`
	Address     *string `json:"address"     validate:"omitempty,max=300"`
	Phone       *string `json:"phone"       validate:"omitempty,max=40"`
	Responsible *string `json:"responsible" validate:"omitempty,max=120"`
	Avatar      *string `json:"avatar"`
	Notes       *string `json:"notes"`
}

type OrganizationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     *string   `json:"address"`
	Phone       *string   `json:"phone"`
	Responsible *string   `json:"responsible"`
	Avatar      *string   `json:"avatar"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
