package dto

import "time"

// CreateOwnerRequest body for POST /api/owners.
type CreateOwnerRequest struct {
	Name       string `json:"name"`
	NationalID string `json:"national_id,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	Address    string `json:"address,omitempty"`
	SabNumber  string `json:"sab_number,omitempty"`
}

// UpdateOwnerRequest body for PUT /api/owners/:id.
type UpdateOwnerRequest = CreateOwnerRequest

// OwnerResponse owner in responses.
type OwnerResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	NationalID string    `json:"national_id,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	Address    string    `json:"address,omitempty"`
	SabNumber  string    `json:"sab_number,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
