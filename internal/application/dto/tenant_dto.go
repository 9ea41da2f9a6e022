package dto

import "time"

// CreateTenantRequest body for POST /api/tenants.
type CreateTenantRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	SabNumber string `json:"sab_number,omitempty"`
}

// UpdateTenantRequest body for PUT /api/tenants/:id.
type UpdateTenantRequest = CreateTenantRequest

// TenantResponse tenant in responses.
type TenantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	SabNumber string    `json:"sab_number,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
