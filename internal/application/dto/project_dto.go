package dto

import "time"

// CreateProjectRequest body for POST /api/projects.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateProjectRequest body for PUT /api/projects/:id.
type UpdateProjectRequest = CreateProjectRequest

// ProjectResponse project in responses.
type ProjectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
