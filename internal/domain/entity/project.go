package entity

import "time"

// Project groups units under one development (name is unique).
type Project struct {
	ID          string
	Name        string
	Location    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
