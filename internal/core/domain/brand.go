package domain

import (
	"time"

	"github.com/google/uuid"
)

type Brand struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name"`
	Country     string    `json:"country"`
	FoundedYear *int      `json:"founded_year"`
	Slug        string    `json:"slug"`
}
