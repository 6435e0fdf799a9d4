package models

import (
	"time"

	"github.com/google/uuid"
)

// Shop is the tenant boundary. Every stock-bearing row belongs to exactly one shop.
type Shop struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
