package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin      = "admin"
	RoleOwner      = "owner"
	RoleStaff      = "staff"
	RoleTechnician = "technician"
	RoleWholesaler = "wholesaler"
)

type User struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	Username     string      `json:"username" db:"username"`
	PasswordHash string      `json:"-" db:"password_hash"`
	Role         string      `json:"role" db:"role"`
	ShopIDs      []uuid.UUID `json:"shop_ids" db:"-"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleOwner, RoleStaff, RoleTechnician, RoleWholesaler:
		return true
	}
	return false
}
