package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "ADMIN"
	RoleStaff      = "STAFF"
	RoleManager    = "MANAGER"
	RoleProduction = "PRODUCTION"
)

// ValidRole indica si r es un rol conocido.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleManager, RoleProduction:
		return true
	}
	return false
}

// User representa un usuario del sistema.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"` // único
	Name         string    `json:"name"`
	Role         string    `json:"role"`          // ADMIN, STAFF, MANAGER, PRODUCTION
	PasswordHash string    `json:"password_hash"` // bcrypt hash, nunca plano después de persistir
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
