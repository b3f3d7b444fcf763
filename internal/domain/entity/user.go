package entity

import "time"

// Roles válidos para User. Solo admin puede gestionar productos y usuarios.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// User representa un usuario de la aplicación.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"` // bcrypt, nunca en texto plano
	Role         string    `json:"role"`          // admin | operator
	CreatedAt    time.Time `json:"created_at"`
}

// ValidRole indica si el rol es uno de los aceptados.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleOperator
}
