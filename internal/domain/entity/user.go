package entity

import "time"

// Roles válidos para User.
const (
	RoleOwner  = "OWNER"
	RoleWorker = "WORKER"
)

// User representa un usuario del sistema (dueño o ejecutivo de ventas).
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // bcrypt hash, nunca plano en dominio después de persistir
	Role         string    `json:"role"` // OWNER, WORKER
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Actor es la identidad autenticada que ejecuta una operación.
// Se pasa explícitamente a cada caso de uso; no existe estado global de "usuario actual".
type Actor struct {
	UserID string
	Role   string
}

// IsOwner indica si el actor tiene el rol OWNER.
func (a Actor) IsOwner() bool { return a.Role == RoleOwner }

// CanAccess indica si el actor puede ver/modificar un registro cuyo campo de
// propiedad (assignedTo o createdBy según el recurso) es ownerID.
func (a Actor) CanAccess(ownerID string) bool {
	return a.IsOwner() || a.UserID == ownerID
}
