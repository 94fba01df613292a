package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleEncargado = "encargado"
	RoleCajero    = "cajero"
)

// User representa un empleado del negocio. El login es por email + PIN
// numérico corto; el PIN nunca se guarda en claro.
type User struct {
	ID        string    `bson:"_id"`
	Email     string    `bson:"email"`
	Name      string    `bson:"name"`
	PINHash   string    `bson:"pin_hash"` // bcrypt
	Role      string    `bson:"role"`     // admin, encargado, cajero
	BranchID  string    `bson:"branch_id"`
	Status    string    `bson:"status"` // active, inactive
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}
