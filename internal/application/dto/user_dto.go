package dto

import "time"

// RegisterRequest alta de un empleado. PIN numérico corto (se guarda bcrypt).
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	PIN      string `json:"pin" validate:"required,min=4,max=8"`
	Role     string `json:"role"`
	BranchID string `json:"branch_id"`
}

// LoginRequest login por email + PIN.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	PIN   string `json:"pin" validate:"required"`
}

// UserResponse salida de un empleado (sin hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	BranchID  string    `json:"branch_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token JWT + datos del empleado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
