package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// RegisterRequest creates a new user. Optional fields may be omitted but,
// when present, must not be blank.
type RegisterRequest struct {
	Hierarchy int     `json:"hierarchy" validate:"required,min=1"`
	Username  string  `json:"username"  validate:"required,min=1,max=150"`
	Nombre    string  `json:"nombre"    validate:"required,min=1,max=150"`
	DNI       *string `json:"dni"`
	Telefono  *string `json:"telefono"`
	Correo    *string `json:"correo"`
	Password  string  `json:"password"  validate:"required,min=1"`
}

type UpdateUsuarioRequest struct {
	Hierarchy *int    `json:"hierarchy" validate:"omitempty,min=1"`
	Nombre    string  `json:"nombre"    validate:"omitempty,min=1,max=150"`
	DNI       *string `json:"dni"`
	Telefono  *string `json:"telefono"`
	Correo    *string `json:"correo"`
}

type UpdateUsuarioStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Active Inactive"`
}

// UpdatePasswordRequest carries the new password; length >= 6 is enforced.
type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UsuarioResponse never includes the password hash.
type UsuarioResponse struct {
	UserID      uint    `json:"UserID"`
	Hierarchy   int     `json:"Hierarchy"`
	Username    string  `json:"Username"`
	Nombre      string  `json:"Nombre"`
	DNI         *string `json:"DNI"`
	Telefono    *string `json:"Telefono"`
	Correo      *string `json:"Correo"`
	Status      string  `json:"STATUS"`
	FechaStatus string  `json:"Fecha_STATUS"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
}
