package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// LoginRequest binds the /login query parameters. Both fields are required;
// a missing one is a 400, a mismatch is a 401.
type LoginRequest struct {
	Username string `form:"Username" validate:"required"`
	Password string `form:"Password" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// LoginUser is the profile embedded in a successful login — never the
// password or its hash.
type LoginUser struct {
	ID        uint    `json:"id"`
	Username  string  `json:"username"`
	Hierarchy int     `json:"hierarchy"`
	Nombre    string  `json:"nombre"`
	DNI       *string `json:"dni"`
	Telefono  *string `json:"telefono"`
	Correo    *string `json:"correo"`
}

type LoginResponse struct {
	Message     string    `json:"message"`
	User        LoginUser `json:"user"`
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int       `json:"expires_in"` // seconds
}
