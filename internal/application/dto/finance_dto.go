package dto

// UnlockRequest body para POST /api/finance/unlock.
type UnlockRequest struct {
	Password string `json:"password"`
}

// UnlockResponse token de sesión para la sección financiera.
type UnlockResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // segundos
}
