package auth

import (
	"time"

	"github.com/ShahiTechnovation/X4PN/pkg/user"
)

// NonceResponse carries the message a wallet must sign to log in.
type NonceResponse struct {
	Nonce string `json:"nonce"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Address   string `json:"address" validate:"required,eth_addr"`
	Signature string `json:"signature" validate:"required,hexadecimal"`
}

// LoginResponse returns the API token alongside the logged-in user.
type LoginResponse struct {
	Message   string     `json:"message"`
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expiresAt"`
	User      *user.User `json:"user"`
}
