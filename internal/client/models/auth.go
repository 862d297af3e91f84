// Package models defines the wire types exchanged with the SportowyHub
// backend. Field names are snake_case on the wire; decoding is
// case-insensitive (encoding/json default).
package models

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by both the login and the refresh endpoints.
// RefreshToken is only present when the request carried the
// X-Include-Refresh-Token header.
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Locale       string `json:"locale,omitempty"`
}

type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	Phone           string `json:"phone,omitempty"`
}

// RegisterResponse mirrors the server's registration read model. The account
// is not authenticated until the email is verified.
type RegisterResponse struct {
	ID         int    `json:"id"`
	Email      string `json:"email"`
	TrustLevel string `json:"trust_level"`
}

type ResendVerificationRequest struct {
	Email string `json:"email"`
}

type ResendVerificationResponse struct {
	Message string `json:"message"`
}
