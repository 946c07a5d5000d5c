package usecase

import (
	authdomain "habitus-backend/internal/auth/domain"
	authdto "habitus-backend/internal/auth/dto"
)

// AuthUsecase defines the authentication business logic.
type AuthUsecase interface {
	// Register creates a new account and returns its first token pair
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)

	// Login authenticates by email and password
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// RefreshToken exchanges a valid refresh token for a new token pair
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)

	// Logout invalidates a refresh token
	Logout(refreshToken string) error

	// ValidateToken resolves an access token to its user
	ValidateToken(tokenString string) (*authdomain.User, error)

	// RegisterDevice stores a device token for reminder delivery
	RegisterDevice(userID, token, deviceInfo string) error

	// UnregisterDevice removes a device token
	UnregisterDevice(token string) error
}
