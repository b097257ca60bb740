package services

import (
	"errors"
	"time"

	"filedrop-api/internal/application/ports"
	"filedrop-api/internal/domain/user"
	"filedrop-api/internal/infrastructure/jwt"
)

// sessions are valid for a fixed hour from issuance
const tokenTTL = time.Hour

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

type AuthService struct {
	jwtService *jwt.Service
	hasher     ports.PasswordHasher
}

func NewAuthService(
	jwtService *jwt.Service,
	hasher ports.PasswordHasher,
) ports.Auth {
	return &AuthService{
		jwtService: jwtService,
		hasher:     hasher,
	}
}

func (as *AuthService) GenerateToken(u *user.User, requestPassword string) (string, error) {
	if u.PasswordHash == nil || !as.hasher.Verify(requestPassword, *u.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := as.jwtService.GenerateJWT(u.UUID.String(), tokenTTL)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}
