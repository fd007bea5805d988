package services

import (
	"context"
	"fmt"

	"github.com/derya/acadvault/internal/app/models/dto"
	"github.com/derya/acadvault/internal/app/repositories"
	"github.com/derya/acadvault/internal/pkg/apperrors"
	"github.com/derya/acadvault/internal/pkg/auth"
	"github.com/derya/acadvault/internal/pkg/logger"
)

// AuthService authenticates administrators
type AuthService interface {
	// Login verifies the credentials and issues an access token. Unknown
	// email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (*dto.LoginResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	adminRepo  repositories.AdminStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo repositories.AdminStore, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Login verifies admin credentials and issues a JWT access token
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error looking up admin: %w", err)
	}
	if admin == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(admin.PasswordHash, password) {
		logger.Warn().Str("email", email).Msg("Failed admin login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
