package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derya/acadvault/internal/app/models"
	"github.com/derya/acadvault/internal/pkg/apperrors"
	"github.com/derya/acadvault/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key-for-unit-tests",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "acadvault-test",
	})
}

func newTestAdmin(t *testing.T, email, password string) models.Admin {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return models.Admin{ID: uuid.New(), Email: email, PasswordHash: hash}
}

func TestLogin_Success(t *testing.T) {
	admin := newTestAdmin(t, "admin@example.com", "correct horse battery staple")
	admins := &fakeAdminStore{admins: []models.Admin{admin}}
	jwtService := newTestJWTService()
	svc := NewAuthService(admins, jwtService)

	resp, err := svc.Login(context.Background(), admin.Email, "correct horse battery staple")

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, 3600, resp.ExpiresIn)

	claims, err := jwtService.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.AdminID)
	assert.Equal(t, admin.Email, claims.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	admin := newTestAdmin(t, "admin@example.com", "right password")
	admins := &fakeAdminStore{admins: []models.Admin{admin}}
	svc := NewAuthService(admins, newTestJWTService())

	_, err := svc.Login(context.Background(), admin.Email, "wrong password")

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewAuthService(&fakeAdminStore{}, newTestJWTService())

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")

	// Indistinguishable from a wrong password.
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
