package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/mealprep/backend/internal/service"
	"github.com/pageza/mealprep/backend/internal/testhelpers"
	"github.com/pageza/mealprep/backend/internal/types"
)

func setupAuthTest(t *testing.T) *service.AuthService {
	db := testhelpers.SetupSQLite(t)
	return service.NewAuthService(db, "test-secret", time.Hour, zap.NewNop())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := setupAuthTest(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "Cook", " Cook@Example.com ", "password123")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "cook@example.com", user.Email)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "cook@example.com", claims.Email)

	loggedIn, token, err := svc.Login(ctx, "cook@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, token)

	found, err := svc.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cook", found.Name)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := setupAuthTest(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Cook", "cook@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "Other", "COOK@example.com", "password456")
	assert.ErrorIs(t, err, service.ErrUserExists)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := setupAuthTest(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Cook", "cook@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "cook@example.com", "wrong-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestValidateTokenRejects(t *testing.T) {
	svc := setupAuthTest(t)
	userID := uuid.New()

	expired, err := svc.GenerateToken(&types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "mealprep",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		UserID: userID,
	})
	require.NoError(t, err)

	other := service.NewAuthService(testhelpers.SetupSQLite(t), "other-secret", time.Hour, zap.NewNop())
	foreign, err := other.GenerateToken(&types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "mealprep",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: userID,
	})
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":      "not-a-token",
		"expired":      expired,
		"wrong secret": foreign,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ValidateToken(token)
			assert.ErrorIs(t, err, service.ErrInvalidToken)
		})
	}
}

func TestGetUserByIDNotFound(t *testing.T) {
	svc := setupAuthTest(t)
	_, err := svc.GetUserByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
