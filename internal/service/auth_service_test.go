package service

import (
	"context"
	"testing"
	"time"

	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/dto"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/model"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/repository"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/apperror"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/otp"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestAuthService(t *testing.T, db *gorm.DB, mailer *fakeMailer, store otp.Store) AuthService {
	t.Helper()
	if mailer == nil {
		mailer = &fakeMailer{}
	}
	if store == nil {
		store = otp.NewMemoryStore()
	}
	repo := repository.NewUserRepository(db)
	return NewAuthService(repo, store, mailer, nil, "test-secret", "", time.Minute)
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(t, db, nil, nil)
	ctx := context.Background()

	user, err := svc.Register(ctx, dto.RegisterInput{
		Name:     "Tanuj",
		Email:    "Tanuj@Example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "tanuj@example.com", user.Email)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.Empty(t, user.PasswordHash)

	resp, err := svc.Login(ctx, dto.LoginInput{
		Email:    "tanuj@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(t, db, nil, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterInput{
		Name:     "First",
		Email:    "dup@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	// Same address with different casing is still a duplicate
	_, err = svc.Register(ctx, dto.RegisterInput{
		Name:     "Second",
		Email:    "DUP@example.com",
		Password: "othersecret",
	})
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(t, db, nil, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterInput{
		Name:     "Tanuj",
		Email:    "tanuj@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginInput{
		Email:    "tanuj@example.com",
		Password: "wrongpassword",
	})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = svc.Login(ctx, dto.LoginInput{
		Email:    "unknown@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestTokenCarriesClaims(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(t, db, nil, nil)
	ctx := context.Background()

	user, err := svc.Register(ctx, dto.RegisterInput{
		Name:     "Tanuj",
		Email:    "tanuj@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, dto.LoginInput{
		Email:    "tanuj@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(resp.Token, claims, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, model.RoleUser, claims.Role)
	assert.Equal(t, "Tanuj", claims.Name)
	assert.Equal(t, "tanuj@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestMe(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(t, db, nil, nil)
	ctx := context.Background()

	user, err := svc.Register(ctx, dto.RegisterInput{
		Name:     "Tanuj",
		Email:    "tanuj@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	got, err := svc.Me(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)
	assert.Empty(t, got.PasswordHash)
}
