package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/dto"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/apperror"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/otp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var otpCodePattern = regexp.MustCompile(`\d{6}`)

func codeFromMail(t *testing.T, mailer *fakeMailer) string {
	t.Helper()
	mail := mailer.lastMail()
	require.NotNil(t, mail, "expected a reset email to be sent")
	code := otpCodePattern.FindString(mail.Body)
	require.Len(t, code, 6)
	return code
}

func TestPasswordResetFlow(t *testing.T) {
	db := setupTestDB(t)
	mailer := &fakeMailer{}
	svc := newTestAuthService(t, db, mailer, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterInput{
		Name:     "Tanuj",
		Email:    "tanuj@example.com",
		Password: "oldpassword",
	})
	require.NoError(t, err)

	require.NoError(t, svc.RequestReset(ctx, "tanuj@example.com"))
	code := codeFromMail(t, mailer)

	require.NoError(t, svc.ResetPassword(ctx, "tanuj@example.com", code, "newpassword"))

	_, err = svc.Login(ctx, dto.LoginInput{Email: "tanuj@example.com", Password: "oldpassword"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = svc.Login(ctx, dto.LoginInput{Email: "tanuj@example.com", Password: "newpassword"})
	assert.NoError(t, err)
}

func TestPasswordResetCodeIsSingleUse(t *testing.T) {
	db := setupTestDB(t)
	mailer := &fakeMailer{}
	svc := newTestAuthService(t, db, mailer, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterInput{
		Name:     "Tanuj",
		Email:    "tanuj@example.com",
		Password: "oldpassword",
	})
	require.NoError(t, err)

	require.NoError(t, svc.RequestReset(ctx, "tanuj@example.com"))
	code := codeFromMail(t, mailer)

	require.NoError(t, svc.ResetPassword(ctx, "tanuj@example.com", code, "newpassword"))

	err = svc.ResetPassword(ctx, "tanuj@example.com", code, "anotherpassword")
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
}

func TestPasswordResetWrongCode(t *testing.T) {
	db := setupTestDB(t)
	mailer := &fakeMailer{}
	svc := newTestAuthService(t, db, mailer, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterInput{
		Name:     "Tanuj",
		Email:    "tanuj@example.com",
		Password: "oldpassword",
	})
	require.NoError(t, err)

	require.NoError(t, svc.RequestReset(ctx, "tanuj@example.com"))

	err = svc.ResetPassword(ctx, "tanuj@example.com", "000000", "newpassword")
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	// The real code still works after a failed guess
	code := codeFromMail(t, mailer)
	if code == "000000" {
		t.Skip("generated code collides with the wrong guess")
	}
	assert.NoError(t, svc.ResetPassword(ctx, "tanuj@example.com", code, "newpassword"))
}

func TestPasswordResetExpiredCode(t *testing.T) {
	db := setupTestDB(t)
	mailer := &fakeMailer{}
	store := otp.NewMemoryStore()
	svc := newTestAuthService(t, db, mailer, store)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterInput{
		Name:     "Tanuj",
		Email:    "tanuj@example.com",
		Password: "oldpassword",
	})
	require.NoError(t, err)

	// Plant an already-lapsed code directly in the store
	require.NoError(t, store.Set(ctx, "tanuj@example.com", "123456", -time.Second))

	err = svc.ResetPassword(ctx, "tanuj@example.com", "123456", "newpassword")
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
	assert.Contains(t, err.Error(), "expired")
}

func TestPasswordResetUnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(t, db, nil, nil)

	err := svc.RequestReset(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestPasswordResetNoPendingCode(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(t, db, nil, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterInput{
		Name:     "Tanuj",
		Email:    "tanuj@example.com",
		Password: "oldpassword",
	})
	require.NoError(t, err)

	err = svc.ResetPassword(ctx, "tanuj@example.com", "123456", "newpassword")
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
}
