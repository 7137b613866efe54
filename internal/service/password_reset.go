package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/apperror"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/otp"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const otpTTL = 5 * time.Minute

func (s *authService) RequestReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: no account with that email", apperror.ErrNotFound)
		}
		return err
	}

	allowed, err := CheckAndSetRateLimit(ctx, s.rdb, email, "reset_request", s.otpCooldown)
	if err != nil {
		return err
	}
	if !allowed {
		ttl, _ := GetRateLimitTTL(ctx, s.rdb, email, "reset_request")
		return fmt.Errorf("%w: a reset code was sent recently, try again in %.0f seconds",
			apperror.ErrBadRequest, ttl.Seconds())
	}

	code, err := generateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate reset code: %w", err)
	}

	// Overwrites any prior pending code, last request wins
	if err := s.otpStore.Set(ctx, email, code, otpTTL); err != nil {
		return err
	}

	body := fmt.Sprintf(`<p>Hi %s,</p>
<p>Your password reset code is:</p>
<h2>%s</h2>
<p>The code expires in 5 minutes. If you did not request a reset, ignore this email.</p>`,
		user.Name, code)

	return s.mailer.Send(ctx, []string{email}, "Your password reset code", body)
}

func (s *authService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	email = normalizeEmail(email)

	stored, err := s.otpStore.Get(ctx, email)
	if err != nil {
		if errors.Is(err, otp.ErrExpired) {
			return fmt.Errorf("%w: code has expired", apperror.ErrBadRequest)
		}
		if errors.Is(err, otp.ErrNotRequested) {
			return fmt.Errorf("%w: no pending reset code for this email", apperror.ErrBadRequest)
		}
		return err
	}

	if stored != code {
		return fmt.Errorf("%w: incorrect code", apperror.ErrBadRequest)
	}

	// Single use: the entry is gone before the password is touched
	if err := s.otpStore.Delete(ctx, email); err != nil {
		return err
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: no account with that email", apperror.ErrNotFound)
		}
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.repo.UpdatePassword(ctx, user.ID, string(hashedPassword))
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
