package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/dto"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/model"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/repository"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/apperror"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/mailer"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/otp"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

// TokenTTL is the fixed validity window for issued bearer tokens.
const TokenTTL = 7 * 24 * time.Hour

// Claims carried inside the bearer token. Subject holds the user ID.
type Claims struct {
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(ctx context.Context, input dto.RegisterInput) (*model.User, error)
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)
	GoogleSignIn(ctx context.Context, credential string) (*dto.AuthResponse, error)
	Me(ctx context.Context, userID uuid.UUID) (*model.User, error)
	RequestReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

type authService struct {
	repo           repository.UserRepository
	otpStore       otp.Store
	mailer         mailer.Mailer
	rdb            *redis.Client
	secret         string
	googleClientID string
	otpCooldown    time.Duration
}

func NewAuthService(
	repo repository.UserRepository,
	otpStore otp.Store,
	m mailer.Mailer,
	rdb *redis.Client,
	secret string,
	googleClientID string,
	otpCooldown time.Duration,
) AuthService {
	return &authService{
		repo:           repo,
		otpStore:       otpStore,
		mailer:         m,
		rdb:            rdb,
		secret:         secret,
		googleClientID: googleClientID,
		otpCooldown:    otpCooldown,
	}
}

func (s *authService) Register(ctx context.Context, input dto.RegisterInput) (*model.User, error) {
	email := normalizeEmail(input.Email)

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", apperror.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         model.RoleUser,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperror.ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", apperror.ErrUnauthorized)
	}

	return s.buildAuthResponse(user)
}

func (s *authService) GoogleSignIn(ctx context.Context, credential string) (*dto.AuthResponse, error) {
	payload, err := idtoken.Validate(ctx, credential, s.googleClientID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid google credential", apperror.ErrUnauthorized)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("%w: google credential has no email", apperror.ErrUnauthorized)
	}
	email = normalizeEmail(email)

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		// First sight of this Google account, create a local user. The
		// password is random, sign-in stays federated.
		name, _ := payload.Claims["name"].(string)
		if name == "" {
			name = email
		}

		hashedPassword, hashErr := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		if hashErr != nil {
			return nil, fmt.Errorf("failed to hash password: %w", hashErr)
		}

		user = &model.User{
			Name:         name,
			Email:        email,
			PasswordHash: string(hashedPassword),
			Role:         model.RoleUser,
		}

		if picture, ok := payload.Claims["picture"].(string); ok && picture != "" {
			user.PhotoURL = &picture
		}

		if err := s.repo.Create(ctx, user); err != nil {
			return nil, err
		}
	}

	return s.buildAuthResponse(user)
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *authService) buildAuthResponse(user *model.User) (*dto.AuthResponse, error) {
	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""

	return &dto.AuthResponse{
		Token: token,
		User:  user,
	}, nil
}

func (s *authService) generateToken(user *model.User) (string, error) {
	now := time.Now()

	claims := Claims{
		Role:  user.Role,
		Name:  user.Name,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
