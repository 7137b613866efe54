package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/dto"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/model"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/repository"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminService interface {
	GetAllUsers(ctx context.Context) ([]*model.User, error)
	UpdateUserRole(ctx context.Context, id uuid.UUID, role string) (*model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	BulkDeleteUsers(ctx context.Context, ids []uuid.UUID) (int64, error)
	AddRecipient(ctx context.Context, input dto.CreateRecipientInput) (*model.NotificationRecipient, error)
	GetRecipients(ctx context.Context) ([]*model.NotificationRecipient, error)
	DeleteRecipient(ctx context.Context, id uuid.UUID) error
}

type adminService struct {
	users      repository.UserRepository
	recipients repository.RecipientRepository
}

func NewAdminService(users repository.UserRepository, recipients repository.RecipientRepository) AdminService {
	return &adminService{
		users:      users,
		recipients: recipients,
	}
}

func (s *adminService) GetAllUsers(ctx context.Context) ([]*model.User, error) {
	return s.users.FindAll(ctx)
}

func (s *adminService) UpdateUserRole(ctx context.Context, id uuid.UUID, role string) (*model.User, error) {
	if !model.IsValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", apperror.ErrBadRequest, role)
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	// A main_admin account cannot be demoted through the API.
	if user.Role == model.RoleMainAdmin && role != model.RoleMainAdmin {
		return nil, fmt.Errorf("%w: main admin role cannot be changed", apperror.ErrForbidden)
	}

	if err := s.users.UpdateRole(ctx, id, role); err != nil {
		return nil, err
	}

	user.Role = role
	return user, nil
}

func (s *adminService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user not found", apperror.ErrNotFound)
		}
		return err
	}

	if user.Role == model.RoleMainAdmin {
		return fmt.Errorf("%w: main admin account cannot be deleted", apperror.ErrForbidden)
	}

	return s.users.Delete(ctx, id)
}

func (s *adminService) BulkDeleteUsers(ctx context.Context, ids []uuid.UUID) (int64, error) {
	// Reject the whole batch if any target is a main_admin, before any
	// row is touched.
	for _, id := range ids {
		user, err := s.users.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return 0, err
		}
		if user.Role == model.RoleMainAdmin {
			return 0, fmt.Errorf("%w: main admin account cannot be deleted", apperror.ErrForbidden)
		}
	}

	return s.users.DeleteMany(ctx, ids)
}

func (s *adminService) AddRecipient(ctx context.Context, input dto.CreateRecipientInput) (*model.NotificationRecipient, error) {
	email := normalizeEmail(input.Email)

	if existing, _ := s.recipients.FindByEmail(ctx, email); existing != nil {
		return nil, fmt.Errorf("%w: recipient already exists", apperror.ErrConflict)
	}

	recipient := &model.NotificationRecipient{
		Email: email,
		Label: normalizeOptional(input.Label),
	}

	if err := s.recipients.Create(ctx, recipient); err != nil {
		return nil, err
	}

	return recipient, nil
}

func (s *adminService) GetRecipients(ctx context.Context) ([]*model.NotificationRecipient, error) {
	return s.recipients.FindAll(ctx)
}

func (s *adminService) DeleteRecipient(ctx context.Context, id uuid.UUID) error {
	return s.recipients.Delete(ctx, id)
}
