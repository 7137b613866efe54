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

type SubmissionService interface {
	// Create accepts anonymous callers; userID is set only when a valid
	// token was presented.
	Create(ctx context.Context, input dto.ConnectSubmissionInput, userID *uuid.UUID) (*model.ConnectSubmission, error)
	// GetMine returns the caller's most recent submission, or nil when
	// none exists (not an error).
	GetMine(ctx context.Context, userID uuid.UUID) (*model.ConnectSubmission, error)
	GetAll(ctx context.Context) ([]*model.ConnectSubmission, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type submissionService struct {
	repo     repository.SubmissionRepository
	notifier Notifier
}

func NewSubmissionService(repo repository.SubmissionRepository, notifier Notifier) SubmissionService {
	return &submissionService{
		repo:     repo,
		notifier: notifier,
	}
}

func (s *submissionService) Create(ctx context.Context, input dto.ConnectSubmissionInput, userID *uuid.UUID) (*model.ConnectSubmission, error) {
	submission := &model.ConnectSubmission{
		UserID:     userID,
		Name:       input.Name,
		Email:      normalizeEmail(input.Email),
		Phone:      normalizeOptional(input.Phone),
		Country:    input.Country,
		City:       normalizeOptional(input.City),
		Profession: normalizeOptional(input.Profession),
		Message:    normalizeOptional(input.Message),
		Status:     model.StatusPending,
	}

	if err := s.repo.Create(ctx, submission); err != nil {
		return nil, err
	}

	body := fmt.Sprintf(`<p>A new SC/ST connect request was submitted.</p>
<p><b>Name:</b> %s<br><b>Email:</b> %s<br><b>Country:</b> %s</p>`,
		submission.Name, submission.Email, submission.Country)
	go s.notifier.Notify(context.Background(), "New SC/ST connect request", body)

	return submission, nil
}

func (s *submissionService) GetMine(ctx context.Context, userID uuid.UUID) (*model.ConnectSubmission, error) {
	submission, err := s.repo.FindLatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return submission, nil
}

func (s *submissionService) GetAll(ctx context.Context) ([]*model.ConnectSubmission, error) {
	return s.repo.FindAll(ctx)
}

func (s *submissionService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: submission not found", apperror.ErrNotFound)
		}
		return err
	}

	return s.repo.Delete(ctx, id)
}
