package repository

import (
	"context"

	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(ctx context.Context, submission *model.ConnectSubmission) error
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*model.ConnectSubmission, error)
	FindAll(ctx context.Context) ([]*model.ConnectSubmission, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.ConnectSubmission, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, submission *model.ConnectSubmission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *submissionRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*model.ConnectSubmission, error) {
	var submission model.ConnectSubmission
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindAll(ctx context.Context) ([]*model.ConnectSubmission, error) {
	var submissions []*model.ConnectSubmission
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *submissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ConnectSubmission, error) {
	var submission model.ConnectSubmission
	if err := r.db.WithContext(ctx).First(&submission, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ConnectSubmission{}, "id = ?", id).Error
}
