package repository

import (
	"context"

	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecipientRepository interface {
	Create(ctx context.Context, recipient *model.NotificationRecipient) error
	FindAll(ctx context.Context) ([]*model.NotificationRecipient, error)
	FindByEmail(ctx context.Context, email string) (*model.NotificationRecipient, error)
	Emails(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type recipientRepository struct {
	db *gorm.DB
}

func NewRecipientRepository(db *gorm.DB) RecipientRepository {
	return &recipientRepository{db: db}
}

func (r *recipientRepository) Create(ctx context.Context, recipient *model.NotificationRecipient) error {
	return r.db.WithContext(ctx).Create(recipient).Error
}

func (r *recipientRepository) FindAll(ctx context.Context) ([]*model.NotificationRecipient, error) {
	var recipients []*model.NotificationRecipient
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&recipients).Error; err != nil {
		return nil, err
	}
	return recipients, nil
}

func (r *recipientRepository) FindByEmail(ctx context.Context, email string) (*model.NotificationRecipient, error) {
	var recipient model.NotificationRecipient
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&recipient).Error; err != nil {
		return nil, err
	}
	return &recipient, nil
}

func (r *recipientRepository) Emails(ctx context.Context) ([]string, error) {
	var emails []string
	if err := r.db.WithContext(ctx).
		Model(&model.NotificationRecipient{}).
		Pluck("email", &emails).Error; err != nil {
		return nil, err
	}
	return emails, nil
}

func (r *recipientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.NotificationRecipient{}, "id = ?", id).Error
}
