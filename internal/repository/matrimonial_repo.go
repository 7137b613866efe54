package repository

import (
	"context"

	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MatrimonialRepository interface {
	// Upsert inserts the profile or, when a row for the same user already
	// exists, overwrites its fields in a single statement.
	Upsert(ctx context.Context, profile *model.MatrimonialProfile) error
	FindByUser(ctx context.Context, userID uuid.UUID) (*model.MatrimonialProfile, error)
	FindAll(ctx context.Context) ([]*model.MatrimonialProfile, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.MatrimonialProfile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type matrimonialRepository struct {
	db *gorm.DB
}

func NewMatrimonialRepository(db *gorm.DB) MatrimonialRepository {
	return &matrimonialRepository{db: db}
}

func (r *matrimonialRepository) Upsert(ctx context.Context, profile *model.MatrimonialProfile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "email", "phone", "gender", "date_of_birth", "height",
			"marital_status", "country_of_residence", "city", "community",
			"region", "education", "profession", "income", "father_name",
			"mother_name", "siblings", "partner_preferences", "photo_url",
			"updated_at",
		}),
	}).Create(profile).Error
}

func (r *matrimonialRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*model.MatrimonialProfile, error) {
	var profile model.MatrimonialProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *matrimonialRepository) FindAll(ctx context.Context) ([]*model.MatrimonialProfile, error) {
	var profiles []*model.MatrimonialProfile
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *matrimonialRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.MatrimonialProfile, error) {
	var profile model.MatrimonialProfile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *matrimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MatrimonialProfile{}, "id = ?", id).Error
}
