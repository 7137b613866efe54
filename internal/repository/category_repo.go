package repository

import (
	"context"

	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *model.BlogCategory) error
	Save(ctx context.Context, category *model.BlogCategory) error
	FindBySlug(ctx context.Context, slug string) (*model.BlogCategory, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.BlogCategory, error)
	FindAll(ctx context.Context) ([]*model.BlogCategory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *model.BlogCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) Save(ctx context.Context, category *model.BlogCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*model.BlogCategory, error) {
	var category model.BlogCategory
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.BlogCategory, error) {
	var category model.BlogCategory
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]*model.BlogCategory, error) {
	var categories []*model.BlogCategory
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.BlogCategory{}, "id = ?", id).Error
}
