package repository

import (
	"context"

	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogRepository interface {
	Create(ctx context.Context, post *model.BlogPost) error
	Save(ctx context.Context, post *model.BlogPost) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	FindPublished(ctx context.Context, categoryID *uuid.UUID) ([]*model.BlogPost, error)
	FindAll(ctx context.Context) ([]*model.BlogPost, error)
	// IncrementViews bumps the view counter in a single UPDATE so concurrent
	// reads cannot lose updates. Returns gorm.ErrRecordNotFound for an
	// unknown slug.
	IncrementViews(ctx context.Context, slug string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, post *model.BlogPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *blogRepository) Save(ctx context.Context, post *model.BlogPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.BlogPost, error) {
	var post model.BlogPost
	if err := r.db.WithContext(ctx).
		Preload("Category").
		First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) FindBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	var post model.BlogPost
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Author").
		Where("slug = ?", slug).
		First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) FindPublished(ctx context.Context, categoryID *uuid.UUID) ([]*model.BlogPost, error) {
	var posts []*model.BlogPost
	query := r.db.WithContext(ctx).
		Preload("Category").
		Where("status = ?", model.PostStatusPublished)

	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	if err := query.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogRepository) FindAll(ctx context.Context) ([]*model.BlogPost, error) {
	var posts []*model.BlogPost
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogRepository) IncrementViews(ctx context.Context, slug string) error {
	result := r.db.WithContext(ctx).Model(&model.BlogPost{}).
		Where("slug = ?", slug).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BlogPost{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
