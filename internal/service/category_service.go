package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/dto"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/model"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/repository"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryService interface {
	Create(ctx context.Context, input dto.CreateCategoryInput) (*model.BlogCategory, error)
	Update(ctx context.Context, id uuid.UUID, input dto.UpdateCategoryInput) (*model.BlogCategory, error)
	GetAll(ctx context.Context) ([]*model.BlogCategory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, input dto.CreateCategoryInput) (*model.BlogCategory, error) {
	slug := slugify(input.Name)

	if existing, _ := s.repo.FindBySlug(ctx, slug); existing != nil {
		return nil, fmt.Errorf("%w: category already exists", apperror.ErrConflict)
	}

	if input.ParentID != nil {
		if _, err := s.repo.FindByID(ctx, *input.ParentID); err != nil {
			return nil, fmt.Errorf("%w: parent category not found", apperror.ErrBadRequest)
		}
	}

	category := &model.BlogCategory{
		Name:        input.Name,
		Slug:        slug,
		Description: strings.TrimSpace(input.Description),
		ParentID:    input.ParentID,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, input dto.UpdateCategoryInput) (*model.BlogCategory, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	if input.Name != "" && input.Name != category.Name {
		slug := slugify(input.Name)
		if existing, _ := s.repo.FindBySlug(ctx, slug); existing != nil && existing.ID != id {
			return nil, fmt.Errorf("%w: category already exists", apperror.ErrConflict)
		}
		category.Name = input.Name
		category.Slug = slug
	}

	category.Description = strings.TrimSpace(input.Description)

	if input.ParentID != nil {
		if *input.ParentID == id {
			return nil, fmt.Errorf("%w: category cannot be its own parent", apperror.ErrBadRequest)
		}
		if _, err := s.repo.FindByID(ctx, *input.ParentID); err != nil {
			return nil, fmt.Errorf("%w: parent category not found", apperror.ErrBadRequest)
		}
		cyclic, err := s.wouldCreateCycle(ctx, id, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if cyclic {
			return nil, fmt.Errorf("%w: parent assignment would create a cycle", apperror.ErrBadRequest)
		}
	}
	category.ParentID = input.ParentID

	if err := s.repo.Save(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// wouldCreateCycle walks the ancestor chain of the proposed parent. If the
// chain reaches the category being updated, the assignment would close a
// loop.
func (s *categoryService) wouldCreateCycle(ctx context.Context, id, parentID uuid.UUID) (bool, error) {
	current := &parentID
	for current != nil {
		if *current == id {
			return true, nil
		}
		parent, err := s.repo.FindByID(ctx, *current)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, err
		}
		current = parent.ParentID
	}
	return false, nil
}

func (s *categoryService) GetAll(ctx context.Context) ([]*model.BlogCategory, error) {
	return s.repo.FindAll(ctx)
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category not found", apperror.ErrNotFound)
		}
		return err
	}

	return s.repo.Delete(ctx, id)
}
