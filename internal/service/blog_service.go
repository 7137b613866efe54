package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/dto"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/model"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/repository"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogService interface {
	CreatePost(ctx context.Context, input dto.CreatePostInput, authorID *uuid.UUID) (*model.BlogPost, error)
	UpdatePost(ctx context.Context, id uuid.UUID, input dto.UpdatePostInput) (*model.BlogPost, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
	GetPublished(ctx context.Context, category string) ([]*model.BlogPost, error)
	GetAll(ctx context.Context) ([]*model.BlogPost, error)
	// GetBySlug bumps the view counter as a side effect of the read.
	GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	Search(ctx context.Context, query string) ([]PostHit, error)
	AddComment(ctx context.Context, slug string, input dto.CreateCommentInput, userID *uuid.UUID) (*model.Comment, error)
	GetComments(ctx context.Context, slug string) ([]*model.Comment, error)
}

type blogService struct {
	posts      repository.BlogRepository
	categories repository.CategoryRepository
	comments   repository.CommentRepository
	search     SearchService
}

func NewBlogService(
	posts repository.BlogRepository,
	categories repository.CategoryRepository,
	comments repository.CommentRepository,
	search SearchService,
) BlogService {
	return &blogService{
		posts:      posts,
		categories: categories,
		comments:   comments,
		search:     search,
	}
}

func (s *blogService) CreatePost(ctx context.Context, input dto.CreatePostInput, authorID *uuid.UUID) (*model.BlogPost, error) {
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = slugify(input.Title)
	}

	// Best-effort uniqueness: a timestamp suffix on collision. Two
	// concurrent creates with the same title can still collide, the
	// unique index rejects the loser.
	if existing, _ := s.posts.FindBySlug(ctx, slug); existing != nil {
		slug = fmt.Sprintf("%s-%d", slug, time.Now().Unix())
	}

	if input.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, fmt.Errorf("%w: category not found", apperror.ErrBadRequest)
		}
	}

	status := input.Status
	if status == "" {
		status = model.PostStatusPublished
	}

	post := &model.BlogPost{
		Title:      input.Title,
		Slug:       slug,
		Content:    input.Content,
		CategoryID: input.CategoryID,
		AuthorID:   authorID,
		Tags:       strings.Join(input.Tags, ","),
		Status:     status,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	s.indexPost(post)
	return post, nil
}

func (s *blogService) UpdatePost(ctx context.Context, id uuid.UUID, input dto.UpdatePostInput) (*model.BlogPost, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	if input.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, fmt.Errorf("%w: category not found", apperror.ErrBadRequest)
		}
	}

	post.Title = input.Title
	post.Content = input.Content
	post.CategoryID = input.CategoryID
	post.Tags = strings.Join(input.Tags, ",")
	if input.Status != "" {
		post.Status = input.Status
	}

	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}

	s.indexPost(post)
	return post, nil
}

func (s *blogService) DeletePost(ctx context.Context, id uuid.UUID) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: post not found", apperror.ErrNotFound)
		}
		return err
	}

	if s.search != nil {
		if err := s.search.DeletePost(id.String()); err != nil {
			log.Printf("failed to remove post %s from search index: %v", id, err)
		}
	}

	return nil
}

func (s *blogService) GetPublished(ctx context.Context, category string) ([]*model.BlogPost, error) {
	var categoryID *uuid.UUID

	if category != "" {
		if id, err := uuid.Parse(category); err == nil {
			categoryID = &id
		} else {
			cat, err := s.categories.FindBySlug(ctx, category)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return []*model.BlogPost{}, nil
				}
				return nil, err
			}
			categoryID = &cat.ID
		}
	}

	return s.posts.FindPublished(ctx, categoryID)
}

func (s *blogService) GetAll(ctx context.Context) ([]*model.BlogPost, error) {
	return s.posts.FindAll(ctx)
}

func (s *blogService) GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	if err := s.posts.IncrementViews(ctx, slug); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	return s.posts.FindBySlug(ctx, slug)
}

func (s *blogService) Search(ctx context.Context, query string) ([]PostHit, error) {
	if s.search == nil {
		return []PostHit{}, nil
	}
	return s.search.Search(ctx, query)
}

func (s *blogService) AddComment(ctx context.Context, slug string, input dto.CreateCommentInput, userID *uuid.UUID) (*model.Comment, error) {
	post, err := s.posts.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	if input.ParentID != nil {
		parent, err := s.comments.FindByID(ctx, *input.ParentID)
		if err != nil {
			return nil, fmt.Errorf("%w: parent comment not found", apperror.ErrBadRequest)
		}
		if parent.PostID != post.ID {
			return nil, fmt.Errorf("%w: parent comment belongs to another post", apperror.ErrBadRequest)
		}
	}

	comment := &model.Comment{
		PostID:     post.ID,
		UserID:     userID,
		ParentID:   input.ParentID,
		AuthorName: normalizeOptional(input.AuthorName),
		Content:    input.Content,
		Approved:   true,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *blogService) GetComments(ctx context.Context, slug string) ([]*model.Comment, error) {
	post, err := s.posts.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	return s.comments.FindApprovedByPost(ctx, post.ID)
}

func (s *blogService) indexPost(post *model.BlogPost) {
	if s.search == nil {
		return
	}
	if err := s.search.IndexPost(post); err != nil {
		log.Printf("failed to index post %s: %v", post.ID, err)
	}
}
