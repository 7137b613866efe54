package service

import (
	"context"
	"strings"
	"testing"

	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/dto"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/model"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/repository"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestBlogService(t *testing.T, db *gorm.DB) (BlogService, CategoryService) {
	t.Helper()
	blogRepo := repository.NewBlogRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	return NewBlogService(blogRepo, categoryRepo, commentRepo, nil), NewCategoryService(categoryRepo)
}

func TestCreatePostDerivesSlug(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestBlogService(t, db)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, dto.CreatePostInput{
		Title:   "Guru Ravidass Ji",
		Content: "<p>Biography</p>",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "guru-ravidass-ji", post.Slug)
	assert.Equal(t, model.PostStatusPublished, post.Status)
}

func TestCreatePostSlugCollision(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestBlogService(t, db)
	ctx := context.Background()

	first, err := svc.CreatePost(ctx, dto.CreatePostInput{
		Title:   "Community News",
		Content: "first",
	}, nil)
	require.NoError(t, err)

	second, err := svc.CreatePost(ctx, dto.CreatePostInput{
		Title:   "Community News",
		Content: "second",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "community-news", first.Slug)
	assert.NotEqual(t, first.Slug, second.Slug)
	assert.True(t, strings.HasPrefix(second.Slug, "community-news-"))
}

func TestGetBySlugCountsViews(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestBlogService(t, db)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, dto.CreatePostInput{
		Title:   "Viewed Post",
		Content: "body",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), created.Views)

	first, err := svc.GetBySlug(ctx, created.Slug)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Views)

	second, err := svc.GetBySlug(ctx, created.Slug)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Views)

	_, err = svc.GetBySlug(ctx, "no-such-post")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetPublishedFiltersDrafts(t *testing.T) {
	db := setupTestDB(t)
	svc, categories := newTestBlogService(t, db)
	ctx := context.Background()

	category, err := categories.Create(ctx, dto.CreateCategoryInput{Name: "History"})
	require.NoError(t, err)

	_, err = svc.CreatePost(ctx, dto.CreatePostInput{
		Title:      "Published in category",
		Content:    "body",
		CategoryID: &category.ID,
	}, nil)
	require.NoError(t, err)

	_, err = svc.CreatePost(ctx, dto.CreatePostInput{
		Title:   "Draft post",
		Content: "body",
		Status:  model.PostStatusDraft,
	}, nil)
	require.NoError(t, err)

	all, err := svc.GetPublished(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Published in category", all[0].Title)

	// Filter by category slug and by id
	bySlug, err := svc.GetPublished(ctx, "history")
	require.NoError(t, err)
	assert.Len(t, bySlug, 1)

	byID, err := svc.GetPublished(ctx, category.ID.String())
	require.NoError(t, err)
	assert.Len(t, byID, 1)

	// Unknown category yields an empty list, not an error
	none, err := svc.GetPublished(ctx, "no-such-category")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdatePost(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestBlogService(t, db)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, dto.CreatePostInput{
		Title:   "Original",
		Content: "body",
	}, nil)
	require.NoError(t, err)

	updated, err := svc.UpdatePost(ctx, created.ID, dto.UpdatePostInput{
		Title:   "Updated",
		Content: "new body",
		Status:  model.PostStatusDraft,
	})
	require.NoError(t, err)

	assert.Equal(t, "Updated", updated.Title)
	assert.Equal(t, model.PostStatusDraft, updated.Status)
	// The slug is stable across edits, links keep working
	assert.Equal(t, created.Slug, updated.Slug)

	_, err = svc.UpdatePost(ctx, uuid.New(), dto.UpdatePostInput{Title: "x", Content: "y"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeletePost(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestBlogService(t, db)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, dto.CreatePostInput{
		Title:   "To delete",
		Content: "body",
	}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(ctx, created.ID))

	err = svc.DeletePost(ctx, created.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestComments(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTestBlogService(t, db)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, dto.CreatePostInput{
		Title:   "Commented post",
		Content: "body",
	}, nil)
	require.NoError(t, err)

	other, err := svc.CreatePost(ctx, dto.CreatePostInput{
		Title:   "Other post",
		Content: "body",
	}, nil)
	require.NoError(t, err)

	name := "Guest"
	root, err := svc.AddComment(ctx, post.Slug, dto.CreateCommentInput{
		Content:    "Great article",
		AuthorName: &name,
	}, nil)
	require.NoError(t, err)

	reply, err := svc.AddComment(ctx, post.Slug, dto.CreateCommentInput{
		Content:  "Agreed",
		ParentID: &root.ID,
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, root.ID, *reply.ParentID)

	// A reply must target a comment on the same post
	_, err = svc.AddComment(ctx, other.Slug, dto.CreateCommentInput{
		Content:  "Cross-post reply",
		ParentID: &root.ID,
	}, nil)
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	comments, err := svc.GetComments(ctx, post.Slug)
	require.NoError(t, err)
	assert.Len(t, comments, 2)

	_, err = svc.GetComments(ctx, "no-such-post")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
