package dto

import "github.com/google/uuid"

type CreatePostInput struct {
	Title      string     `json:"title" binding:"required,max=200"`
	Slug       string     `json:"slug"`
	Content    string     `json:"content" binding:"required"`
	CategoryID *uuid.UUID `json:"category_id"`
	Tags       []string   `json:"tags"`
	Status     string     `json:"status" binding:"omitempty,oneof=published draft"`
}

type UpdatePostInput struct {
	Title      string     `json:"title" binding:"required,max=200"`
	Content    string     `json:"content" binding:"required"`
	CategoryID *uuid.UUID `json:"category_id"`
	Tags       []string   `json:"tags"`
	Status     string     `json:"status" binding:"omitempty,oneof=published draft"`
}

type CreateCommentInput struct {
	Content    string     `json:"content" binding:"required"`
	ParentID   *uuid.UUID `json:"parent_id"`
	AuthorName *string    `json:"author_name"`
}

type CreateCategoryInput struct {
	Name        string     `json:"name" binding:"required,max=100"`
	Description string     `json:"description"`
	ParentID    *uuid.UUID `json:"parent_id"`
}

type UpdateCategoryInput struct {
	Name        string     `json:"name" binding:"required,max=100"`
	Description string     `json:"description"`
	ParentID    *uuid.UUID `json:"parent_id"`
}
