package dto

import "github.com/google/uuid"

type UpdateRoleInput struct {
	Role string `json:"role" binding:"required,oneof=user admin moderate_admin main_admin"`
}

type BulkDeleteInput struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}

type CreateRecipientInput struct {
	Email string  `json:"email" binding:"required,email"`
	Label *string `json:"label"`
}
