package service

import (
	"context"
	"testing"

	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/dto"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/model"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/repository"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSubmission(t *testing.T) {
	db := setupTestDB(t)
	notifier := newFakeNotifier()
	svc := NewSubmissionService(repository.NewSubmissionRepository(db), notifier)
	ctx := context.Background()

	message := "Looking to connect with the community in Canada"
	submission, err := svc.Create(ctx, dto.ConnectSubmissionInput{
		Name:    "Amit",
		Email:   "Amit@Example.com",
		Country: "Canada",
		Message: &message,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, submission.Status)
	assert.Equal(t, "amit@example.com", submission.Email)
	assert.Nil(t, submission.UserID)

	subject := notifier.waitForNotification(t)
	assert.Contains(t, subject, "connect request")
}

func TestCreateSubmissionLinksUser(t *testing.T) {
	db := setupTestDB(t)
	notifier := newFakeNotifier()
	svc := NewSubmissionService(repository.NewSubmissionRepository(db), notifier)
	ctx := context.Background()

	userID := uuid.New()
	submission, err := svc.Create(ctx, dto.ConnectSubmissionInput{
		Name:    "Amit",
		Email:   "amit@example.com",
		Country: "Canada",
	}, &userID)
	require.NoError(t, err)
	require.NotNil(t, submission.UserID)
	assert.Equal(t, userID, *submission.UserID)
}

func TestGetMineSubmission(t *testing.T) {
	db := setupTestDB(t)
	notifier := newFakeNotifier()
	svc := NewSubmissionService(repository.NewSubmissionRepository(db), notifier)
	ctx := context.Background()

	userID := uuid.New()

	// No submission yet, nil without an error
	got, err := svc.GetMine(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, got)

	first, err := svc.Create(ctx, dto.ConnectSubmissionInput{
		Name:    "Amit",
		Email:   "amit@example.com",
		Country: "Canada",
	}, &userID)
	require.NoError(t, err)
	notifier.waitForNotification(t)

	got, err = svc.GetMine(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)
}

func TestDeleteSubmission(t *testing.T) {
	db := setupTestDB(t)
	notifier := newFakeNotifier()
	svc := NewSubmissionService(repository.NewSubmissionRepository(db), notifier)
	ctx := context.Background()

	submission, err := svc.Create(ctx, dto.ConnectSubmissionInput{
		Name:    "Amit",
		Email:   "amit@example.com",
		Country: "Canada",
	}, nil)
	require.NoError(t, err)
	notifier.waitForNotification(t)

	require.NoError(t, svc.Delete(ctx, submission.ID))

	err = svc.Delete(ctx, submission.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
