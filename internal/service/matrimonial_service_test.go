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
)

func biodataInput() dto.MatrimonialInput {
	return dto.MatrimonialInput{
		Name:               "Simran",
		Email:              "simran@example.com",
		CountryOfResidence: "United Kingdom",
	}
}

func TestMatrimonialUpsertCreatesOneRowPerUser(t *testing.T) {
	db := setupTestDB(t)
	notifier := newFakeNotifier()
	storage := &fakeImageStorage{}
	svc := NewMatrimonialService(repository.NewMatrimonialRepository(db), storage, notifier)
	ctx := context.Background()

	userID := uuid.New()

	first, err := svc.Upsert(ctx, userID, biodataInput(), nil)
	require.NoError(t, err)
	notifier.waitForNotification(t)

	// Second submission overwrites, no new row and no new notification
	updated := biodataInput()
	updated.Name = "Simran Kaur"
	second, err := svc.Upsert(ctx, userID, updated, nil)
	require.NoError(t, err)
	notifier.assertNoNotification(t)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Simran Kaur", second.Name)

	var count int64
	require.NoError(t, db.Model(&model.MatrimonialProfile{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMatrimonialUpsertMapsLegacyFields(t *testing.T) {
	db := setupTestDB(t)
	notifier := newFakeNotifier()
	svc := NewMatrimonialService(repository.NewMatrimonialRepository(db), &fakeImageStorage{}, notifier)
	ctx := context.Background()

	caste := "Ravidassia"
	state := "Punjab"
	input := biodataInput()
	input.Caste = &caste
	input.State = &state

	profile, err := svc.Upsert(ctx, uuid.New(), input, nil)
	require.NoError(t, err)
	notifier.waitForNotification(t)

	require.NotNil(t, profile.Community)
	assert.Equal(t, "Ravidassia", *profile.Community)
	require.NotNil(t, profile.Region)
	assert.Equal(t, "Punjab", *profile.Region)
}

func TestMatrimonialPhotoReplacement(t *testing.T) {
	db := setupTestDB(t)
	notifier := newFakeNotifier()
	storage := &fakeImageStorage{}
	svc := NewMatrimonialService(repository.NewMatrimonialRepository(db), storage, notifier)
	ctx := context.Background()

	userID := uuid.New()

	first, err := svc.Upsert(ctx, userID, biodataInput(), &dto.PhotoFile{
		Reader:   strings.NewReader("first image"),
		FileName: "first.jpg",
	})
	require.NoError(t, err)
	notifier.waitForNotification(t)
	require.NotNil(t, first.PhotoURL)
	firstURL := *first.PhotoURL

	second, err := svc.Upsert(ctx, userID, biodataInput(), &dto.PhotoFile{
		Reader:   strings.NewReader("second image"),
		FileName: "second.jpg",
	})
	require.NoError(t, err)
	require.NotNil(t, second.PhotoURL)
	assert.NotEqual(t, firstURL, *second.PhotoURL)

	// The replaced asset is cleaned up
	assert.Contains(t, storage.deletedURLs(), firstURL)
}

func TestMatrimonialUpsertKeepsPhotoWhenNoneUploaded(t *testing.T) {
	db := setupTestDB(t)
	notifier := newFakeNotifier()
	storage := &fakeImageStorage{}
	svc := NewMatrimonialService(repository.NewMatrimonialRepository(db), storage, notifier)
	ctx := context.Background()

	userID := uuid.New()

	first, err := svc.Upsert(ctx, userID, biodataInput(), &dto.PhotoFile{
		Reader:   strings.NewReader("image"),
		FileName: "photo.jpg",
	})
	require.NoError(t, err)
	notifier.waitForNotification(t)
	require.NotNil(t, first.PhotoURL)

	second, err := svc.Upsert(ctx, userID, biodataInput(), nil)
	require.NoError(t, err)
	require.NotNil(t, second.PhotoURL)
	assert.Equal(t, *first.PhotoURL, *second.PhotoURL)
	assert.Empty(t, storage.deletedURLs())
}

func TestMatrimonialGetMine(t *testing.T) {
	db := setupTestDB(t)
	notifier := newFakeNotifier()
	svc := NewMatrimonialService(repository.NewMatrimonialRepository(db), &fakeImageStorage{}, notifier)
	ctx := context.Background()

	userID := uuid.New()

	got, err := svc.GetMine(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = svc.Upsert(ctx, userID, biodataInput(), nil)
	require.NoError(t, err)
	notifier.waitForNotification(t)

	got, err = svc.GetMine(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, userID, got.UserID)
}

func TestMatrimonialDelete(t *testing.T) {
	db := setupTestDB(t)
	notifier := newFakeNotifier()
	storage := &fakeImageStorage{}
	svc := NewMatrimonialService(repository.NewMatrimonialRepository(db), storage, notifier)
	ctx := context.Background()

	userID := uuid.New()
	profile, err := svc.Upsert(ctx, userID, biodataInput(), &dto.PhotoFile{
		Reader:   strings.NewReader("image"),
		FileName: "photo.jpg",
	})
	require.NoError(t, err)
	notifier.waitForNotification(t)

	require.NoError(t, svc.Delete(ctx, profile.ID))

	// Photo asset is removed with the profile
	require.NotNil(t, profile.PhotoURL)
	assert.Contains(t, storage.deletedURLs(), *profile.PhotoURL)

	_, err = svc.GetMine(ctx, userID)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.MatrimonialProfile{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	err = svc.Delete(ctx, profile.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
