package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/dto"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/model"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/repository"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/apperror"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MatrimonialService interface {
	// Upsert writes the caller's biodata profile: at most one row per
	// user, a second submission overwrites the first.
	Upsert(ctx context.Context, userID uuid.UUID, input dto.MatrimonialInput, photo *dto.PhotoFile) (*model.MatrimonialProfile, error)
	GetMine(ctx context.Context, userID uuid.UUID) (*model.MatrimonialProfile, error)
	GetAll(ctx context.Context) ([]*model.MatrimonialProfile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type matrimonialService struct {
	repo         repository.MatrimonialRepository
	imageStorage storage.ImageStorage
	notifier     Notifier
}

func NewMatrimonialService(repo repository.MatrimonialRepository, imageStorage storage.ImageStorage, notifier Notifier) MatrimonialService {
	return &matrimonialService{
		repo:         repo,
		imageStorage: imageStorage,
		notifier:     notifier,
	}
}

func (s *matrimonialService) Upsert(ctx context.Context, userID uuid.UUID, input dto.MatrimonialInput, photo *dto.PhotoFile) (*model.MatrimonialProfile, error) {
	existing, err := s.repo.FindByUser(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var photoURL *string
	if existing != nil {
		photoURL = existing.PhotoURL
	}

	if photo != nil && photo.Reader != nil && s.imageStorage != nil {
		url, err := s.imageStorage.UploadImage(ctx, photo.Reader, "matrimonial", photo.FileName)
		if err != nil {
			return nil, err
		}
		photoURL = &url
	}

	profile := &model.MatrimonialProfile{
		UserID:             userID,
		Name:               input.Name,
		Email:              normalizeEmail(input.Email),
		Phone:              normalizeOptional(input.Phone),
		Gender:             normalizeOptional(input.Gender),
		DateOfBirth:        normalizeOptional(input.DateOfBirth),
		Height:             normalizeOptional(input.Height),
		MaritalStatus:      normalizeOptional(input.MaritalStatus),
		CountryOfResidence: input.CountryOfResidence,
		City:               normalizeOptional(input.City),
		Community:          firstNonEmpty(input.Community, input.Caste),
		Region:             firstNonEmpty(input.Region, input.State),
		Education:          normalizeOptional(input.Education),
		Profession:         normalizeOptional(input.Profession),
		Income:             normalizeOptional(input.Income),
		FatherName:         normalizeOptional(input.FatherName),
		MotherName:         normalizeOptional(input.MotherName),
		Siblings:           normalizeOptional(input.Siblings),
		PartnerPreferences: normalizeOptional(input.PartnerPreferences),
		PhotoURL:           photoURL,
	}

	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	// Replaced photo: drop the old asset only after the new reference is
	// persisted. Deletion failure is tolerated.
	if photo != nil && existing != nil && existing.PhotoURL != nil &&
		(photoURL == nil || *existing.PhotoURL != *photoURL) {
		if err := s.imageStorage.DeleteImage(ctx, *existing.PhotoURL); err != nil {
			log.Printf("failed to delete replaced matrimonial photo: %v", err)
		}
	}

	saved, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		body := fmt.Sprintf(`<p>A new matrimonial biodata was submitted.</p>
<p><b>Name:</b> %s<br><b>Email:</b> %s<br><b>Country of residence:</b> %s</p>`,
			saved.Name, saved.Email, saved.CountryOfResidence)
		go s.notifier.Notify(context.Background(), "New matrimonial biodata", body)
	}

	return saved, nil
}

func (s *matrimonialService) GetMine(ctx context.Context, userID uuid.UUID) (*model.MatrimonialProfile, error) {
	profile, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

func (s *matrimonialService) GetAll(ctx context.Context) ([]*model.MatrimonialProfile, error) {
	return s.repo.FindAll(ctx)
}

func (s *matrimonialService) Delete(ctx context.Context, id uuid.UUID) error {
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: profile not found", apperror.ErrNotFound)
		}
		return err
	}

	if profile.PhotoURL != nil && s.imageStorage != nil {
		if err := s.imageStorage.DeleteImage(ctx, *profile.PhotoURL); err != nil {
			log.Printf("failed to delete matrimonial photo: %v", err)
		}
	}

	return s.repo.Delete(ctx, id)
}
