package usecase

import (
	"context"
	"errors"

	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"
)

type experienceUsecase struct {
	experienceRepo domain.WorkExperienceRepository
}

// NewExperienceUsecase creates a new work experience usecase
func NewExperienceUsecase(experienceRepo domain.WorkExperienceRepository) domain.WorkExperienceUsecase {
	return &experienceUsecase{experienceRepo: experienceRepo}
}

func (uc *experienceUsecase) Add(ctx context.Context, w *domain.WorkExperience) error {
	if err := validateExperience(w); err != nil {
		return err
	}
	if err := uc.experienceRepo.Create(ctx, w); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *experienceUsecase) List(ctx context.Context, userID int64) ([]domain.WorkExperience, error) {
	items, err := uc.experienceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

func (uc *experienceUsecase) Update(ctx context.Context, userID, id int64, patch *domain.WorkExperiencePatch) (*domain.WorkExperience, error) {
	w, err := uc.experienceRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Work experience not found")
		}
		return nil, apperror.Internal(err)
	}

	patch.Apply(w)
	if err := validateExperience(w); err != nil {
		return nil, err
	}
	if err := uc.experienceRepo.Update(ctx, w); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Work experience not found")
		}
		return nil, apperror.Internal(err)
	}
	return w, nil
}

func (uc *experienceUsecase) Remove(ctx context.Context, userID, id int64) error {
	if err := uc.experienceRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Work experience not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func validateExperience(w *domain.WorkExperience) error {
	if w.CurrentlyWorking && w.EndDate != nil {
		return apperror.BadRequest("A current position cannot have an end date")
	}
	if w.EndDate != nil && w.EndDate.Before(w.StartDate) {
		return apperror.BadRequest("End date cannot be before start date")
	}
	return nil
}
