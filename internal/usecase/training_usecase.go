package usecase

import (
	"context"
	"errors"

	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"
)

type trainingUsecase struct {
	trainingRepo domain.TrainingRepository
}

// NewTrainingUsecase creates a new training course usecase
func NewTrainingUsecase(trainingRepo domain.TrainingRepository) domain.TrainingUsecase {
	return &trainingUsecase{trainingRepo: trainingRepo}
}

func (uc *trainingUsecase) Add(ctx context.Context, t *domain.TrainingCourse) error {
	if err := validateTraining(t); err != nil {
		return err
	}
	if err := uc.trainingRepo.Create(ctx, t); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *trainingUsecase) List(ctx context.Context, userID int64) ([]domain.TrainingCourse, error) {
	items, err := uc.trainingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

func (uc *trainingUsecase) Update(ctx context.Context, userID, id int64, patch *domain.TrainingCoursePatch) (*domain.TrainingCourse, error) {
	t, err := uc.trainingRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Training course not found")
		}
		return nil, apperror.Internal(err)
	}

	patch.Apply(t)
	if err := validateTraining(t); err != nil {
		return nil, err
	}
	if err := uc.trainingRepo.Update(ctx, t); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Training course not found")
		}
		return nil, apperror.Internal(err)
	}
	return t, nil
}

func (uc *trainingUsecase) Remove(ctx context.Context, userID, id int64) error {
	if err := uc.trainingRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Training course not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func validateTraining(t *domain.TrainingCourse) error {
	if t.DurationHours != nil && *t.DurationHours <= 0 {
		return apperror.BadRequest("Duration must be positive")
	}
	if t.Year != nil && (*t.Year < 1950 || *t.Year > 2100) {
		return apperror.BadRequest("Year is out of range")
	}
	return nil
}
