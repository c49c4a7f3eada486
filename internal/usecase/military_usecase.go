package usecase

import (
	"context"
	"errors"

	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"
)

type militaryUsecase struct {
	militaryRepo domain.MilitaryRepository
}

// NewMilitaryUsecase creates a new military service usecase
func NewMilitaryUsecase(militaryRepo domain.MilitaryRepository) domain.MilitaryUsecase {
	return &militaryUsecase{militaryRepo: militaryRepo}
}

func (uc *militaryUsecase) CreateRecord(ctx context.Context, m *domain.MilitaryService) error {
	if err := validateMilitary(m); err != nil {
		return err
	}
	if err := uc.militaryRepo.Create(ctx, m); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return apperror.Conflict("Military service record already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (uc *militaryUsecase) GetRecord(ctx context.Context, userID int64) (*domain.MilitaryService, error) {
	m, err := uc.militaryRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Military service record not found")
		}
		return nil, apperror.Internal(err)
	}
	return m, nil
}

func (uc *militaryUsecase) UpdateRecord(ctx context.Context, userID int64, patch *domain.MilitaryServicePatch) (*domain.MilitaryService, error) {
	m, err := uc.militaryRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Military service record not found")
		}
		return nil, apperror.Internal(err)
	}

	patch.Apply(m)
	if err := validateMilitary(m); err != nil {
		return nil, err
	}
	if err := uc.militaryRepo.Update(ctx, m); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Military service record not found")
		}
		return nil, apperror.Internal(err)
	}
	return m, nil
}

func (uc *militaryUsecase) DeleteRecord(ctx context.Context, userID int64) error {
	if err := uc.militaryRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Military service record not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func validateMilitary(m *domain.MilitaryService) error {
	switch m.Status {
	case domain.MilitaryCompleted, domain.MilitaryExempt, domain.MilitaryOngoing, domain.MilitaryNotServed:
	default:
		return apperror.BadRequest("Invalid military service status: " + m.Status)
	}
	if m.EndDate != nil && m.StartDate != nil && m.EndDate.Before(*m.StartDate) {
		return apperror.BadRequest("End date cannot be before start date")
	}
	return nil
}
