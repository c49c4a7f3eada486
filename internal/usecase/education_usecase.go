package usecase

import (
	"context"
	"errors"
	"fmt"

	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"
)

type educationUsecase struct {
	educationRepo domain.EducationRepository
}

// NewEducationUsecase creates a new education usecase
func NewEducationUsecase(educationRepo domain.EducationRepository) domain.EducationUsecase {
	return &educationUsecase{educationRepo: educationRepo}
}

func (uc *educationUsecase) Add(ctx context.Context, e *domain.Education) error {
	if err := validateEducation(e); err != nil {
		return err
	}
	if err := uc.educationRepo.Create(ctx, e); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *educationUsecase) List(ctx context.Context, userID int64) ([]domain.Education, error) {
	items, err := uc.educationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

func (uc *educationUsecase) Update(ctx context.Context, userID, id int64, patch *domain.EducationPatch) (*domain.Education, error) {
	e, err := uc.educationRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Education record not found")
		}
		return nil, apperror.Internal(err)
	}

	patch.Apply(e)
	if err := validateEducation(e); err != nil {
		return nil, err
	}
	if err := uc.educationRepo.Update(ctx, e); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Education record not found")
		}
		return nil, apperror.Internal(err)
	}
	return e, nil
}

func (uc *educationUsecase) Remove(ctx context.Context, userID, id int64) error {
	if err := uc.educationRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Education record not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func validateEducation(e *domain.Education) error {
	switch e.Degree {
	case domain.DegreeDiploma, domain.DegreeAssociate, domain.DegreeBachelor,
		domain.DegreeMaster, domain.DegreeDoctorate:
	default:
		return apperror.BadRequest("Invalid degree: " + e.Degree)
	}
	switch e.StudyStatus {
	case domain.StudyStatusStudying, domain.StudyStatusGraduated, domain.StudyStatusDropped:
	default:
		return apperror.BadRequest("Invalid study status: " + e.StudyStatus)
	}
	if e.EndYear != nil && *e.EndYear < e.StartYear {
		return apperror.BadRequest("End year cannot be before start year")
	}
	if e.Average != nil && (*e.Average < 0 || *e.Average > 20) {
		return apperror.BadRequest(fmt.Sprintf("Average must be between 0 and 20, got %.2f", *e.Average))
	}
	return nil
}
