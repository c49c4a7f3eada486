package usecase

import (
	"context"
	"errors"

	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"
)

type applicantUsecase struct {
	applicantRepo domain.ApplicantRepository
}

// NewApplicantUsecase creates a new applicant profile usecase
func NewApplicantUsecase(applicantRepo domain.ApplicantRepository) domain.ApplicantUsecase {
	return &applicantUsecase{applicantRepo: applicantRepo}
}

// CreateProfile creates the user's personal-data section. One per user.
func (uc *applicantUsecase) CreateProfile(ctx context.Context, a *domain.Applicant) error {
	if err := validateApplicantValues(a.Gender, a.MaritalStatus); err != nil {
		return err
	}
	if err := uc.applicantRepo.Create(ctx, a); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return apperror.Conflict("Applicant profile already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (uc *applicantUsecase) GetProfile(ctx context.Context, userID int64) (*domain.Applicant, error) {
	a, err := uc.applicantRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Applicant profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return a, nil
}

func (uc *applicantUsecase) UpdateProfile(ctx context.Context, userID int64, patch *domain.ApplicantPatch) (*domain.Applicant, error) {
	a, err := uc.applicantRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Applicant profile not found")
		}
		return nil, apperror.Internal(err)
	}

	patch.Apply(a)
	if err := validateApplicantValues(a.Gender, a.MaritalStatus); err != nil {
		return nil, err
	}
	if err := uc.applicantRepo.Update(ctx, a); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Applicant profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return a, nil
}

func (uc *applicantUsecase) DeleteProfile(ctx context.Context, userID int64) error {
	if err := uc.applicantRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Applicant profile not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func validateApplicantValues(gender, maritalStatus string) error {
	switch gender {
	case domain.GenderMale, domain.GenderFemale:
	default:
		return apperror.BadRequest("Invalid gender: " + gender)
	}
	switch maritalStatus {
	case domain.MaritalSingle, domain.MaritalMarried:
	default:
		return apperror.BadRequest("Invalid marital status: " + maritalStatus)
	}
	return nil
}
