package usecase

import (
	"context"
	"errors"

	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"
)

type applicationDetailsUsecase struct {
	detailsRepo domain.ApplicationDetailsRepository
}

// NewApplicationDetailsUsecase creates a new application details usecase
func NewApplicationDetailsUsecase(detailsRepo domain.ApplicationDetailsRepository) domain.ApplicationDetailsUsecase {
	return &applicationDetailsUsecase{detailsRepo: detailsRepo}
}

func (uc *applicationDetailsUsecase) CreateRecord(ctx context.Context, d *domain.ApplicationDetails) error {
	if d.SalaryCurrency == "" {
		d.SalaryCurrency = "toman"
	}
	if d.SalaryPeriod == "" {
		d.SalaryPeriod = "monthly"
	}
	if err := validateApplicationDetails(d); err != nil {
		return err
	}
	if err := uc.detailsRepo.Create(ctx, d); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return apperror.Conflict("Application details already exist")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (uc *applicationDetailsUsecase) GetRecord(ctx context.Context, userID int64) (*domain.ApplicationDetails, error) {
	d, err := uc.detailsRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application details not found")
		}
		return nil, apperror.Internal(err)
	}
	return d, nil
}

func (uc *applicationDetailsUsecase) UpdateRecord(ctx context.Context, userID int64, patch *domain.ApplicationDetailsPatch) (*domain.ApplicationDetails, error) {
	d, err := uc.detailsRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application details not found")
		}
		return nil, apperror.Internal(err)
	}

	patch.Apply(d)
	if err := validateApplicationDetails(d); err != nil {
		return nil, err
	}
	if err := uc.detailsRepo.Update(ctx, d); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application details not found")
		}
		return nil, apperror.Internal(err)
	}
	return d, nil
}

func (uc *applicationDetailsUsecase) DeleteRecord(ctx context.Context, userID int64) error {
	if err := uc.detailsRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application details not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

// validateApplicationDetails checks the enum fields and the conditional
// disclosures: every "has X" flag set to true requires its description,
// and the referral connection type requires the referrer's identity.
func validateApplicationDetails(d *domain.ApplicationDetails) error {
	switch d.ConnectionType {
	case domain.ConnectionInternet, domain.ConnectionAds, domain.ConnectionPersonal,
		domain.ConnectionJobAgency, domain.ConnectionReferral:
	default:
		return apperror.BadRequest("Invalid connection type: " + d.ConnectionType)
	}
	switch d.PreferredWorkSchedule {
	case domain.ScheduleFullTime, domain.SchedulePartTime, domain.ScheduleDayShift,
		domain.ScheduleShiftBased, domain.ScheduleFlexible:
	default:
		return apperror.BadRequest("Invalid work schedule: " + d.PreferredWorkSchedule)
	}
	if d.ExpectedSalary <= 0 {
		return apperror.BadRequest("Expected salary must be greater than zero")
	}
	if d.ConnectionType == domain.ConnectionReferral {
		if d.ReferrerName == nil || d.ReferrerRelationship == nil || d.ReferrerPhone == nil {
			return apperror.BadRequest("Referrer name, relationship and phone are required for the referral connection type")
		}
	}
	if d.HasRelativesInCompany {
		if d.RelativeName == nil || d.RelativePosition == nil || d.RelativeRelationship == nil {
			return apperror.BadRequest("Relative name, position and relationship are required when relatives work in the company")
		}
	}
	if d.HasHealthIssue && emptyText(d.HealthIssueDescription) {
		return apperror.BadRequest("Health issue description is required")
	}
	if d.HasDisability && emptyText(d.DisabilityDescription) {
		return apperror.BadRequest("Disability description is required")
	}
	if d.TakesMedication && emptyText(d.MedicationDetails) {
		return apperror.BadRequest("Medication details are required")
	}
	if d.HasCriminalRecord && emptyText(d.CriminalRecordDetails) {
		return apperror.BadRequest("Criminal record details are required")
	}
	return nil
}

func emptyText(s *string) bool {
	return s == nil || *s == ""
}
