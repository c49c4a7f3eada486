package usecase

import (
	"context"
	"errors"

	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"
)

type contactUsecase struct {
	contactRepo domain.ContactRepository
}

// NewContactUsecase creates a new contact info usecase
func NewContactUsecase(contactRepo domain.ContactRepository) domain.ContactUsecase {
	return &contactUsecase{contactRepo: contactRepo}
}

func (uc *contactUsecase) CreateInfo(ctx context.Context, c *domain.ContactInfo) error {
	if err := uc.contactRepo.CreateInfo(ctx, c); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return apperror.Conflict("Contact info already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (uc *contactUsecase) GetInfo(ctx context.Context, userID int64) (*domain.ContactInfo, error) {
	c, err := uc.contactRepo.GetInfoByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Contact info not found")
		}
		return nil, apperror.Internal(err)
	}
	return c, nil
}

func (uc *contactUsecase) UpdateInfo(ctx context.Context, userID int64, patch *domain.ContactInfoPatch) (*domain.ContactInfo, error) {
	c, err := uc.contactRepo.GetInfoByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Contact info not found")
		}
		return nil, apperror.Internal(err)
	}

	patch.Apply(c)
	if err := uc.contactRepo.UpdateInfo(ctx, c); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Contact info not found")
		}
		return nil, apperror.Internal(err)
	}
	return c, nil
}

func (uc *contactUsecase) DeleteInfo(ctx context.Context, userID int64) error {
	if err := uc.contactRepo.DeleteInfo(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Contact info not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (uc *contactUsecase) AddAddress(ctx context.Context, a *domain.Address) error {
	if err := validateHousingStatus(a.HousingStatus); err != nil {
		return err
	}
	if err := uc.contactRepo.CreateAddress(ctx, a); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *contactUsecase) ListAddresses(ctx context.Context, userID int64) ([]domain.Address, error) {
	items, err := uc.contactRepo.ListAddresses(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

func (uc *contactUsecase) UpdateAddress(ctx context.Context, userID, id int64, patch *domain.AddressPatch) (*domain.Address, error) {
	a, err := uc.contactRepo.GetAddress(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Address not found")
		}
		return nil, apperror.Internal(err)
	}

	patch.Apply(a)
	if err := validateHousingStatus(a.HousingStatus); err != nil {
		return nil, err
	}
	if err := uc.contactRepo.UpdateAddress(ctx, a); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Address not found")
		}
		return nil, apperror.Internal(err)
	}
	return a, nil
}

func (uc *contactUsecase) RemoveAddress(ctx context.Context, userID, id int64) error {
	if err := uc.contactRepo.DeleteAddress(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Address not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func validateHousingStatus(s string) error {
	switch s {
	case domain.HousingOwned, domain.HousingRented, domain.HousingParental, domain.HousingOther:
		return nil
	}
	return apperror.BadRequest("Invalid housing status: " + s)
}
