package usecase

import (
	"context"
	"errors"

	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"
)

type familyUsecase struct {
	familyRepo domain.FamilyRepository
}

// NewFamilyUsecase creates a new family member usecase
func NewFamilyUsecase(familyRepo domain.FamilyRepository) domain.FamilyUsecase {
	return &familyUsecase{familyRepo: familyRepo}
}

func (uc *familyUsecase) Add(ctx context.Context, f *domain.FamilyMember) error {
	if err := validateRelation(f.Relation); err != nil {
		return err
	}
	if err := uc.familyRepo.Create(ctx, f); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *familyUsecase) List(ctx context.Context, userID int64) ([]domain.FamilyMember, error) {
	items, err := uc.familyRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

func (uc *familyUsecase) Update(ctx context.Context, userID, id int64, patch *domain.FamilyMemberPatch) (*domain.FamilyMember, error) {
	f, err := uc.familyRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Family member not found")
		}
		return nil, apperror.Internal(err)
	}

	patch.Apply(f)
	if err := validateRelation(f.Relation); err != nil {
		return nil, err
	}
	if err := uc.familyRepo.Update(ctx, f); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Family member not found")
		}
		return nil, apperror.Internal(err)
	}
	return f, nil
}

func (uc *familyUsecase) Remove(ctx context.Context, userID, id int64) error {
	if err := uc.familyRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Family member not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func validateRelation(relation string) error {
	switch relation {
	case domain.RelationFather, domain.RelationMother, domain.RelationSpouse,
		domain.RelationChild, domain.RelationSibling:
		return nil
	}
	return apperror.BadRequest("Invalid relation: " + relation)
}
