package usecase

import (
	"context"
	"errors"
	"fmt"

	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"
)

type skillUsecase struct {
	skillRepo domain.SkillRepository
}

// NewSkillUsecase creates a new skill usecase
func NewSkillUsecase(skillRepo domain.SkillRepository) domain.SkillUsecase {
	return &skillUsecase{skillRepo: skillRepo}
}

func (uc *skillUsecase) Add(ctx context.Context, s *domain.Skill) error {
	if err := validateSkill(s); err != nil {
		return err
	}
	if err := uc.skillRepo.Create(ctx, s); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *skillUsecase) List(ctx context.Context, userID int64) ([]domain.Skill, error) {
	items, err := uc.skillRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

func (uc *skillUsecase) Update(ctx context.Context, userID, id int64, patch *domain.SkillPatch) (*domain.Skill, error) {
	s, err := uc.skillRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Skill not found")
		}
		return nil, apperror.Internal(err)
	}

	patch.Apply(s)
	if err := validateSkill(s); err != nil {
		return nil, err
	}
	if err := uc.skillRepo.Update(ctx, s); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Skill not found")
		}
		return nil, apperror.Internal(err)
	}
	return s, nil
}

func (uc *skillUsecase) Remove(ctx context.Context, userID, id int64) error {
	if err := uc.skillRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Skill not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func validateSkill(s *domain.Skill) error {
	switch s.Level {
	case domain.SkillBeginner, domain.SkillIntermediate, domain.SkillAdvanced, domain.SkillExpert:
	default:
		return apperror.BadRequest("Invalid skill level: " + s.Level)
	}
	if s.YearsExperience != nil && (*s.YearsExperience < 0 || *s.YearsExperience > 50) {
		return apperror.BadRequest(fmt.Sprintf("Years of experience must be between 0 and 50, got %d", *s.YearsExperience))
	}
	return nil
}
