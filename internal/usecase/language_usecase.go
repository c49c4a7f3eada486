package usecase

import (
	"context"
	"errors"

	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"
)

type languageUsecase struct {
	languageRepo domain.LanguageRepository
}

// NewLanguageUsecase creates a new language skill usecase
func NewLanguageUsecase(languageRepo domain.LanguageRepository) domain.LanguageUsecase {
	return &languageUsecase{languageRepo: languageRepo}
}

func (uc *languageUsecase) Add(ctx context.Context, l *domain.LanguageSkill) error {
	if err := validateLanguageLevels(l); err != nil {
		return err
	}
	if err := uc.languageRepo.Create(ctx, l); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *languageUsecase) List(ctx context.Context, userID int64) ([]domain.LanguageSkill, error) {
	items, err := uc.languageRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

func (uc *languageUsecase) Update(ctx context.Context, userID, id int64, patch *domain.LanguageSkillPatch) (*domain.LanguageSkill, error) {
	l, err := uc.languageRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Language skill not found")
		}
		return nil, apperror.Internal(err)
	}

	patch.Apply(l)
	if err := validateLanguageLevels(l); err != nil {
		return nil, err
	}
	if err := uc.languageRepo.Update(ctx, l); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Language skill not found")
		}
		return nil, apperror.Internal(err)
	}
	return l, nil
}

func (uc *languageUsecase) Remove(ctx context.Context, userID, id int64) error {
	if err := uc.languageRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Language skill not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func validateLanguageLevels(l *domain.LanguageSkill) error {
	for _, level := range []string{l.Reading, l.Writing, l.Speaking} {
		switch level {
		case domain.LevelWeak, domain.LevelMedium, domain.LevelGood, domain.LevelExcellent:
		default:
			return apperror.BadRequest("Invalid proficiency level: " + level)
		}
	}
	return nil
}
