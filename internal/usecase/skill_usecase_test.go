package usecase_test

import (
	"context"
	"testing"

	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) Create(ctx context.Context, s *domain.Skill) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSkillRepo) GetByID(ctx context.Context, id, userID int64) (*domain.Skill, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Skill, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) Update(ctx context.Context, s *domain.Skill) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSkillRepo) Delete(ctx context.Context, id, userID int64) error {
	return m.Called(ctx, id, userID).Error(0)
}

func sampleSkill() *domain.Skill {
	years := 4
	return &domain.Skill{
		UserID:          7,
		Name:            "PostgreSQL",
		Level:           domain.SkillAdvanced,
		YearsExperience: &years,
	}
}

func TestAddSkill(t *testing.T) {
	ctx := context.Background()

	t.Run("valid record is stored", func(t *testing.T) {
		repo := new(MockSkillRepo)
		s := sampleSkill()
		repo.On("Create", mock.Anything, s).Return(nil)

		uc := usecase.NewSkillUsecase(repo)
		assert.NoError(t, uc.Add(ctx, s))
		repo.AssertExpectations(t)
	})

	t.Run("unknown level is rejected", func(t *testing.T) {
		s := sampleSkill()
		s.Level = "guru"

		uc := usecase.NewSkillUsecase(new(MockSkillRepo))
		err := uc.Add(ctx, s)

		assert.Equal(t, 400, appErrCode(t, err))
		assert.Contains(t, err.Error(), "guru")
	})

	t.Run("years outside 0..50 are rejected", func(t *testing.T) {
		for _, bad := range []int{-1, 51} {
			s := sampleSkill()
			s.YearsExperience = &bad

			uc := usecase.NewSkillUsecase(new(MockSkillRepo))
			err := uc.Add(ctx, s)
			assert.Equal(t, 400, appErrCode(t, err), "years %d", bad)
		}
	})
}

func TestUpdateSkill(t *testing.T) {
	ctx := context.Background()

	t.Run("patched record is revalidated as a whole", func(t *testing.T) {
		repo := new(MockSkillRepo)
		repo.On("GetByID", mock.Anything, int64(3), int64(7)).Return(sampleSkill(), nil)

		bad := 60
		uc := usecase.NewSkillUsecase(repo)
		_, err := uc.Update(ctx, 7, 3, &domain.SkillPatch{YearsExperience: &bad})

		assert.Equal(t, 400, appErrCode(t, err))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("valid patch is persisted", func(t *testing.T) {
		repo := new(MockSkillRepo)
		repo.On("GetByID", mock.Anything, int64(3), int64(7)).Return(sampleSkill(), nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil)

		level := domain.SkillExpert
		uc := usecase.NewSkillUsecase(repo)
		got, err := uc.Update(ctx, 7, 3, &domain.SkillPatch{Level: &level})

		assert.NoError(t, err)
		assert.Equal(t, domain.SkillExpert, got.Level)
		assert.Equal(t, "PostgreSQL", got.Name)
	})

	t.Run("missing record maps to 404", func(t *testing.T) {
		repo := new(MockSkillRepo)
		repo.On("GetByID", mock.Anything, int64(9), int64(7)).Return(nil, domain.ErrNotFound)

		uc := usecase.NewSkillUsecase(repo)
		_, err := uc.Update(ctx, 7, 9, &domain.SkillPatch{})

		assert.Equal(t, 404, appErrCode(t, err))
	})
}

func TestRemoveSkill(t *testing.T) {
	repo := new(MockSkillRepo)
	repo.On("Delete", mock.Anything, int64(3), int64(7)).Return(domain.ErrNotFound)

	uc := usecase.NewSkillUsecase(repo)
	err := uc.Remove(context.Background(), 7, 3)
	assert.Equal(t, 404, appErrCode(t, err))
}
