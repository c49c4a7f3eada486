package usecase_test

import (
	"context"
	"testing"

	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockEducationRepo struct {
	mock.Mock
}

func (m *MockEducationRepo) Create(ctx context.Context, e *domain.Education) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEducationRepo) GetByID(ctx context.Context, id, userID int64) (*domain.Education, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Education), args.Error(1)
}

func (m *MockEducationRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Education, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Education), args.Error(1)
}

func (m *MockEducationRepo) Update(ctx context.Context, e *domain.Education) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEducationRepo) Delete(ctx context.Context, id, userID int64) error {
	return m.Called(ctx, id, userID).Error(0)
}

func sampleEducation() *domain.Education {
	end := 2022
	return &domain.Education{
		UserID:      7,
		Degree:      domain.DegreeBachelor,
		Field:       "Computer Engineering",
		University:  "Tehran University",
		StartYear:   2018,
		EndYear:     &end,
		StudyStatus: domain.StudyStatusGraduated,
	}
}

func TestAddEducation(t *testing.T) {
	ctx := context.Background()

	t.Run("valid record is stored", func(t *testing.T) {
		repo := new(MockEducationRepo)
		e := sampleEducation()
		repo.On("Create", mock.Anything, e).Return(nil)

		uc := usecase.NewEducationUsecase(repo)
		assert.NoError(t, uc.Add(ctx, e))
		repo.AssertExpectations(t)
	})

	t.Run("unknown degree is rejected", func(t *testing.T) {
		e := sampleEducation()
		e.Degree = "postdoc"

		uc := usecase.NewEducationUsecase(new(MockEducationRepo))
		err := uc.Add(ctx, e)

		assert.Equal(t, 400, appErrCode(t, err))
		assert.Contains(t, err.Error(), "postdoc")
	})

	t.Run("unknown study status is rejected", func(t *testing.T) {
		e := sampleEducation()
		e.StudyStatus = "paused"

		uc := usecase.NewEducationUsecase(new(MockEducationRepo))
		err := uc.Add(ctx, e)

		assert.Equal(t, 400, appErrCode(t, err))
	})

	t.Run("end year before start year is rejected", func(t *testing.T) {
		e := sampleEducation()
		bad := e.StartYear - 1
		e.EndYear = &bad

		uc := usecase.NewEducationUsecase(new(MockEducationRepo))
		err := uc.Add(ctx, e)

		assert.Equal(t, 400, appErrCode(t, err))
	})

	t.Run("average outside 0..20 is rejected", func(t *testing.T) {
		for _, bad := range []float64{-0.5, 20.5} {
			e := sampleEducation()
			e.Average = &bad

			uc := usecase.NewEducationUsecase(new(MockEducationRepo))
			err := uc.Add(ctx, e)
			assert.Equal(t, 400, appErrCode(t, err), "average %v", bad)
		}
	})
}

func TestUpdateEducation(t *testing.T) {
	ctx := context.Background()

	t.Run("patched record is revalidated as a whole", func(t *testing.T) {
		repo := new(MockEducationRepo)
		repo.On("GetByID", mock.Anything, int64(3), int64(7)).Return(sampleEducation(), nil)

		// Stored record graduates in 2022; moving the start past it must fail.
		start := 2024
		uc := usecase.NewEducationUsecase(repo)
		_, err := uc.Update(ctx, 7, 3, &domain.EducationPatch{StartYear: &start})

		assert.Equal(t, 400, appErrCode(t, err))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("valid patch is persisted", func(t *testing.T) {
		repo := new(MockEducationRepo)
		repo.On("GetByID", mock.Anything, int64(3), int64(7)).Return(sampleEducation(), nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil)

		avg := 17.25
		uc := usecase.NewEducationUsecase(repo)
		got, err := uc.Update(ctx, 7, 3, &domain.EducationPatch{Average: &avg})

		assert.NoError(t, err)
		assert.Equal(t, 17.25, *got.Average)
		assert.Equal(t, domain.DegreeBachelor, got.Degree)
	})

	t.Run("missing record maps to 404", func(t *testing.T) {
		repo := new(MockEducationRepo)
		repo.On("GetByID", mock.Anything, int64(9), int64(7)).Return(nil, domain.ErrNotFound)

		uc := usecase.NewEducationUsecase(repo)
		_, err := uc.Update(ctx, 7, 9, &domain.EducationPatch{})

		assert.Equal(t, 404, appErrCode(t, err))
	})
}

func TestRemoveEducation(t *testing.T) {
	repo := new(MockEducationRepo)
	repo.On("Delete", mock.Anything, int64(3), int64(7)).Return(domain.ErrNotFound)

	uc := usecase.NewEducationUsecase(repo)
	err := uc.Remove(context.Background(), 7, 3)
	assert.Equal(t, 404, appErrCode(t, err))
}
