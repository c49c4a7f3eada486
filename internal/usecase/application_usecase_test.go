package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/internal/usecase"
	"recruitment-intake-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) CreateBatch(ctx context.Context, userID int64, selections []domain.JobSelection) ([]domain.JobApplication, error) {
	args := m.Called(ctx, userID, selections)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id, userID int64) (*domain.JobApplication, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) GetByUserID(ctx context.Context, userID int64) ([]domain.JobApplication, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) CountByUser(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApplicationRepo) Update(ctx context.Context, app *domain.JobApplication) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) Delete(ctx context.Context, id, userID int64) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *MockApplicationRepo) AvailableJobs(ctx context.Context, userID int64) ([]domain.JobPosting, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPosting), args.Error(1)
}

func (m *MockApplicationRepo) GetAll(ctx context.Context) ([]domain.JobApplication, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) Statistics(ctx context.Context) (*domain.ApplicationStatistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationStatistics), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) CreateWithAssignment(ctx context.Context, job *domain.JobPosting, adminID int64) error {
	return m.Called(ctx, job, adminID).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}

func (m *MockJobRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.JobPosting, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPosting), args.Error(1)
}

func (m *MockJobRepo) Fetch(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.JobPosting, int64, error) {
	args := m.Called(ctx, activeOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobPosting), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) FetchByAdmin(ctx context.Context, adminID int64, activeOnly bool, limit, offset int) ([]domain.JobPosting, int64, error) {
	args := m.Called(ctx, adminID, activeOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobPosting), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockJobRepo) AssignmentExists(ctx context.Context, adminID, jobID int64) (bool, error) {
	args := m.Called(ctx, adminID, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *MockJobRepo) CountApplications(ctx context.Context, jobID int64) (int64, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).(int64), args.Error(1)
}

// Helpers

func validSelections() []domain.JobSelection {
	return []domain.JobSelection{
		{JobID: 1, Score: 5.1, Priority: 1},
		{JobID: 2, Score: 5.2, Priority: 2},
		{JobID: 3, Score: 5.4, Priority: 3},
	}
}

func openJobs() []domain.JobPosting {
	deadline := time.Now().AddDate(0, 1, 0)
	return []domain.JobPosting{
		{ID: 1, Title: "Backend Engineer", Company: "Acme", Location: "Tehran", IsActive: true, Deadline: &deadline},
		{ID: 2, Title: "Data Analyst", Company: "Acme", Location: "Tehran", IsActive: true},
		{ID: 3, Title: "SRE", Company: "Globex", Location: "Isfahan", IsActive: true, Deadline: &deadline},
	}
}

func appErrCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	return appErr.Code
}

// Tests

func TestSubmitBatchValidation(t *testing.T) {
	ctx := context.Background()

	newUC := func() domain.ApplicationUsecase {
		return usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo))
	}

	t.Run("rejects fewer than three selections", func(t *testing.T) {
		_, err := newUC().SubmitBatch(ctx, 7, validSelections()[:2])
		assert.Equal(t, 400, appErrCode(t, err))
		assert.Contains(t, err.Error(), "Exactly 3")
	})

	t.Run("rejects more than three selections", func(t *testing.T) {
		sel := append(validSelections(), domain.JobSelection{JobID: 4, Score: 5.1, Priority: 1})
		_, err := newUC().SubmitBatch(ctx, 7, sel)
		assert.Equal(t, 400, appErrCode(t, err))
	})

	t.Run("rejects duplicate job ids", func(t *testing.T) {
		sel := validSelections()
		sel[2].JobID = sel[0].JobID
		_, err := newUC().SubmitBatch(ctx, 7, sel)
		assert.Equal(t, 400, appErrCode(t, err))
		assert.Contains(t, err.Error(), "Duplicate job selection")
	})

	t.Run("rejects duplicate priorities", func(t *testing.T) {
		sel := validSelections()
		sel[2].Priority = sel[0].Priority
		_, err := newUC().SubmitBatch(ctx, 7, sel)
		assert.Equal(t, 400, appErrCode(t, err))
		assert.Contains(t, err.Error(), "Duplicate priority")
	})

	t.Run("rejects priority out of range", func(t *testing.T) {
		sel := validSelections()
		sel[1].Priority = 4
		_, err := newUC().SubmitBatch(ctx, 7, sel)
		assert.Equal(t, 400, appErrCode(t, err))
		assert.Contains(t, err.Error(), "Priority must be between 1 and 3")
	})

	t.Run("rejects scores outside the allowed set", func(t *testing.T) {
		for _, bad := range []float64{5.0, 5.25, 5.5, 0, -5.1} {
			sel := validSelections()
			sel[0].Score = bad
			_, err := newUC().SubmitBatch(ctx, 7, sel)
			assert.Equal(t, 400, appErrCode(t, err), "score %v should be rejected", bad)
		}
	})
}

func TestSubmitBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("second submission is blocked", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		appRepo.On("CountByUser", mock.Anything, int64(7)).Return(int64(3), nil)

		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)
		_, err := uc.SubmitBatch(ctx, 7, validSelections())

		assert.Equal(t, 400, appErrCode(t, err))
		assert.Contains(t, err.Error(), "already submitted")
		jobRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
	})

	t.Run("missing jobs are named in the error", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		appRepo.On("CountByUser", mock.Anything, int64(7)).Return(int64(0), nil)
		jobRepo.On("GetByIDs", mock.Anything, []int64{1, 2, 3}).Return(openJobs()[:1], nil)

		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)
		_, err := uc.SubmitBatch(ctx, 7, validSelections())

		assert.Equal(t, 404, appErrCode(t, err))
		assert.Contains(t, err.Error(), "2, 3")
	})

	t.Run("inactive job rejects the whole batch", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		jobs := openJobs()
		jobs[1].IsActive = false
		appRepo.On("CountByUser", mock.Anything, int64(7)).Return(int64(0), nil)
		jobRepo.On("GetByIDs", mock.Anything, []int64{1, 2, 3}).Return(jobs, nil)

		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)
		_, err := uc.SubmitBatch(ctx, 7, validSelections())

		assert.Equal(t, 400, appErrCode(t, err))
		assert.Contains(t, err.Error(), "Data Analyst")
		appRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("expired deadline rejects the whole batch", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		jobs := openJobs()
		past := time.Now().AddDate(0, 0, -2)
		jobs[2].Deadline = &past
		appRepo.On("CountByUser", mock.Anything, int64(7)).Return(int64(0), nil)
		jobRepo.On("GetByIDs", mock.Anything, []int64{1, 2, 3}).Return(jobs, nil)

		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)
		_, err := uc.SubmitBatch(ctx, 7, validSelections())

		assert.Equal(t, 400, appErrCode(t, err))
		assert.Contains(t, err.Error(), "SRE")
	})

	t.Run("successful batch is enriched and priority ordered", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		appRepo.On("CountByUser", mock.Anything, int64(7)).Return(int64(0), nil)
		jobRepo.On("GetByIDs", mock.Anything, []int64{1, 2, 3}).Return(openJobs(), nil)
		created := []domain.JobApplication{
			{ID: 12, UserID: 7, JobID: 3, Score: 5.4, Priority: 3, Status: domain.ApplicationStatusPending},
			{ID: 10, UserID: 7, JobID: 1, Score: 5.1, Priority: 1, Status: domain.ApplicationStatusPending},
			{ID: 11, UserID: 7, JobID: 2, Score: 5.2, Priority: 2, Status: domain.ApplicationStatusPending},
		}
		appRepo.On("CreateBatch", mock.Anything, int64(7), validSelections()).Return(created, nil)

		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)
		got, err := uc.SubmitBatch(ctx, 7, validSelections())

		assert.NoError(t, err)
		assert.Len(t, got, 3)
		assert.Equal(t, []int{1, 2, 3}, []int{got[0].Priority, got[1].Priority, got[2].Priority})
		assert.Equal(t, "Backend Engineer", *got[0].JobTitle)
		assert.Equal(t, "Globex", *got[2].Company)
	})

	t.Run("losing the commit race reads as already applied", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		appRepo.On("CountByUser", mock.Anything, int64(7)).Return(int64(0), nil)
		jobRepo.On("GetByIDs", mock.Anything, []int64{1, 2, 3}).Return(openJobs(), nil)
		appRepo.On("CreateBatch", mock.Anything, int64(7), validSelections()).Return(nil, domain.ErrAlreadyApplied)

		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)
		_, err := uc.SubmitBatch(ctx, 7, validSelections())

		assert.Equal(t, 400, appErrCode(t, err))
	})
}

func TestUpdateApplication(t *testing.T) {
	ctx := context.Background()

	current := func() *domain.JobApplication {
		return &domain.JobApplication{
			ID: 10, UserID: 7, JobID: 1,
			Score: 5.1, Priority: 1, Status: domain.ApplicationStatusPending,
		}
	}

	t.Run("empty patch is rejected", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo))
		_, err := uc.UpdateApplication(ctx, 7, 10, &domain.ApplicationPatch{})
		assert.Equal(t, 400, appErrCode(t, err))
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		bad := "archived"
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo))
		_, err := uc.UpdateApplication(ctx, 7, 10, &domain.ApplicationPatch{Status: &bad})
		assert.Equal(t, 400, appErrCode(t, err))
	})

	t.Run("invalid score is rejected", func(t *testing.T) {
		bad := 5.0
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo))
		_, err := uc.UpdateApplication(ctx, 7, 10, &domain.ApplicationPatch{Score: &bad})
		assert.Equal(t, 400, appErrCode(t, err))
	})

	t.Run("unknown application maps to 404", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByID", mock.Anything, int64(99), int64(7)).Return(nil, domain.ErrNotFound)
		status := domain.ApplicationStatusReviewed

		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo))
		_, err := uc.UpdateApplication(ctx, 7, 99, &domain.ApplicationPatch{Status: &status})

		assert.Equal(t, 404, appErrCode(t, err))
	})

	t.Run("patch merges only the provided fields", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByID", mock.Anything, int64(10), int64(7)).Return(current(), nil)
		appRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		score := 5.3
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo))
		got, err := uc.UpdateApplication(ctx, 7, 10, &domain.ApplicationPatch{Score: &score})

		assert.NoError(t, err)
		assert.Equal(t, 5.3, got.Score)
		assert.Equal(t, 1, got.Priority)
		assert.Equal(t, domain.ApplicationStatusPending, got.Status)
	})
}

func TestWithdrawApplication(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes own application", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("Delete", mock.Anything, int64(10), int64(7)).Return(nil)

		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo))
		assert.NoError(t, uc.WithdrawApplication(ctx, 7, 10))
	})

	t.Run("someone else's application reads as 404", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("Delete", mock.Anything, int64(10), int64(8)).Return(domain.ErrNotFound)

		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo))
		err := uc.WithdrawApplication(ctx, 8, 10)
		assert.Equal(t, 404, appErrCode(t, err))
	})
}

func TestSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("empty history can apply", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByUserID", mock.Anything, int64(7)).Return([]domain.JobApplication{}, nil)

		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo))
		got, err := uc.Summary(ctx, 7)

		assert.NoError(t, err)
		assert.True(t, got.CanApplyMore)
		assert.Equal(t, 0, got.TotalApplications)
		assert.Equal(t, 0.0, got.AverageScore)
		assert.Nil(t, got.LastApplication)
	})

	t.Run("aggregates status, average and last application", func(t *testing.T) {
		early := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		late := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByUserID", mock.Anything, int64(7)).Return([]domain.JobApplication{
			{Score: 5.1, Status: domain.ApplicationStatusPending, AppliedAt: early},
			{Score: 5.2, Status: domain.ApplicationStatusPending, AppliedAt: late},
			{Score: 5.4, Status: domain.ApplicationStatusReviewed, AppliedAt: early},
		}, nil)

		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo))
		got, err := uc.Summary(ctx, 7)

		assert.NoError(t, err)
		assert.False(t, got.CanApplyMore)
		assert.Equal(t, 3, got.TotalApplications)
		assert.Equal(t, 2, got.StatusDistribution[domain.ApplicationStatusPending])
		assert.Equal(t, 1, got.StatusDistribution[domain.ApplicationStatusReviewed])
		assert.Equal(t, 5.23, got.AverageScore)
		assert.Equal(t, late, *got.LastApplication)
	})
}

func TestAdminViews(t *testing.T) {
	ctx := context.Background()

	t.Run("list all requires admin", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo))
		_, err := uc.ListAll(ctx, domain.RoleUser)
		assert.Equal(t, 403, appErrCode(t, err))
	})

	t.Run("statistics requires admin", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo))
		_, err := uc.Statistics(ctx, domain.RoleUser)
		assert.Equal(t, 403, appErrCode(t, err))
	})

	t.Run("statistics passes through for admins", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("Statistics", mock.Anything).Return(&domain.ApplicationStatistics{
			TotalApplications: 9,
			ByStatus:          map[string]int64{domain.ApplicationStatusPending: 9},
			ByScore:           map[string]int64{"5.1": 4, "5.2": 5},
		}, nil)

		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo))
		got, err := uc.Statistics(ctx, domain.RoleAdmin)

		assert.NoError(t, err)
		assert.Equal(t, int64(9), got.TotalApplications)
		assert.Equal(t, int64(5), got.ByScore["5.2"])
	})
}

func TestAvailableJobs(t *testing.T) {
	appRepo := new(MockApplicationRepo)
	appRepo.On("AvailableJobs", mock.Anything, int64(7)).Return(openJobs(), nil)

	uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo))
	got, err := uc.AvailableJobs(context.Background(), 7)

	assert.NoError(t, err)
	assert.Len(t, got, 3)
}
