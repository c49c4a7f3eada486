package usecase_test

import (
	"context"
	"testing"
	"time"

	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockApplicationDetailsRepo struct {
	mock.Mock
}

func (m *MockApplicationDetailsRepo) Create(ctx context.Context, d *domain.ApplicationDetails) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockApplicationDetailsRepo) GetByUserID(ctx context.Context, userID int64) (*domain.ApplicationDetails, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationDetails), args.Error(1)
}

func (m *MockApplicationDetailsRepo) Update(ctx context.Context, d *domain.ApplicationDetails) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockApplicationDetailsRepo) Delete(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func sampleDetails() *domain.ApplicationDetails {
	return &domain.ApplicationDetails{
		UserID:                7,
		ConnectionType:        domain.ConnectionInternet,
		AvailableFromDate:     time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		PreferredWorkSchedule: domain.ScheduleFullTime,
		ExpectedSalary:        45_000_000,
		HasTransportation:     true,
	}
}

func strp(s string) *string { return &s }

func TestCreateApplicationDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("valid record is stored with salary defaults", func(t *testing.T) {
		repo := new(MockApplicationDetailsRepo)
		d := sampleDetails()
		repo.On("Create", mock.Anything, d).Return(nil)

		uc := usecase.NewApplicationDetailsUsecase(repo)
		assert.NoError(t, uc.CreateRecord(ctx, d))
		assert.Equal(t, "toman", d.SalaryCurrency)
		assert.Equal(t, "monthly", d.SalaryPeriod)
		repo.AssertExpectations(t)
	})

	t.Run("unknown connection type is rejected", func(t *testing.T) {
		d := sampleDetails()
		d.ConnectionType = "billboard"

		uc := usecase.NewApplicationDetailsUsecase(new(MockApplicationDetailsRepo))
		err := uc.CreateRecord(ctx, d)

		assert.Equal(t, 400, appErrCode(t, err))
		assert.Contains(t, err.Error(), "billboard")
	})

	t.Run("unknown work schedule is rejected", func(t *testing.T) {
		d := sampleDetails()
		d.PreferredWorkSchedule = "night_only"

		uc := usecase.NewApplicationDetailsUsecase(new(MockApplicationDetailsRepo))
		err := uc.CreateRecord(ctx, d)

		assert.Equal(t, 400, appErrCode(t, err))
	})

	t.Run("non-positive salary is rejected", func(t *testing.T) {
		d := sampleDetails()
		d.ExpectedSalary = 0

		uc := usecase.NewApplicationDetailsUsecase(new(MockApplicationDetailsRepo))
		err := uc.CreateRecord(ctx, d)

		assert.Equal(t, 400, appErrCode(t, err))
		assert.Contains(t, err.Error(), "salary")
	})

	t.Run("referral without referrer identity is rejected", func(t *testing.T) {
		d := sampleDetails()
		d.ConnectionType = domain.ConnectionReferral
		d.ReferrerName = strp("Sara Ahmadi")
		// relationship and phone missing

		uc := usecase.NewApplicationDetailsUsecase(new(MockApplicationDetailsRepo))
		err := uc.CreateRecord(ctx, d)

		assert.Equal(t, 400, appErrCode(t, err))
		assert.Contains(t, err.Error(), "Referrer")
	})

	t.Run("referral with full referrer identity passes", func(t *testing.T) {
		repo := new(MockApplicationDetailsRepo)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		d := sampleDetails()
		d.ConnectionType = domain.ConnectionReferral
		d.ReferrerName = strp("Sara Ahmadi")
		d.ReferrerRelationship = strp("former colleague")
		d.ReferrerPhone = strp("09123334455")

		uc := usecase.NewApplicationDetailsUsecase(repo)
		assert.NoError(t, uc.CreateRecord(ctx, d))
	})

	t.Run("relatives flag requires the relative fields", func(t *testing.T) {
		d := sampleDetails()
		d.HasRelativesInCompany = true

		uc := usecase.NewApplicationDetailsUsecase(new(MockApplicationDetailsRepo))
		err := uc.CreateRecord(ctx, d)

		assert.Equal(t, 400, appErrCode(t, err))
	})

	t.Run("each disclosure flag requires its description", func(t *testing.T) {
		cases := map[string]func(d *domain.ApplicationDetails){
			"health":     func(d *domain.ApplicationDetails) { d.HasHealthIssue = true },
			"disability": func(d *domain.ApplicationDetails) { d.HasDisability = true },
			"medication": func(d *domain.ApplicationDetails) { d.TakesMedication = true },
			"criminal":   func(d *domain.ApplicationDetails) { d.HasCriminalRecord = true },
		}
		for name, set := range cases {
			t.Run(name, func(t *testing.T) {
				d := sampleDetails()
				set(d)

				uc := usecase.NewApplicationDetailsUsecase(new(MockApplicationDetailsRepo))
				err := uc.CreateRecord(ctx, d)
				assert.Equal(t, 400, appErrCode(t, err))
			})
		}
	})

	t.Run("second record for the same user maps to 409", func(t *testing.T) {
		repo := new(MockApplicationDetailsRepo)
		repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicate)

		uc := usecase.NewApplicationDetailsUsecase(repo)
		err := uc.CreateRecord(ctx, sampleDetails())

		assert.Equal(t, 409, appErrCode(t, err))
	})
}

func TestUpdateApplicationDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("patched record is revalidated as a whole", func(t *testing.T) {
		repo := new(MockApplicationDetailsRepo)
		repo.On("GetByUserID", mock.Anything, int64(7)).Return(sampleDetails(), nil)

		// Switching to referral without supplying the referrer must fail.
		conn := domain.ConnectionReferral
		uc := usecase.NewApplicationDetailsUsecase(repo)
		_, err := uc.UpdateRecord(ctx, 7, &domain.ApplicationDetailsPatch{ConnectionType: &conn})

		assert.Equal(t, 400, appErrCode(t, err))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("valid patch is persisted", func(t *testing.T) {
		repo := new(MockApplicationDetailsRepo)
		repo.On("GetByUserID", mock.Anything, int64(7)).Return(sampleDetails(), nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil)

		salary := 60_000_000.0
		uc := usecase.NewApplicationDetailsUsecase(repo)
		got, err := uc.UpdateRecord(ctx, 7, &domain.ApplicationDetailsPatch{ExpectedSalary: &salary})

		assert.NoError(t, err)
		assert.Equal(t, 60_000_000.0, got.ExpectedSalary)
		assert.Equal(t, domain.ConnectionInternet, got.ConnectionType)
	})

	t.Run("missing record maps to 404", func(t *testing.T) {
		repo := new(MockApplicationDetailsRepo)
		repo.On("GetByUserID", mock.Anything, int64(7)).Return(nil, domain.ErrNotFound)

		uc := usecase.NewApplicationDetailsUsecase(repo)
		_, err := uc.UpdateRecord(ctx, 7, &domain.ApplicationDetailsPatch{})

		assert.Equal(t, 404, appErrCode(t, err))
	})
}

func TestDeleteApplicationDetails(t *testing.T) {
	repo := new(MockApplicationDetailsRepo)
	repo.On("Delete", mock.Anything, int64(7)).Return(domain.ErrNotFound)

	uc := usecase.NewApplicationDetailsUsecase(repo)
	err := uc.DeleteRecord(context.Background(), 7)
	assert.Equal(t, 404, appErrCode(t, err))
}
