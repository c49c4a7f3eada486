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

func TestCreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects deadline before posted date", func(t *testing.T) {
		posted := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		deadline := posted.AddDate(0, 0, -1)
		job := &domain.JobPosting{Title: "Backend Engineer", PostedDate: posted, Deadline: &deadline}

		uc := usecase.NewJobUsecase(new(MockJobRepo))
		err := uc.CreateJob(ctx, 1, job)

		assert.Equal(t, 400, appErrCode(t, err))
	})

	t.Run("creates the posting with its assignment", func(t *testing.T) {
		job := &domain.JobPosting{Title: "Backend Engineer", PostedDate: time.Now(), IsActive: true}
		jobRepo := new(MockJobRepo)
		jobRepo.On("CreateWithAssignment", mock.Anything, job, int64(1)).Return(nil)

		uc := usecase.NewJobUsecase(jobRepo)
		assert.NoError(t, uc.CreateJob(ctx, 1, job))
		jobRepo.AssertExpectations(t)
	})
}

func TestListJobs(t *testing.T) {
	ctx := context.Background()

	t.Run("applicants always get the open catalog", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("Fetch", mock.Anything, true, 20, 0).Return(openJobs(), int64(3), nil)

		uc := usecase.NewJobUsecase(jobRepo)
		jobs, total, err := uc.ListJobs(ctx, 7, domain.RoleUser, false, 0, 0)

		assert.NoError(t, err)
		assert.Len(t, jobs, 3)
		assert.Equal(t, int64(3), total)
		jobRepo.AssertNotCalled(t, "FetchByAdmin", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("admins see their assigned postings", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("FetchByAdmin", mock.Anything, int64(1), false, 20, 0).Return(openJobs()[:1], int64(1), nil)

		uc := usecase.NewJobUsecase(jobRepo)
		jobs, total, err := uc.ListJobs(ctx, 1, domain.RoleAdmin, false, 1, 20)

		assert.NoError(t, err)
		assert.Len(t, jobs, 1)
		assert.Equal(t, int64(1), total)
	})

	t.Run("page size is clamped", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("Fetch", mock.Anything, true, 100, 100).Return([]domain.JobPosting{}, int64(0), nil)

		uc := usecase.NewJobUsecase(jobRepo)
		_, _, err := uc.ListJobs(ctx, 7, domain.RoleUser, true, 2, 500)

		assert.NoError(t, err)
		jobRepo.AssertExpectations(t)
	})
}

func TestGetJob(t *testing.T) {
	ctx := context.Background()
	inactive := &domain.JobPosting{ID: 4, Title: "Archived Posting", IsActive: false}

	t.Run("inactive posting is hidden from applicants", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, int64(4)).Return(inactive, nil)

		uc := usecase.NewJobUsecase(jobRepo)
		_, err := uc.GetJob(ctx, 4, domain.RoleUser)

		assert.Equal(t, 404, appErrCode(t, err))
	})

	t.Run("inactive posting is hidden from anonymous readers", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, int64(4)).Return(inactive, nil)

		uc := usecase.NewJobUsecase(jobRepo)
		_, err := uc.GetJob(ctx, 4, "")

		assert.Equal(t, 404, appErrCode(t, err))
	})

	t.Run("admins can read inactive postings", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, int64(4)).Return(inactive, nil)

		uc := usecase.NewJobUsecase(jobRepo)
		job, err := uc.GetJob(ctx, 4, domain.RoleAdmin)

		assert.NoError(t, err)
		assert.Equal(t, "Archived Posting", job.Title)
	})

	t.Run("active posting is public", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(&openJobs()[0], nil)

		uc := usecase.NewJobUsecase(jobRepo)
		job, err := uc.GetJob(ctx, 1, "")

		assert.NoError(t, err)
		assert.True(t, job.IsActive)
	})
}

func TestUpdateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("non-admin is refused", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))
		_, err := uc.UpdateJob(ctx, 7, domain.RoleUser, 1, &domain.JobPatch{})
		assert.Equal(t, 403, appErrCode(t, err))
	})

	t.Run("unassigned admin is refused", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("AssignmentExists", mock.Anything, int64(2), int64(1)).Return(false, nil)

		uc := usecase.NewJobUsecase(jobRepo)
		_, err := uc.UpdateJob(ctx, 2, domain.RoleAdmin, 1, &domain.JobPatch{})

		assert.Equal(t, 403, appErrCode(t, err))
		assert.Contains(t, err.Error(), "not assigned")
	})

	t.Run("patch merges onto the stored posting", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("AssignmentExists", mock.Anything, int64(1), int64(1)).Return(true, nil)
		stored := openJobs()[0]
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(&stored, nil)
		jobRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		title := "Senior Backend Engineer"
		inactive := false
		uc := usecase.NewJobUsecase(jobRepo)
		got, err := uc.UpdateJob(ctx, 1, domain.RoleAdmin, 1, &domain.JobPatch{Title: &title, IsActive: &inactive})

		assert.NoError(t, err)
		assert.Equal(t, "Senior Backend Engineer", got.Title)
		assert.False(t, got.IsActive)
		assert.Equal(t, "Acme", got.Company)
	})

	t.Run("patched posting must keep deadline after posted date", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("AssignmentExists", mock.Anything, int64(1), int64(1)).Return(true, nil)
		stored := openJobs()[0]
		stored.PostedDate = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(&stored, nil)

		bad := stored.PostedDate.AddDate(0, 0, -7)
		uc := usecase.NewJobUsecase(jobRepo)
		_, err := uc.UpdateJob(ctx, 1, domain.RoleAdmin, 1, &domain.JobPatch{Deadline: &bad})

		assert.Equal(t, 400, appErrCode(t, err))
		jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDeleteJob(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked while applications exist", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("AssignmentExists", mock.Anything, int64(1), int64(1)).Return(true, nil)
		jobRepo.On("CountApplications", mock.Anything, int64(1)).Return(int64(4), nil)

		uc := usecase.NewJobUsecase(jobRepo)
		err := uc.DeleteJob(ctx, 1, domain.RoleAdmin, 1)

		assert.Equal(t, 409, appErrCode(t, err))
		jobRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes an unapplied posting", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("AssignmentExists", mock.Anything, int64(1), int64(1)).Return(true, nil)
		jobRepo.On("CountApplications", mock.Anything, int64(1)).Return(int64(0), nil)
		jobRepo.On("Delete", mock.Anything, int64(1)).Return(nil)

		uc := usecase.NewJobUsecase(jobRepo)
		assert.NoError(t, uc.DeleteJob(ctx, 1, domain.RoleAdmin, 1))
		jobRepo.AssertExpectations(t)
	})
}
