package usecase

import (
	"context"
	"errors"

	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

// NewJobUsecase creates a new job usecase
func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

// CreateJob creates a posting and assigns the creating admin to it
func (uc *jobUsecase) CreateJob(ctx context.Context, adminID int64, job *domain.JobPosting) error {
	// 1. A deadline before the posting date can never be satisfied
	if job.Deadline != nil && job.Deadline.Before(job.PostedDate) {
		return apperror.BadRequest("Deadline cannot be before the posted date")
	}

	// 2. Insert the posting together with its admin assignment
	if err := uc.jobRepo.CreateWithAssignment(ctx, job, adminID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// GetJob returns a single posting by id. Inactive postings are visible
// only to admins; everyone else gets the same 404 as a missing id.
func (uc *jobUsecase) GetJob(ctx context.Context, id int64, callerRole string) (*domain.JobPosting, error) {
	job, err := uc.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if !job.IsActive && callerRole != domain.RoleAdmin {
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}

// ListJobs returns a page of postings. Admins see the postings assigned to
// them, including inactive ones; everyone else sees the open catalog.
func (uc *jobUsecase) ListJobs(ctx context.Context, callerID int64, callerRole string, activeOnly bool, page, pageSize int) ([]domain.JobPosting, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	offset := (page - 1) * pageSize

	var (
		jobs  []domain.JobPosting
		total int64
		err   error
	)
	if callerRole == domain.RoleAdmin {
		jobs, total, err = uc.jobRepo.FetchByAdmin(ctx, callerID, activeOnly, pageSize, offset)
	} else {
		jobs, total, err = uc.jobRepo.Fetch(ctx, true, pageSize, offset)
	}
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return jobs, total, nil
}

// UpdateJob applies a sparse patch to a posting the admin is assigned to
func (uc *jobUsecase) UpdateJob(ctx context.Context, adminID int64, callerRole string, jobID int64, patch *domain.JobPatch) (*domain.JobPosting, error) {
	// 1. Only assigned admins may mutate a posting
	if err := uc.requireAssignment(ctx, adminID, callerRole, jobID); err != nil {
		return nil, err
	}

	// 2. Load and merge
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	patch.Apply(job)

	// 3. The merged posting must still be coherent
	if job.Deadline != nil && job.Deadline.Before(job.PostedDate) {
		return nil, apperror.BadRequest("Deadline cannot be before the posted date")
	}

	if err := uc.jobRepo.Update(ctx, job); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// DeleteJob removes a posting the admin is assigned to. Postings that
// already received applications cannot be deleted; deactivate them instead.
func (uc *jobUsecase) DeleteJob(ctx context.Context, adminID int64, callerRole string, jobID int64) error {
	if err := uc.requireAssignment(ctx, adminID, callerRole, jobID); err != nil {
		return err
	}

	count, err := uc.jobRepo.CountApplications(ctx, jobID)
	if err != nil {
		return apperror.Internal(err)
	}
	if count > 0 {
		return apperror.Conflict("Job has applications and cannot be deleted; deactivate it instead")
	}

	if err := uc.jobRepo.Delete(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (uc *jobUsecase) requireAssignment(ctx context.Context, adminID int64, callerRole string, jobID int64) error {
	if callerRole != domain.RoleAdmin {
		return apperror.Forbidden("Admin access required")
	}
	assigned, err := uc.jobRepo.AssignmentExists(ctx, adminID, jobID)
	if err != nil {
		return apperror.Internal(err)
	}
	if !assigned {
		return apperror.Forbidden("You are not assigned to this job")
	}
	return nil
}
