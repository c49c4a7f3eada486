package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("resource already exists")
)

type JobPosting struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Company      string     `json:"company"`
	Location     string     `json:"location"`
	PostedDate   time.Time  `json:"posted_date"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	Description  string     `json:"description"`
	Requirements *string    `json:"requirements,omitempty"`
	Salary       *string    `json:"salary,omitempty"`
	JobType      *string    `json:"job_type,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// Eligible reports whether the posting accepts applications as of now:
// it must be active and its deadline, if any, must not have passed.
func (j *JobPosting) Eligible(now time.Time) bool {
	if !j.IsActive {
		return false
	}
	if j.Deadline != nil && j.Deadline.Before(now.Truncate(24*time.Hour)) {
		return false
	}
	return true
}

// JobPatch carries a sparse update. Nil fields are left untouched.
type JobPatch struct {
	Title        *string    `json:"title,omitempty"`
	Company      *string    `json:"company,omitempty"`
	Location     *string    `json:"location,omitempty"`
	PostedDate   *time.Time `json:"posted_date,omitempty"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Requirements *string    `json:"requirements,omitempty"`
	Salary       *string    `json:"salary,omitempty"`
	JobType      *string    `json:"job_type,omitempty"`
	IsActive     *bool      `json:"is_active,omitempty"`
}

// Apply merges the patch onto the posting, field by field.
func (p *JobPatch) Apply(job *JobPosting) {
	if p.Title != nil {
		job.Title = *p.Title
	}
	if p.Company != nil {
		job.Company = *p.Company
	}
	if p.Location != nil {
		job.Location = *p.Location
	}
	if p.PostedDate != nil {
		job.PostedDate = *p.PostedDate
	}
	if p.Deadline != nil {
		job.Deadline = p.Deadline
	}
	if p.Description != nil {
		job.Description = *p.Description
	}
	if p.Requirements != nil {
		job.Requirements = p.Requirements
	}
	if p.Salary != nil {
		job.Salary = p.Salary
	}
	if p.JobType != nil {
		job.JobType = p.JobType
	}
	if p.IsActive != nil {
		job.IsActive = *p.IsActive
	}
}

// AdminJobAssignment links an admin account to a posting it may manage.
// Pure access-control join row; created with the job, removed with it.
type AdminJobAssignment struct {
	ID        int64     `json:"id"`
	AdminID   int64     `json:"admin_id"`
	JobID     int64     `json:"job_id"`
	CreatedAt time.Time `json:"created_at"`
}

type JobRepository interface {
	// CreateWithAssignment inserts the posting and its admin assignment
	// in one transaction.
	CreateWithAssignment(ctx context.Context, job *JobPosting, adminID int64) error
	GetByID(ctx context.Context, id int64) (*JobPosting, error)
	GetByIDs(ctx context.Context, ids []int64) ([]JobPosting, error)
	Fetch(ctx context.Context, activeOnly bool, limit, offset int) ([]JobPosting, int64, error)
	FetchByAdmin(ctx context.Context, adminID int64, activeOnly bool, limit, offset int) ([]JobPosting, int64, error)
	Update(ctx context.Context, job *JobPosting) error
	// Delete removes the posting and its assignments in one transaction.
	Delete(ctx context.Context, id int64) error
	AssignmentExists(ctx context.Context, adminID, jobID int64) (bool, error)
	CountApplications(ctx context.Context, jobID int64) (int64, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, adminID int64, job *JobPosting) error
	GetJob(ctx context.Context, id int64, callerRole string) (*JobPosting, error)
	ListJobs(ctx context.Context, callerID int64, callerRole string, activeOnly bool, page, pageSize int) ([]JobPosting, int64, error)
	UpdateJob(ctx context.Context, adminID int64, callerRole string, jobID int64, patch *JobPatch) (*JobPosting, error)
	DeleteJob(ctx context.Context, adminID int64, callerRole string, jobID int64) error
}
