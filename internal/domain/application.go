package domain

import (
	"context"
	"errors"
	"time"
)

// ErrAlreadyApplied signals the one-shot admission rule: a user with any
// existing application row may not submit another batch.
var ErrAlreadyApplied = errors.New("user has already applied")

// Application status values
const (
	ApplicationStatusPending   = "pending"
	ApplicationStatusReviewed  = "reviewed"
	ApplicationStatusAccepted  = "accepted"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusWithdrawn = "withdrawn"
)

// BatchSize is the exact number of selections a submission must carry.
const BatchSize = 3

// AllowedScores is the closed set of admission scores.
var AllowedScores = []float64{5.1, 5.2, 5.3, 5.4}

// ValidScore reports whether s is one of the allowed score values.
func ValidScore(s float64) bool {
	for _, v := range AllowedScores {
		if s == v {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is a known application status.
func ValidStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusAccepted,
		ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return true
	}
	return false
}

type JobApplication struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	JobID     int64      `json:"job_id"`
	Score     float64    `json:"score"`
	Priority  int        `json:"priority"`
	Status    string     `json:"status"`
	AppliedAt time.Time  `json:"applied_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	// Joined data for list responses
	JobTitle      *string `json:"job_title,omitempty"`
	Company       *string `json:"company,omitempty"`
	Location      *string `json:"location,omitempty"`
	ApplicantName *string `json:"applicant_name,omitempty"`
}

// JobSelection is one entry of a batch submission.
type JobSelection struct {
	JobID    int64   `json:"job_id"`
	Score    float64 `json:"score"`
	Priority int     `json:"priority"`
}

// ApplicationPatch carries a sparse update of one application. Nil fields
// are left untouched. Cross-application distinctness is not re-checked on
// update; only the per-field domains are.
type ApplicationPatch struct {
	Status   *string  `json:"status,omitempty"`
	Score    *float64 `json:"score,omitempty"`
	Priority *int     `json:"priority,omitempty"`
}

// Apply merges the patch onto the application, field by field.
func (p *ApplicationPatch) Apply(app *JobApplication) {
	if p.Status != nil {
		app.Status = *p.Status
	}
	if p.Score != nil {
		app.Score = *p.Score
	}
	if p.Priority != nil {
		app.Priority = *p.Priority
	}
}

// Empty reports whether the patch changes nothing.
func (p *ApplicationPatch) Empty() bool {
	return p.Status == nil && p.Score == nil && p.Priority == nil
}

// ApplicationsSummary aggregates one user's applications.
type ApplicationsSummary struct {
	TotalApplications  int            `json:"total_applications"`
	StatusDistribution map[string]int `json:"status_distribution"`
	AverageScore       float64        `json:"average_score"`
	LastApplication    *time.Time     `json:"last_application,omitempty"`
	CanApplyMore       bool           `json:"can_apply_more"`
}

// ApplicationStatistics is the catalog-wide admin view.
type ApplicationStatistics struct {
	TotalApplications int64            `json:"total_applications"`
	ByStatus          map[string]int64 `json:"by_status"`
	ByScore           map[string]int64 `json:"by_score"`
}

type ApplicationRepository interface {
	// CreateBatch checks the one-shot precondition and inserts the batch
	// inside a single serializable transaction: either every row persists
	// or none do. It returns ErrAlreadyApplied when the user already has
	// applications, including when a concurrent batch wins the race and
	// the uniqueness constraint fires at commit time.
	CreateBatch(ctx context.Context, userID int64, selections []JobSelection) ([]JobApplication, error)
	GetByID(ctx context.Context, id, userID int64) (*JobApplication, error)
	GetByUserID(ctx context.Context, userID int64) ([]JobApplication, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	Update(ctx context.Context, app *JobApplication) error
	Delete(ctx context.Context, id, userID int64) error
	AvailableJobs(ctx context.Context, userID int64) ([]JobPosting, error)
	GetAll(ctx context.Context) ([]JobApplication, error)
	Statistics(ctx context.Context) (*ApplicationStatistics, error)
}

type ApplicationUsecase interface {
	SubmitBatch(ctx context.Context, userID int64, selections []JobSelection) ([]JobApplication, error)
	GetMyApplications(ctx context.Context, userID int64) ([]JobApplication, error)
	UpdateApplication(ctx context.Context, userID, applicationID int64, patch *ApplicationPatch) (*JobApplication, error)
	WithdrawApplication(ctx context.Context, userID, applicationID int64) error
	AvailableJobs(ctx context.Context, userID int64) ([]JobPosting, error)
	Summary(ctx context.Context, userID int64) (*ApplicationsSummary, error)
	ListAll(ctx context.Context, callerRole string) ([]JobApplication, error)
	Statistics(ctx context.Context, callerRole string) (*ApplicationStatistics, error)
}
