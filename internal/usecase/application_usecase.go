package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
	}
}

// SubmitBatch accepts a user's one-shot submission of exactly three job
// selections and persists them atomically. Validation runs cheapest-first;
// the repository re-checks the one-shot rule inside its transaction, so a
// concurrent duplicate submission loses cleanly instead of half-landing.
func (uc *applicationUsecase) SubmitBatch(ctx context.Context, userID int64, selections []domain.JobSelection) ([]domain.JobApplication, error) {
	// 1. Structural validation of the batch itself
	if err := validateSelections(selections); err != nil {
		return nil, err
	}

	// 2. One-shot precondition (advisory; the transaction is authoritative)
	count, err := uc.applicationRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if count > 0 {
		return nil, apperror.BadRequest("You have already submitted your job applications")
	}

	// 3. All referenced jobs must exist
	ids := make([]int64, 0, len(selections))
	for _, s := range selections {
		ids = append(ids, s.JobID)
	}
	jobs, err := uc.jobRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	jobsByID := make(map[int64]domain.JobPosting, len(jobs))
	for _, j := range jobs {
		jobsByID[j.ID] = j
	}
	var missing []int64
	for _, id := range ids {
		if _, ok := jobsByID[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, apperror.NotFound("Job postings not found: " + joinIDs(missing))
	}

	// 4. Every job must still accept applications
	now := time.Now()
	var closed []string
	for _, id := range ids {
		job := jobsByID[id]
		if !job.Eligible(now) {
			closed = append(closed, job.Title)
		}
	}
	if len(closed) > 0 {
		return nil, apperror.BadRequest("These jobs are no longer accepting applications: " + strings.Join(closed, ", "))
	}

	// 5. Persist all three rows or none
	created, err := uc.applicationRepo.CreateBatch(ctx, userID, selections)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyApplied) {
			return nil, apperror.BadRequest("You have already submitted your job applications")
		}
		return nil, apperror.Internal(err)
	}

	// 6. Enrich the response with the job details already in hand
	for i := range created {
		if job, ok := jobsByID[created[i].JobID]; ok {
			title, company, location := job.Title, job.Company, job.Location
			created[i].JobTitle = &title
			created[i].Company = &company
			created[i].Location = &location
		}
	}
	sort.Slice(created, func(i, j int) bool { return created[i].Priority < created[j].Priority })
	return created, nil
}

// validateSelections enforces the shape of a batch: exactly three entries,
// pairwise-distinct jobs and priorities, priorities covering 1..3, and each
// score drawn from the allowed set.
func validateSelections(selections []domain.JobSelection) error {
	if len(selections) != domain.BatchSize {
		return apperror.BadRequest(fmt.Sprintf("Exactly %d job selections are required, got %d", domain.BatchSize, len(selections)))
	}

	seenJobs := make(map[int64]bool, domain.BatchSize)
	seenPriorities := make(map[int]bool, domain.BatchSize)
	for _, s := range selections {
		if seenJobs[s.JobID] {
			return apperror.BadRequest("Duplicate job selection: job " + strconv.FormatInt(s.JobID, 10))
		}
		seenJobs[s.JobID] = true

		if s.Priority < 1 || s.Priority > domain.BatchSize {
			return apperror.BadRequest(fmt.Sprintf("Priority must be between 1 and %d, got %d", domain.BatchSize, s.Priority))
		}
		if seenPriorities[s.Priority] {
			return apperror.BadRequest(fmt.Sprintf("Duplicate priority: %d", s.Priority))
		}
		seenPriorities[s.Priority] = true

		if !domain.ValidScore(s.Score) {
			return apperror.BadRequest(fmt.Sprintf("Score %.2f is not allowed; valid scores are %s", s.Score, formatScores(domain.AllowedScores)))
		}
	}
	return nil
}

// GetMyApplications returns the current user's applications, priority first
func (uc *applicationUsecase) GetMyApplications(ctx context.Context, userID int64) ([]domain.JobApplication, error) {
	apps, err := uc.applicationRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// UpdateApplication applies a sparse patch to one of the user's own
// applications. Only per-field domains are re-checked; the batch-level
// distinctness rules apply at submission time only.
func (uc *applicationUsecase) UpdateApplication(ctx context.Context, userID, applicationID int64, patch *domain.ApplicationPatch) (*domain.JobApplication, error) {
	// 1. Reject a patch that changes nothing
	if patch == nil || patch.Empty() {
		return nil, apperror.BadRequest("No fields to update")
	}

	// 2. Per-field domain checks
	if patch.Status != nil && !domain.ValidStatus(*patch.Status) {
		return nil, apperror.BadRequest("Invalid status: " + *patch.Status)
	}
	if patch.Score != nil && !domain.ValidScore(*patch.Score) {
		return nil, apperror.BadRequest(fmt.Sprintf("Score %.2f is not allowed; valid scores are %s", *patch.Score, formatScores(domain.AllowedScores)))
	}
	if patch.Priority != nil && (*patch.Priority < 1 || *patch.Priority > domain.BatchSize) {
		return nil, apperror.BadRequest(fmt.Sprintf("Priority must be between 1 and %d", domain.BatchSize))
	}

	// 3. Ownership is enforced by the lookup itself
	app, err := uc.applicationRepo.GetByID(ctx, applicationID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}

	// 4. Merge and persist
	patch.Apply(app)
	if err := uc.applicationRepo.Update(ctx, app); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

// WithdrawApplication deletes one of the user's own applications. Once all
// three are withdrawn the user may submit a fresh batch.
func (uc *applicationUsecase) WithdrawApplication(ctx context.Context, userID, applicationID int64) error {
	if err := uc.applicationRepo.Delete(ctx, applicationID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

// AvailableJobs lists open postings the user has not applied to
func (uc *applicationUsecase) AvailableJobs(ctx context.Context, userID int64) ([]domain.JobPosting, error) {
	jobs, err := uc.applicationRepo.AvailableJobs(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

// Summary aggregates the user's applications into the profile dashboard view
func (uc *applicationUsecase) Summary(ctx context.Context, userID int64) (*domain.ApplicationsSummary, error) {
	apps, err := uc.applicationRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	summary := &domain.ApplicationsSummary{
		TotalApplications:  len(apps),
		StatusDistribution: make(map[string]int),
		CanApplyMore:       len(apps) == 0,
	}

	var scoreSum float64
	for _, app := range apps {
		summary.StatusDistribution[app.Status]++
		scoreSum += app.Score
		if summary.LastApplication == nil || app.AppliedAt.After(*summary.LastApplication) {
			applied := app.AppliedAt
			summary.LastApplication = &applied
		}
	}
	if len(apps) > 0 {
		summary.AverageScore = math.Round(scoreSum/float64(len(apps))*100) / 100
	}
	return summary, nil
}

// ListAll returns every application with applicant names (admin only)
func (uc *applicationUsecase) ListAll(ctx context.Context, callerRole string) ([]domain.JobApplication, error) {
	if callerRole != domain.RoleAdmin {
		return nil, apperror.Forbidden("Admin access required")
	}
	apps, err := uc.applicationRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// Statistics returns catalog-wide aggregates (admin only)
func (uc *applicationUsecase) Statistics(ctx context.Context, callerRole string) (*domain.ApplicationStatistics, error) {
	if callerRole != domain.RoleAdmin {
		return nil, apperror.Forbidden("Admin access required")
	}
	stats, err := uc.applicationRepo.Statistics(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return stats, nil
}

func joinIDs(ids []int64) string {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ", ")
}

func formatScores(scores []float64) string {
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = strconv.FormatFloat(s, 'f', 1, 64)
	}
	return strings.Join(parts, ", ")
}
