package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recruitment-intake-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// CreateBatch re-checks the one-shot precondition and inserts the whole
// batch inside one serializable transaction. A concurrent submission from
// the same user either serializes behind this transaction (and fails the
// count check) or trips the (user_id, job_id) unique constraint; both
// surface as domain.ErrAlreadyApplied and leave no rows behind.
func (r *applicationRepo) CreateBatch(ctx context.Context, userID int64, selections []domain.JobSelection) ([]domain.JobApplication, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var existing int64
	if err := tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM job_applications WHERE user_id = $1`, userID,
	).Scan(&existing); err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, domain.ErrAlreadyApplied
	}

	const insert = `
		INSERT INTO job_applications (user_id, job_id, score, priority, status, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	now := time.Now()
	apps := make([]domain.JobApplication, 0, len(selections))
	for _, sel := range selections {
		app := domain.JobApplication{
			UserID:    userID,
			JobID:     sel.JobID,
			Score:     sel.Score,
			Priority:  sel.Priority,
			Status:    domain.ApplicationStatusPending,
			AppliedAt: now,
		}
		if err := tx.QueryRow(ctx, insert,
			app.UserID, app.JobID, app.Score, app.Priority, app.Status, app.AppliedAt,
		).Scan(&app.ID); err != nil {
			if isUniqueViolation(err) {
				return nil, domain.ErrAlreadyApplied
			}
			return nil, err
		}
		apps = append(apps, app)
	}

	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) || isSerializationFailure(err) {
			return nil, domain.ErrAlreadyApplied
		}
		return nil, err
	}
	return apps, nil
}

// GetByID retrieves one application scoped to its owner, with job data.
func (r *applicationRepo) GetByID(ctx context.Context, id, userID int64) (*domain.JobApplication, error) {
	const query = `
		SELECT
			a.id, a.user_id, a.job_id, a.score, a.priority, a.status, a.applied_at, a.updated_at,
			j.title, j.company, j.location
		FROM job_applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		WHERE a.id = $1 AND a.user_id = $2`

	var app domain.JobApplication
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&app.ID, &app.UserID, &app.JobID, &app.Score, &app.Priority, &app.Status,
		&app.AppliedAt, &app.UpdatedAt,
		&app.JobTitle, &app.Company, &app.Location,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// GetByUserID retrieves a user's applications ordered by priority.
func (r *applicationRepo) GetByUserID(ctx context.Context, userID int64) ([]domain.JobApplication, error) {
	const query = `
		SELECT
			a.id, a.user_id, a.job_id, a.score, a.priority, a.status, a.applied_at, a.updated_at,
			j.title, j.company, j.location
		FROM job_applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		WHERE a.user_id = $1
		ORDER BY a.priority`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanApplications(rows, false)
}

func (r *applicationRepo) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM job_applications WHERE user_id = $1`, userID,
	).Scan(&count)
	return count, err
}

// Update persists status/score/priority and refreshes updated_at. Scoped
// to the owning user.
func (r *applicationRepo) Update(ctx context.Context, app *domain.JobApplication) error {
	const query = `
		UPDATE job_applications
		SET status = $3, score = $4, priority = $5, updated_at = $6
		WHERE id = $1 AND user_id = $2`

	now := time.Now()
	result, err := r.db.Exec(ctx, query, app.ID, app.UserID, app.Status, app.Score, app.Priority, now)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	app.UpdatedAt = &now
	return nil
}

// Delete removes one application (withdrawal), scoped to the owning user.
func (r *applicationRepo) Delete(ctx context.Context, id, userID int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM job_applications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AvailableJobs returns active, non-expired postings the user has not
// applied to, newest first.
func (r *applicationRepo) AvailableJobs(ctx context.Context, userID int64) ([]domain.JobPosting, error) {
	const query = `
		SELECT id, title, company, location, posted_date, deadline, description,
		       requirements, salary, job_type, is_active, created_at, updated_at
		FROM jobs
		WHERE is_active = TRUE
		  AND (deadline IS NULL OR deadline >= CURRENT_DATE)
		  AND id NOT IN (SELECT job_id FROM job_applications WHERE user_id = $1)
		ORDER BY posted_date DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobs(rows)
}

// GetAll returns every application with job and applicant data, newest
// first. Admin view.
func (r *applicationRepo) GetAll(ctx context.Context) ([]domain.JobApplication, error) {
	const query = `
		SELECT
			a.id, a.user_id, a.job_id, a.score, a.priority, a.status, a.applied_at, a.updated_at,
			j.title, j.company, j.location,
			ap.first_name || ' ' || ap.last_name AS applicant_name
		FROM job_applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		LEFT JOIN applicants ap ON ap.user_id = a.user_id
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanApplications(rows, true)
}

// Statistics aggregates catalog-wide counts by status and score.
func (r *applicationRepo) Statistics(ctx context.Context) (*domain.ApplicationStatistics, error) {
	stats := &domain.ApplicationStatistics{
		ByStatus: make(map[string]int64),
		ByScore:  make(map[string]int64),
	}

	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM job_applications`,
	).Scan(&stats.TotalApplications); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT status, COUNT(*) FROM job_applications GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.ByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	srows, err := r.db.Query(ctx,
		`SELECT score, COUNT(*) FROM job_applications GROUP BY score`)
	if err != nil {
		return nil, err
	}
	defer srows.Close()
	for srows.Next() {
		var score float64
		var count int64
		if err := srows.Scan(&score, &count); err != nil {
			return nil, err
		}
		stats.ByScore[fmt.Sprintf("%.1f", score)] = count
	}
	if err := srows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

func scanApplications(rows pgx.Rows, withApplicant bool) ([]domain.JobApplication, error) {
	var applications []domain.JobApplication
	for rows.Next() {
		var app domain.JobApplication
		dest := []interface{}{
			&app.ID, &app.UserID, &app.JobID, &app.Score, &app.Priority, &app.Status,
			&app.AppliedAt, &app.UpdatedAt,
			&app.JobTitle, &app.Company, &app.Location,
		}
		if withApplicant {
			dest = append(dest, &app.ApplicantName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return applications, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// uniqueConstraint returns the name of the violated unique constraint,
// or "" when err is not a unique violation.
func uniqueConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName
	}
	return ""
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "40001"
}
