package postgres

import (
	"context"
	"errors"
	"time"

	"recruitment-intake-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

// CreateWithAssignment inserts the posting and records the creating admin
// as its assignee in the same transaction.
func (r *jobRepo) CreateWithAssignment(ctx context.Context, job *domain.JobPosting, adminID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const insertJob = `
		INSERT INTO jobs (title, company, location, posted_date, deadline, description,
		                  requirements, salary, job_type, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	job.CreatedAt = time.Now()
	if err := tx.QueryRow(ctx, insertJob,
		job.Title, job.Company, job.Location, job.PostedDate, job.Deadline,
		job.Description, job.Requirements, job.Salary, job.JobType, job.IsActive,
		job.CreatedAt,
	).Scan(&job.ID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO admin_jobs (admin_id, job_id, created_at) VALUES ($1, $2, $3)`,
		adminID, job.ID, job.CreatedAt,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	const query = `
		SELECT id, title, company, location, posted_date, deadline, description,
		       requirements, salary, job_type, is_active, created_at, updated_at
		FROM jobs
		WHERE id = $1`

	var job domain.JobPosting
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.Company, &job.Location, &job.PostedDate, &job.Deadline,
		&job.Description, &job.Requirements, &job.Salary, &job.JobType, &job.IsActive,
		&job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// GetByIDs fetches the postings for the given ids. Missing ids are simply
// absent from the result; the caller decides what that means.
func (r *jobRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.JobPosting, error) {
	const query = `
		SELECT id, title, company, location, posted_date, deadline, description,
		       requirements, salary, job_type, is_active, created_at, updated_at
		FROM jobs
		WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobs(rows)
}

func (r *jobRepo) Fetch(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.JobPosting, int64, error) {
	const query = `
		SELECT id, title, company, location, posted_date, deadline, description,
		       requirements, salary, job_type, is_active, created_at, updated_at
		FROM jobs
		WHERE ($1 = FALSE OR is_active = TRUE)
		ORDER BY posted_date DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, activeOnly, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs, err := scanJobs(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM jobs WHERE ($1 = FALSE OR is_active = TRUE)`, activeOnly,
	).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// FetchByAdmin returns only postings assigned to the given admin.
func (r *jobRepo) FetchByAdmin(ctx context.Context, adminID int64, activeOnly bool, limit, offset int) ([]domain.JobPosting, int64, error) {
	const query = `
		SELECT j.id, j.title, j.company, j.location, j.posted_date, j.deadline, j.description,
		       j.requirements, j.salary, j.job_type, j.is_active, j.created_at, j.updated_at
		FROM jobs j
		JOIN admin_jobs aj ON aj.job_id = j.id
		WHERE aj.admin_id = $1 AND ($2 = FALSE OR j.is_active = TRUE)
		ORDER BY j.posted_date DESC
		LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, query, adminID, activeOnly, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs, err := scanJobs(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM jobs j
		JOIN admin_jobs aj ON aj.job_id = j.id
		WHERE aj.admin_id = $1 AND ($2 = FALSE OR j.is_active = TRUE)`,
		adminID, activeOnly,
	).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.JobPosting) error {
	const query = `
		UPDATE jobs
		SET title = $2, company = $3, location = $4, posted_date = $5, deadline = $6,
		    description = $7, requirements = $8, salary = $9, job_type = $10,
		    is_active = $11, updated_at = $12
		WHERE id = $1`

	now := time.Now()
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Company, job.Location, job.PostedDate, job.Deadline,
		job.Description, job.Requirements, job.Salary, job.JobType, job.IsActive, now,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	job.UpdatedAt = &now
	return nil
}

// Delete removes the posting's assignments and then the posting itself
// in one transaction. Callers must have checked for dependent
// applications first.
func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM admin_jobs WHERE job_id = $1`, id); err != nil {
		return err
	}
	result, err := tx.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *jobRepo) AssignmentExists(ctx context.Context, adminID, jobID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM admin_jobs WHERE admin_id = $1 AND job_id = $2)`,
		adminID, jobID,
	).Scan(&exists)
	return exists, err
}

func (r *jobRepo) CountApplications(ctx context.Context, jobID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM job_applications WHERE job_id = $1`, jobID,
	).Scan(&count)
	return count, err
}

func scanJobs(rows pgx.Rows) ([]domain.JobPosting, error) {
	var jobs []domain.JobPosting
	for rows.Next() {
		var job domain.JobPosting
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Company, &job.Location, &job.PostedDate, &job.Deadline,
			&job.Description, &job.Requirements, &job.Salary, &job.JobType, &job.IsActive,
			&job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}
