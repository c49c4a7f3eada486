package postgres

import (
	"context"
	"errors"
	"time"

	"recruitment-intake-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type experienceRepo struct {
	db *pgxpool.Pool
}

// NewWorkExperienceRepository creates a new work experience repository
func NewWorkExperienceRepository(db *pgxpool.Pool) domain.WorkExperienceRepository {
	return &experienceRepo{db: db}
}

func (r *experienceRepo) Create(ctx context.Context, w *domain.WorkExperience) error {
	const query = `
		INSERT INTO work_experiences (user_id, company, position, start_date, end_date,
		                              currently_working, job_description, leaving_reason,
		                              salary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	w.CreatedAt = time.Now()
	return r.db.QueryRow(ctx, query,
		w.UserID, w.Company, w.Position, w.StartDate, w.EndDate,
		w.CurrentlyWorking, w.JobDescription, w.LeavingReason, w.Salary, w.CreatedAt,
	).Scan(&w.ID)
}

func (r *experienceRepo) GetByID(ctx context.Context, id, userID int64) (*domain.WorkExperience, error) {
	const query = `
		SELECT id, user_id, company, position, start_date, end_date, currently_working,
		       job_description, leaving_reason, salary, created_at, updated_at
		FROM work_experiences
		WHERE id = $1 AND user_id = $2`

	var w domain.WorkExperience
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&w.ID, &w.UserID, &w.Company, &w.Position, &w.StartDate, &w.EndDate,
		&w.CurrentlyWorking, &w.JobDescription, &w.LeavingReason, &w.Salary,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (r *experienceRepo) ListByUser(ctx context.Context, userID int64) ([]domain.WorkExperience, error) {
	const query = `
		SELECT id, user_id, company, position, start_date, end_date, currently_working,
		       job_description, leaving_reason, salary, created_at, updated_at
		FROM work_experiences
		WHERE user_id = $1
		ORDER BY start_date DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.WorkExperience
	for rows.Next() {
		var w domain.WorkExperience
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.Company, &w.Position, &w.StartDate, &w.EndDate,
			&w.CurrentlyWorking, &w.JobDescription, &w.LeavingReason, &w.Salary,
			&w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	return items, rows.Err()
}

func (r *experienceRepo) Update(ctx context.Context, w *domain.WorkExperience) error {
	const query = `
		UPDATE work_experiences
		SET company = $3, position = $4, start_date = $5, end_date = $6,
		    currently_working = $7, job_description = $8, leaving_reason = $9,
		    salary = $10, updated_at = $11
		WHERE id = $1 AND user_id = $2`

	now := time.Now()
	result, err := r.db.Exec(ctx, query,
		w.ID, w.UserID, w.Company, w.Position, w.StartDate, w.EndDate,
		w.CurrentlyWorking, w.JobDescription, w.LeavingReason, w.Salary, now,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	w.UpdatedAt = &now
	return nil
}

func (r *experienceRepo) Delete(ctx context.Context, id, userID int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM work_experiences WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
