package postgres

import (
	"context"
	"errors"
	"time"

	"recruitment-intake-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type educationRepo struct {
	db *pgxpool.Pool
}

// NewEducationRepository creates a new education repository
func NewEducationRepository(db *pgxpool.Pool) domain.EducationRepository {
	return &educationRepo{db: db}
}

func (r *educationRepo) Create(ctx context.Context, e *domain.Education) error {
	const query = `
		INSERT INTO educations (user_id, degree, field, university, average, start_year,
		                        end_year, study_status, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	e.CreatedAt = time.Now()
	return r.db.QueryRow(ctx, query,
		e.UserID, e.Degree, e.Field, e.University, e.Average, e.StartYear,
		e.EndYear, e.StudyStatus, e.Description, e.CreatedAt,
	).Scan(&e.ID)
}

func (r *educationRepo) GetByID(ctx context.Context, id, userID int64) (*domain.Education, error) {
	const query = `
		SELECT id, user_id, degree, field, university, average, start_year,
		       end_year, study_status, description, created_at, updated_at
		FROM educations
		WHERE id = $1 AND user_id = $2`

	var e domain.Education
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&e.ID, &e.UserID, &e.Degree, &e.Field, &e.University, &e.Average, &e.StartYear,
		&e.EndYear, &e.StudyStatus, &e.Description, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *educationRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Education, error) {
	const query = `
		SELECT id, user_id, degree, field, university, average, start_year,
		       end_year, study_status, description, created_at, updated_at
		FROM educations
		WHERE user_id = $1
		ORDER BY start_year DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Education
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Degree, &e.Field, &e.University, &e.Average, &e.StartYear,
			&e.EndYear, &e.StudyStatus, &e.Description, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *educationRepo) Update(ctx context.Context, e *domain.Education) error {
	const query = `
		UPDATE educations
		SET degree = $3, field = $4, university = $5, average = $6, start_year = $7,
		    end_year = $8, study_status = $9, description = $10, updated_at = $11
		WHERE id = $1 AND user_id = $2`

	now := time.Now()
	result, err := r.db.Exec(ctx, query,
		e.ID, e.UserID, e.Degree, e.Field, e.University, e.Average, e.StartYear,
		e.EndYear, e.StudyStatus, e.Description, now,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	e.UpdatedAt = &now
	return nil
}

func (r *educationRepo) Delete(ctx context.Context, id, userID int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM educations WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
