package postgres

import (
	"context"
	"errors"
	"time"

	"recruitment-intake-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type trainingRepo struct {
	db *pgxpool.Pool
}

// NewTrainingRepository creates a new training course repository
func NewTrainingRepository(db *pgxpool.Pool) domain.TrainingRepository {
	return &trainingRepo{db: db}
}

func (r *trainingRepo) Create(ctx context.Context, t *domain.TrainingCourse) error {
	const query = `
		INSERT INTO training_courses (user_id, title, institute, duration_hours, year, has_certificate, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	t.CreatedAt = time.Now()
	return r.db.QueryRow(ctx, query,
		t.UserID, t.Title, t.Institute, t.DurationHours, t.Year,
		t.HasCertificate, t.Description, t.CreatedAt,
	).Scan(&t.ID)
}

func (r *trainingRepo) GetByID(ctx context.Context, id, userID int64) (*domain.TrainingCourse, error) {
	const query = `
		SELECT id, user_id, title, institute, duration_hours, year, has_certificate, description, created_at, updated_at
		FROM training_courses
		WHERE id = $1 AND user_id = $2`

	var t domain.TrainingCourse
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&t.ID, &t.UserID, &t.Title, &t.Institute, &t.DurationHours, &t.Year,
		&t.HasCertificate, &t.Description, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *trainingRepo) ListByUser(ctx context.Context, userID int64) ([]domain.TrainingCourse, error) {
	const query = `
		SELECT id, user_id, title, institute, duration_hours, year, has_certificate, description, created_at, updated_at
		FROM training_courses
		WHERE user_id = $1
		ORDER BY year DESC NULLS LAST, id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.TrainingCourse
	for rows.Next() {
		var t domain.TrainingCourse
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Title, &t.Institute, &t.DurationHours, &t.Year,
			&t.HasCertificate, &t.Description, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

func (r *trainingRepo) Update(ctx context.Context, t *domain.TrainingCourse) error {
	const query = `
		UPDATE training_courses
		SET title = $3, institute = $4, duration_hours = $5, year = $6, has_certificate = $7, description = $8, updated_at = $9
		WHERE id = $1 AND user_id = $2`

	now := time.Now()
	result, err := r.db.Exec(ctx, query,
		t.ID, t.UserID, t.Title, t.Institute, t.DurationHours, t.Year,
		t.HasCertificate, t.Description, now,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	t.UpdatedAt = &now
	return nil
}

func (r *trainingRepo) Delete(ctx context.Context, id, userID int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM training_courses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
