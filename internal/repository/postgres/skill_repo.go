package postgres

import (
	"context"
	"errors"
	"time"

	"recruitment-intake-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) Create(ctx context.Context, s *domain.Skill) error {
	const query = `
		INSERT INTO skills (user_id, skill_name, skill_level, years_of_experience, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	s.CreatedAt = time.Now()
	return r.db.QueryRow(ctx, query,
		s.UserID, s.Name, s.Level, s.YearsExperience, s.Description, s.CreatedAt,
	).Scan(&s.ID)
}

func (r *skillRepo) GetByID(ctx context.Context, id, userID int64) (*domain.Skill, error) {
	const query = `
		SELECT id, user_id, skill_name, skill_level, years_of_experience, description, created_at, updated_at
		FROM skills
		WHERE id = $1 AND user_id = $2`

	var s domain.Skill
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&s.ID, &s.UserID, &s.Name, &s.Level, &s.YearsExperience,
		&s.Description, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *skillRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Skill, error) {
	const query = `
		SELECT id, user_id, skill_name, skill_level, years_of_experience, description, created_at, updated_at
		FROM skills
		WHERE user_id = $1
		ORDER BY skill_name`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Name, &s.Level, &s.YearsExperience,
			&s.Description, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r *skillRepo) Update(ctx context.Context, s *domain.Skill) error {
	const query = `
		UPDATE skills
		SET skill_name = $3, skill_level = $4, years_of_experience = $5, description = $6, updated_at = $7
		WHERE id = $1 AND user_id = $2`

	now := time.Now()
	result, err := r.db.Exec(ctx, query,
		s.ID, s.UserID, s.Name, s.Level, s.YearsExperience, s.Description, now,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	s.UpdatedAt = &now
	return nil
}

func (r *skillRepo) Delete(ctx context.Context, id, userID int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM skills WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
