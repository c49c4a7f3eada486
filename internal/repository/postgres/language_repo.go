package postgres

import (
	"context"
	"errors"
	"time"

	"recruitment-intake-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type languageRepo struct {
	db *pgxpool.Pool
}

// NewLanguageRepository creates a new language skill repository
func NewLanguageRepository(db *pgxpool.Pool) domain.LanguageRepository {
	return &languageRepo{db: db}
}

func (r *languageRepo) Create(ctx context.Context, l *domain.LanguageSkill) error {
	const query = `
		INSERT INTO language_skills (user_id, language, reading, writing, speaking, certificate, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	l.CreatedAt = time.Now()
	return r.db.QueryRow(ctx, query,
		l.UserID, l.Language, l.Reading, l.Writing, l.Speaking, l.Certificate, l.CreatedAt,
	).Scan(&l.ID)
}

func (r *languageRepo) GetByID(ctx context.Context, id, userID int64) (*domain.LanguageSkill, error) {
	const query = `
		SELECT id, user_id, language, reading, writing, speaking, certificate, created_at, updated_at
		FROM language_skills
		WHERE id = $1 AND user_id = $2`

	var l domain.LanguageSkill
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&l.ID, &l.UserID, &l.Language, &l.Reading, &l.Writing, &l.Speaking,
		&l.Certificate, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *languageRepo) ListByUser(ctx context.Context, userID int64) ([]domain.LanguageSkill, error) {
	const query = `
		SELECT id, user_id, language, reading, writing, speaking, certificate, created_at, updated_at
		FROM language_skills
		WHERE user_id = $1
		ORDER BY language`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.LanguageSkill
	for rows.Next() {
		var l domain.LanguageSkill
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.Language, &l.Reading, &l.Writing, &l.Speaking,
			&l.Certificate, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

func (r *languageRepo) Update(ctx context.Context, l *domain.LanguageSkill) error {
	const query = `
		UPDATE language_skills
		SET language = $3, reading = $4, writing = $5, speaking = $6, certificate = $7, updated_at = $8
		WHERE id = $1 AND user_id = $2`

	now := time.Now()
	result, err := r.db.Exec(ctx, query,
		l.ID, l.UserID, l.Language, l.Reading, l.Writing, l.Speaking, l.Certificate, now,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	l.UpdatedAt = &now
	return nil
}

func (r *languageRepo) Delete(ctx context.Context, id, userID int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM language_skills WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
