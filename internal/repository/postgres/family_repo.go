package postgres

import (
	"context"
	"errors"
	"time"

	"recruitment-intake-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type familyRepo struct {
	db *pgxpool.Pool
}

// NewFamilyRepository creates a new family member repository
func NewFamilyRepository(db *pgxpool.Pool) domain.FamilyRepository {
	return &familyRepo{db: db}
}

func (r *familyRepo) Create(ctx context.Context, f *domain.FamilyMember) error {
	const query = `
		INSERT INTO family_members (user_id, relation, full_name, birth_year, education, occupation, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	f.CreatedAt = time.Now()
	return r.db.QueryRow(ctx, query,
		f.UserID, f.Relation, f.FullName, f.BirthYear, f.Education, f.Occupation, f.CreatedAt,
	).Scan(&f.ID)
}

func (r *familyRepo) GetByID(ctx context.Context, id, userID int64) (*domain.FamilyMember, error) {
	const query = `
		SELECT id, user_id, relation, full_name, birth_year, education, occupation, created_at, updated_at
		FROM family_members
		WHERE id = $1 AND user_id = $2`

	var f domain.FamilyMember
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&f.ID, &f.UserID, &f.Relation, &f.FullName, &f.BirthYear,
		&f.Education, &f.Occupation, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *familyRepo) ListByUser(ctx context.Context, userID int64) ([]domain.FamilyMember, error) {
	const query = `
		SELECT id, user_id, relation, full_name, birth_year, education, occupation, created_at, updated_at
		FROM family_members
		WHERE user_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.FamilyMember
	for rows.Next() {
		var f domain.FamilyMember
		if err := rows.Scan(
			&f.ID, &f.UserID, &f.Relation, &f.FullName, &f.BirthYear,
			&f.Education, &f.Occupation, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

func (r *familyRepo) Update(ctx context.Context, f *domain.FamilyMember) error {
	const query = `
		UPDATE family_members
		SET relation = $3, full_name = $4, birth_year = $5, education = $6, occupation = $7, updated_at = $8
		WHERE id = $1 AND user_id = $2`

	now := time.Now()
	result, err := r.db.Exec(ctx, query,
		f.ID, f.UserID, f.Relation, f.FullName, f.BirthYear, f.Education, f.Occupation, now,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	f.UpdatedAt = &now
	return nil
}

func (r *familyRepo) Delete(ctx context.Context, id, userID int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM family_members WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
