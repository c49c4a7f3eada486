package postgres

import (
	"context"
	"errors"
	"time"

	"recruitment-intake-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type militaryRepo struct {
	db *pgxpool.Pool
}

// NewMilitaryRepository creates a new military service repository
func NewMilitaryRepository(db *pgxpool.Pool) domain.MilitaryRepository {
	return &militaryRepo{db: db}
}

func (r *militaryRepo) Create(ctx context.Context, m *domain.MilitaryService) error {
	const query = `
		INSERT INTO military_services (user_id, status, exemption_kind, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	m.CreatedAt = time.Now()
	err := r.db.QueryRow(ctx, query,
		m.UserID, m.Status, m.ExemptionKind, m.StartDate, m.EndDate, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *militaryRepo) GetByUserID(ctx context.Context, userID int64) (*domain.MilitaryService, error) {
	const query = `
		SELECT id, user_id, status, exemption_kind, start_date, end_date, created_at, updated_at
		FROM military_services
		WHERE user_id = $1`

	var m domain.MilitaryService
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&m.ID, &m.UserID, &m.Status, &m.ExemptionKind,
		&m.StartDate, &m.EndDate, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *militaryRepo) Update(ctx context.Context, m *domain.MilitaryService) error {
	const query = `
		UPDATE military_services
		SET status = $2, exemption_kind = $3, start_date = $4, end_date = $5, updated_at = $6
		WHERE user_id = $1`

	now := time.Now()
	result, err := r.db.Exec(ctx, query,
		m.UserID, m.Status, m.ExemptionKind, m.StartDate, m.EndDate, now,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	m.UpdatedAt = &now
	return nil
}

func (r *militaryRepo) Delete(ctx context.Context, userID int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM military_services WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
