package postgres

import (
	"context"
	"errors"
	"time"

	"recruitment-intake-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicantRepo struct {
	db *pgxpool.Pool
}

// NewApplicantRepository creates a new applicant profile repository
func NewApplicantRepository(db *pgxpool.Pool) domain.ApplicantRepository {
	return &applicantRepo{db: db}
}

func (r *applicantRepo) Create(ctx context.Context, a *domain.Applicant) error {
	const query = `
		INSERT INTO applicants (user_id, first_name, last_name, father_name, national_id,
		                        birth_date, gender, marital_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	a.CreatedAt = time.Now()
	err := r.db.QueryRow(ctx, query,
		a.UserID, a.FirstName, a.LastName, a.FatherName, a.NationalID,
		a.BirthDate, a.Gender, a.MaritalStatus, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *applicantRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Applicant, error) {
	const query = `
		SELECT id, user_id, first_name, last_name, father_name, national_id,
		       birth_date, gender, marital_status, created_at, updated_at
		FROM applicants
		WHERE user_id = $1`

	var a domain.Applicant
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&a.ID, &a.UserID, &a.FirstName, &a.LastName, &a.FatherName, &a.NationalID,
		&a.BirthDate, &a.Gender, &a.MaritalStatus, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *applicantRepo) Update(ctx context.Context, a *domain.Applicant) error {
	const query = `
		UPDATE applicants
		SET first_name = $2, last_name = $3, father_name = $4, national_id = $5,
		    birth_date = $6, gender = $7, marital_status = $8, updated_at = $9
		WHERE user_id = $1`

	now := time.Now()
	result, err := r.db.Exec(ctx, query,
		a.UserID, a.FirstName, a.LastName, a.FatherName, a.NationalID,
		a.BirthDate, a.Gender, a.MaritalStatus, now,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	a.UpdatedAt = &now
	return nil
}

func (r *applicantRepo) Delete(ctx context.Context, userID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM applicants WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
