package postgres

import (
	"context"
	"errors"
	"time"

	"recruitment-intake-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contactRepo struct {
	db *pgxpool.Pool
}

// NewContactRepository creates a new contact info repository
func NewContactRepository(db *pgxpool.Pool) domain.ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) CreateInfo(ctx context.Context, c *domain.ContactInfo) error {
	const query = `
		INSERT INTO contact_infos (user_id, phone, emergency_phone, email, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	c.CreatedAt = time.Now()
	err := r.db.QueryRow(ctx, query,
		c.UserID, c.Phone, c.EmergencyPhone, c.Email, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *contactRepo) GetInfoByUser(ctx context.Context, userID int64) (*domain.ContactInfo, error) {
	const query = `
		SELECT id, user_id, phone, emergency_phone, email, created_at, updated_at
		FROM contact_infos
		WHERE user_id = $1`

	var c domain.ContactInfo
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&c.ID, &c.UserID, &c.Phone, &c.EmergencyPhone, &c.Email, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *contactRepo) UpdateInfo(ctx context.Context, c *domain.ContactInfo) error {
	const query = `
		UPDATE contact_infos
		SET phone = $2, emergency_phone = $3, email = $4, updated_at = $5
		WHERE user_id = $1`

	now := time.Now()
	result, err := r.db.Exec(ctx, query, c.UserID, c.Phone, c.EmergencyPhone, c.Email, now)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	c.UpdatedAt = &now
	return nil
}

func (r *contactRepo) DeleteInfo(ctx context.Context, userID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM contact_infos WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contactRepo) CreateAddress(ctx context.Context, a *domain.Address) error {
	const query = `
		INSERT INTO addresses (user_id, province, city, address, postal_code, housing_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	a.CreatedAt = time.Now()
	return r.db.QueryRow(ctx, query,
		a.UserID, a.Province, a.City, a.Address, a.PostalCode, a.HousingStatus, a.CreatedAt,
	).Scan(&a.ID)
}

func (r *contactRepo) GetAddress(ctx context.Context, id, userID int64) (*domain.Address, error) {
	const query = `
		SELECT id, user_id, province, city, address, postal_code, housing_status, created_at, updated_at
		FROM addresses
		WHERE id = $1 AND user_id = $2`

	var a domain.Address
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&a.ID, &a.UserID, &a.Province, &a.City, &a.Address, &a.PostalCode,
		&a.HousingStatus, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *contactRepo) ListAddresses(ctx context.Context, userID int64) ([]domain.Address, error) {
	const query = `
		SELECT id, user_id, province, city, address, postal_code, housing_status, created_at, updated_at
		FROM addresses
		WHERE user_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Address
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Province, &a.City, &a.Address, &a.PostalCode,
			&a.HousingStatus, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *contactRepo) UpdateAddress(ctx context.Context, a *domain.Address) error {
	const query = `
		UPDATE addresses
		SET province = $3, city = $4, address = $5, postal_code = $6, housing_status = $7, updated_at = $8
		WHERE id = $1 AND user_id = $2`

	now := time.Now()
	result, err := r.db.Exec(ctx, query,
		a.ID, a.UserID, a.Province, a.City, a.Address, a.PostalCode, a.HousingStatus, now,
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

func (r *contactRepo) DeleteAddress(ctx context.Context, id, userID int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM addresses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
