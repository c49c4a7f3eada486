package postgres

import (
	"context"
	"errors"
	"time"

	"recruitment-intake-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	const query = `
		INSERT INTO users (mobile, email, password_hash, role, is_active, is_verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	user.CreatedAt = time.Now()
	err := r.db.QueryRow(ctx, query,
		user.Mobile, user.Email, user.PasswordHash, user.Role,
		user.IsActive, user.IsVerified, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		switch uniqueConstraint(err) {
		case "users_email_key":
			return domain.ErrDuplicateEmail
		case "":
		default:
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `
		SELECT id, mobile, email, password_hash, role, is_active, is_verified, created_at, updated_at
		FROM users
		WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByMobile(ctx context.Context, mobile string) (*domain.User, error) {
	const query = `
		SELECT id, mobile, email, password_hash, role, is_active, is_verified, created_at, updated_at
		FROM users
		WHERE mobile = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, mobile))
}

func (r *userRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = $3 WHERE id = $1`,
		id, passwordHash, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) scanOne(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Mobile, &user.Email, &user.PasswordHash, &user.Role,
		&user.IsActive, &user.IsVerified, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
