package domain

import (
	"context"
	"errors"
	"time"
)

// User roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ErrDuplicateEmail distinguishes an email collision from the mobile one
// so registration can name the field that is taken.
var ErrDuplicateEmail = errors.New("email already registered")

type User struct {
	ID           int64      `json:"id"`
	Mobile       string     `json:"mobile"`
	Email        *string    `json:"email,omitempty"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"is_active"`
	IsVerified   bool       `json:"is_verified"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByMobile(ctx context.Context, mobile string) (*User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// TokenRepository stores hashed refresh tokens keyed by user.
type TokenRepository interface {
	StoreRefresh(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error
	UserIDForRefresh(ctx context.Context, tokenHash string) (int64, error)
	RevokeRefresh(ctx context.Context, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID int64) error
}

// TokenPair is what login and refresh hand back to the client. The refresh
// token is returned raw exactly once; only its hash is persisted.
type TokenPair struct {
	AccessToken      string    `json:"access_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

type AuthUsecase interface {
	Register(ctx context.Context, mobile, password string, email *string) (*User, error)
	Login(ctx context.Context, mobile, password string) (*User, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}
