package usecase

import (
	"context"
	"errors"
	"time"

	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"
	"recruitment-intake-backend/pkg/auth"
)

const minPasswordLength = 8

// AuthConfig carries the token and hashing parameters the auth flows need.
type AuthConfig struct {
	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	BcryptCost int
}

type authUsecase struct {
	userRepo  domain.UserRepository
	tokenRepo domain.TokenRepository
	cfg       AuthConfig
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo domain.UserRepository, tokenRepo domain.TokenRepository, cfg AuthConfig) domain.AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		cfg:       cfg,
	}
}

// Register creates a new applicant account keyed by mobile number
func (uc *authUsecase) Register(ctx context.Context, mobile, password string, email *string) (*domain.User, error) {
	if len(password) < minPasswordLength {
		return nil, apperror.BadRequest("Password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(password, uc.cfg.BcryptCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Mobile:       mobile,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		IsActive:     true,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, apperror.Conflict("Email already registered")
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("Mobile number already registered")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// Login verifies credentials and issues a fresh token pair. The same error
// message covers unknown mobile and wrong password so the endpoint does not
// leak which accounts exist.
func (uc *authUsecase) Login(ctx context.Context, mobile, password string) (*domain.User, *domain.TokenPair, error) {
	user, err := uc.userRepo.GetByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.Unauthorized("Invalid mobile number or password")
		}
		return nil, nil, apperror.Internal(err)
	}
	if !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, nil, apperror.Unauthorized("Invalid mobile number or password")
	}
	if !user.IsActive {
		return nil, nil, apperror.Forbidden("Account is disabled")
	}

	pair, err := uc.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair issued, so a replayed token fails loudly instead of working twice.
func (uc *authUsecase) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	tokenHash := auth.HashRefreshRaw(refreshToken)
	userID, err := uc.tokenRepo.UserIDForRefresh(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid or expired refresh token")
		}
		return nil, apperror.Internal(err)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid or expired refresh token")
	}
	if !user.IsActive {
		return nil, apperror.Forbidden("Account is disabled")
	}

	if err := uc.tokenRepo.RevokeRefresh(ctx, tokenHash); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	return uc.issueTokens(ctx, user)
}

// Logout revokes the presented refresh token. Unknown tokens are a no-op;
// logging out twice is not an error.
func (uc *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	err := uc.tokenRepo.RevokeRefresh(ctx, auth.HashRefreshRaw(refreshToken))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return apperror.Internal(err)
	}
	return nil
}

// ChangePassword verifies the old password, stores the new hash, and revokes
// every outstanding refresh session for the user.
func (uc *authUsecase) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return apperror.BadRequest("Password must be at least 8 characters")
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}
	if !auth.VerifyPassword(user.PasswordHash, oldPassword) {
		return apperror.Unauthorized("Current password is incorrect")
	}

	hash, err := auth.HashPassword(newPassword, uc.cfg.BcryptCost)
	if err != nil {
		return apperror.Internal(err)
	}
	if err := uc.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return apperror.Internal(err)
	}
	if err := uc.tokenRepo.RevokeAllForUser(ctx, userID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// GetCurrentUser returns the authenticated user's account
func (uc *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (uc *authUsecase) issueTokens(ctx context.Context, user *domain.User) (*domain.TokenPair, error) {
	access, err := auth.NewAccessToken(uc.cfg.JWTSecret, user.ID, user.Role, uc.cfg.AccessTTL)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	refresh, err := auth.NewRefreshToken(uc.cfg.RefreshTTL)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if err := uc.tokenRepo.StoreRefresh(ctx, user.ID, auth.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.TokenPair{
		AccessToken:      access.Token,
		AccessExpiresAt:  access.Exp,
		RefreshToken:     refresh.Raw,
		RefreshExpiresAt: refresh.Exp,
	}, nil
}
