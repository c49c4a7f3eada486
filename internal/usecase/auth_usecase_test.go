package usecase_test

import (
	"context"
	"testing"
	"time"

	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/internal/usecase"
	"recruitment-intake-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByMobile(ctx context.Context, mobile string) (*domain.User, error) {
	args := m.Called(ctx, mobile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

type MockTokenRepo struct {
	mock.Mock
}

func (m *MockTokenRepo) StoreRefresh(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	return m.Called(ctx, userID, tokenHash, expiresAt).Error(0)
}

func (m *MockTokenRepo) UserIDForRefresh(ctx context.Context, tokenHash string) (int64, error) {
	args := m.Called(ctx, tokenHash)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenRepo) RevokeRefresh(ctx context.Context, tokenHash string) error {
	return m.Called(ctx, tokenHash).Error(0)
}

func (m *MockTokenRepo) RevokeAllForUser(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func testAuthConfig() usecase.AuthConfig {
	return usecase.AuthConfig{
		JWTSecret:  "test-secret-test-secret-test-secret",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
		BcryptCost: 4,
	}
}

func activeUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword(password, 4)
	assert.NoError(t, err)
	return &domain.User{
		ID:           7,
		Mobile:       "09123456789",
		PasswordHash: hash,
		Role:         domain.RoleUser,
		IsActive:     true,
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects short passwords", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo), new(MockTokenRepo), testAuthConfig())
		_, err := uc.Register(ctx, "09123456789", "short", nil)
		assert.Equal(t, 400, appErrCode(t, err))
	})

	t.Run("duplicate mobile maps to conflict", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicate)

		uc := usecase.NewAuthUsecase(userRepo, new(MockTokenRepo), testAuthConfig())
		_, err := uc.Register(ctx, "09123456789", "correct-horse", nil)

		assert.Equal(t, 409, appErrCode(t, err))
		assert.Contains(t, err.Error(), "Mobile number")
	})

	t.Run("duplicate email is reported as the email, not the mobile", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEmail)

		email := "taken@example.com"
		uc := usecase.NewAuthUsecase(userRepo, new(MockTokenRepo), testAuthConfig())
		_, err := uc.Register(ctx, "09123456789", "correct-horse", &email)

		assert.Equal(t, 409, appErrCode(t, err))
		assert.Contains(t, err.Error(), "Email")
	})

	t.Run("new accounts are active applicants", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Role == domain.RoleUser && u.IsActive && u.Mobile == "09123456789"
		})).Return(nil)

		uc := usecase.NewAuthUsecase(userRepo, new(MockTokenRepo), testAuthConfig())
		user, err := uc.Register(ctx, "09123456789", "correct-horse", nil)

		assert.NoError(t, err)
		assert.True(t, auth.VerifyPassword(user.PasswordHash, "correct-horse"))
		userRepo.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown mobile and wrong password read identically", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByMobile", mock.Anything, "09100000000").Return(nil, domain.ErrNotFound)
		userRepo.On("GetByMobile", mock.Anything, "09123456789").Return(activeUser(t, "correct-horse"), nil)

		uc := usecase.NewAuthUsecase(userRepo, new(MockTokenRepo), testAuthConfig())

		_, _, errUnknown := uc.Login(ctx, "09100000000", "whatever")
		_, _, errWrong := uc.Login(ctx, "09123456789", "not-the-password")

		assert.Equal(t, 401, appErrCode(t, errUnknown))
		assert.Equal(t, 401, appErrCode(t, errWrong))
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})

	t.Run("disabled account is refused after password check", func(t *testing.T) {
		user := activeUser(t, "correct-horse")
		user.IsActive = false
		userRepo := new(MockUserRepo)
		userRepo.On("GetByMobile", mock.Anything, "09123456789").Return(user, nil)

		uc := usecase.NewAuthUsecase(userRepo, new(MockTokenRepo), testAuthConfig())
		_, _, err := uc.Login(ctx, "09123456789", "correct-horse")

		assert.Equal(t, 403, appErrCode(t, err))
	})

	t.Run("issues a stored token pair", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByMobile", mock.Anything, "09123456789").Return(activeUser(t, "correct-horse"), nil)
		tokenRepo := new(MockTokenRepo)
		tokenRepo.On("StoreRefresh", mock.Anything, int64(7), mock.Anything, mock.Anything).Return(nil)

		uc := usecase.NewAuthUsecase(userRepo, tokenRepo, testAuthConfig())
		user, pair, err := uc.Login(ctx, "09123456789", "correct-horse")

		assert.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		// Only the hash reaches the store, never the raw token.
		tokenRepo.AssertCalled(t, "StoreRefresh", mock.Anything, int64(7),
			auth.HashRefreshRaw(pair.RefreshToken), pair.RefreshExpiresAt)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown token is unauthorized", func(t *testing.T) {
		tokenRepo := new(MockTokenRepo)
		tokenRepo.On("UserIDForRefresh", mock.Anything, mock.Anything).Return(int64(0), domain.ErrNotFound)

		uc := usecase.NewAuthUsecase(new(MockUserRepo), tokenRepo, testAuthConfig())
		_, err := uc.Refresh(ctx, "bogus")

		assert.Equal(t, 401, appErrCode(t, err))
	})

	t.Run("rotation revokes the presented token", func(t *testing.T) {
		raw := "0123456789abcdef"
		hash := auth.HashRefreshRaw(raw)
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, int64(7)).Return(activeUser(t, "correct-horse"), nil)
		tokenRepo := new(MockTokenRepo)
		tokenRepo.On("UserIDForRefresh", mock.Anything, hash).Return(int64(7), nil)
		tokenRepo.On("RevokeRefresh", mock.Anything, hash).Return(nil)
		tokenRepo.On("StoreRefresh", mock.Anything, int64(7), mock.Anything, mock.Anything).Return(nil)

		uc := usecase.NewAuthUsecase(userRepo, tokenRepo, testAuthConfig())
		pair, err := uc.Refresh(ctx, raw)

		assert.NoError(t, err)
		assert.NotEqual(t, raw, pair.RefreshToken)
		tokenRepo.AssertCalled(t, "RevokeRefresh", mock.Anything, hash)
	})
}

func TestLogout(t *testing.T) {
	t.Run("revoking an unknown token is not an error", func(t *testing.T) {
		tokenRepo := new(MockTokenRepo)
		tokenRepo.On("RevokeRefresh", mock.Anything, mock.Anything).Return(domain.ErrNotFound)

		uc := usecase.NewAuthUsecase(new(MockUserRepo), tokenRepo, testAuthConfig())
		assert.NoError(t, uc.Logout(context.Background(), "already-gone"))
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("wrong current password is refused", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, int64(7)).Return(activeUser(t, "correct-horse"), nil)

		uc := usecase.NewAuthUsecase(userRepo, new(MockTokenRepo), testAuthConfig())
		err := uc.ChangePassword(ctx, 7, "wrong", "new-password-1")

		assert.Equal(t, 401, appErrCode(t, err))
	})

	t.Run("success stores the new hash and revokes all sessions", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, int64(7)).Return(activeUser(t, "correct-horse"), nil)
		userRepo.On("UpdatePassword", mock.Anything, int64(7), mock.MatchedBy(func(hash string) bool {
			return auth.VerifyPassword(hash, "new-password-1")
		})).Return(nil)
		tokenRepo := new(MockTokenRepo)
		tokenRepo.On("RevokeAllForUser", mock.Anything, int64(7)).Return(nil)

		uc := usecase.NewAuthUsecase(userRepo, tokenRepo, testAuthConfig())
		assert.NoError(t, uc.ChangePassword(ctx, 7, "correct-horse", "new-password-1"))
		userRepo.AssertExpectations(t)
		tokenRepo.AssertExpectations(t)
	})
}
