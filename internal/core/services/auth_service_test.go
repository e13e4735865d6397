package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/hqasem/small-biz-erp/internal/apperrors"
	"github.com/hqasem/small-biz-erp/internal/core/domain"
	portsrepo "github.com/hqasem/small-biz-erp/internal/core/ports/repositories"
	portssvc "github.com/hqasem/small-biz-erp/internal/core/ports/services"
	"github.com/hqasem/small-biz-erp/internal/core/services"
	"github.com/hqasem/small-biz-erp/internal/platform/config"
	"github.com/hqasem/small-biz-erp/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- Mock PermissionRepository ---

type MockPermissionRepository struct {
	mock.Mock
}

var _ portsrepo.PermissionRepository = (*MockPermissionRepository)(nil)

func (m *MockPermissionRepository) RoleHasPermission(ctx context.Context, roleID int64, permissionName string) (bool, error) {
	args := m.Called(ctx, roleID, permissionName)
	return args.Bool(0), args.Error(1)
}

func (m *MockPermissionRepository) FindPermissionsByRoleID(ctx context.Context, roleID int64) ([]domain.Permission, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Permission), args.Error(1)
}

func (m *MockPermissionRepository) FindRoleByID(ctx context.Context, roleID int64) (*domain.Role, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

// --- Suite ---

type AuthServiceTestSuite struct {
	suite.Suite
	userRepo *MockUserRepository
	permRepo *MockPermissionRepository
	cfg      *config.Config
	service  portssvc.AuthSvcFacade
	ctx      context.Context
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.permRepo = new(MockPermissionRepository)
	s.cfg = &config.Config{
		JWTSecret:             "test-secret",
		JWTExpiryDuration:     24 * time.Hour,
		JWTIssuer:             "small-biz-erp-test",
		AdminFallbackPassword: "admin123",
	}
	s.service = services.NewAuthService(s.cfg, s.userRepo, s.permRepo)
	s.ctx = context.Background()
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) activeUser(hash string) *domain.User {
	return &domain.User{
		UserID:       42,
		Username:     "jdoe",
		Email:        "jdoe@example.com",
		PasswordHash: hash,
		RoleID:       2,
		IsActive:     true,
	}
}

func (s *AuthServiceTestSuite) TestAuthenticateSuccess() {
	hash, err := utils.HashPassword("s3cret-pass")
	s.Require().NoError(err)
	user := s.activeUser(hash)

	s.userRepo.On("FindUserByUsername", s.ctx, "jdoe").Return(user, nil)

	token, gotUser, err := s.service.Authenticate(s.ctx, "jdoe", "s3cret-pass")

	s.Require().NoError(err)
	s.NotEmpty(token)
	s.Equal(int64(42), gotUser.UserID)
	s.Equal(int64(2), gotUser.RoleID)

	// The issued token verifies back to the same user within the TTL window.
	s.userRepo.On("FindUserByID", s.ctx, int64(42)).Return(user, nil)
	verified, err := s.service.VerifyToken(s.ctx, token)
	s.Require().NoError(err)
	s.Equal(user.UserID, verified.UserID)
	s.Equal(user.Username, verified.Username)
}

func (s *AuthServiceTestSuite) TestAuthenticateUnknownUser() {
	s.userRepo.On("FindUserByUsername", s.ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	_, _, err := s.service.Authenticate(s.ctx, "ghost", "whatever")

	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestAuthenticateInactiveUser() {
	hash, err := utils.HashPassword("s3cret-pass")
	s.Require().NoError(err)
	user := s.activeUser(hash)
	user.IsActive = false

	s.userRepo.On("FindUserByUsername", s.ctx, "jdoe").Return(user, nil)

	_, _, err = s.service.Authenticate(s.ctx, "jdoe", "s3cret-pass")

	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestAuthenticateWrongPassword() {
	hash, err := utils.HashPassword("s3cret-pass")
	s.Require().NoError(err)
	s.userRepo.On("FindUserByUsername", s.ctx, "jdoe").Return(s.activeUser(hash), nil)

	_, _, err = s.service.Authenticate(s.ctx, "jdoe", "not-the-password")

	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestAuthenticateFallbackPassword() {
	// Legacy seed user: no stored hash, authenticates against the shared
	// fallback password.
	user := s.activeUser("")
	user.Username = "admin"
	user.RoleID = domain.AdminRoleID
	s.userRepo.On("FindUserByUsername", s.ctx, "admin").Return(user, nil)

	token, gotUser, err := s.service.Authenticate(s.ctx, "admin", "admin123")

	s.Require().NoError(err)
	s.NotEmpty(token)
	s.Equal(domain.AdminRoleID, gotUser.RoleID)
}

func (s *AuthServiceTestSuite) TestAuthenticateFallbackPasswordMismatch() {
	user := s.activeUser("")
	s.userRepo.On("FindUserByUsername", s.ctx, "jdoe").Return(user, nil)

	_, _, err := s.service.Authenticate(s.ctx, "jdoe", "wrong-fallback")

	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestVerifyTokenMalformed() {
	_, err := s.service.VerifyToken(s.ctx, "not-a-token")
	s.ErrorIs(err, apperrors.ErrUnauthenticated)
}

func (s *AuthServiceTestSuite) TestVerifyTokenBadSignature() {
	token, err := utils.GenerateSessionToken(42, "jdoe", "other-secret", time.Hour, s.cfg.JWTIssuer)
	s.Require().NoError(err)

	_, err = s.service.VerifyToken(s.ctx, token)

	s.ErrorIs(err, apperrors.ErrUnauthenticated)
}

func (s *AuthServiceTestSuite) TestVerifyTokenExpired() {
	// Issued with a negative TTL: already past its expiry regardless of a
	// valid signature.
	token, err := utils.GenerateSessionToken(42, "jdoe", s.cfg.JWTSecret, -time.Minute, s.cfg.JWTIssuer)
	s.Require().NoError(err)

	_, err = s.service.VerifyToken(s.ctx, token)

	s.ErrorIs(err, apperrors.ErrUnauthenticated)
	s.userRepo.AssertNotCalled(s.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestVerifyTokenDeletedUser() {
	token, err := utils.GenerateSessionToken(42, "jdoe", s.cfg.JWTSecret, time.Hour, s.cfg.JWTIssuer)
	s.Require().NoError(err)
	s.userRepo.On("FindUserByID", s.ctx, int64(42)).Return(nil, apperrors.ErrNotFound)

	_, err = s.service.VerifyToken(s.ctx, token)

	s.ErrorIs(err, apperrors.ErrUnauthenticated)
}

func (s *AuthServiceTestSuite) TestVerifyTokenDeactivatedUser() {
	token, err := utils.GenerateSessionToken(42, "jdoe", s.cfg.JWTSecret, time.Hour, s.cfg.JWTIssuer)
	s.Require().NoError(err)
	user := s.activeUser("irrelevant")
	user.IsActive = false
	s.userRepo.On("FindUserByID", s.ctx, int64(42)).Return(user, nil)

	_, err = s.service.VerifyToken(s.ctx, token)

	s.ErrorIs(err, apperrors.ErrUnauthenticated)
}

func (s *AuthServiceTestSuite) TestAuthorizeAdminBypass() {
	admin := &domain.User{UserID: 1, RoleID: domain.AdminRoleID, IsActive: true}

	// Admin passes for any permission name, including ones that do not
	// exist in the permission table.
	s.NoError(s.service.Authorize(s.ctx, admin, "journal.write"))
	s.NoError(s.service.Authorize(s.ctx, admin, "no.such.permission"))

	s.permRepo.AssertNotCalled(s.T(), "RoleHasPermission", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestAuthorizeGranted() {
	user := &domain.User{UserID: 7, RoleID: 2, IsActive: true}
	s.permRepo.On("RoleHasPermission", s.ctx, int64(2), "journal.write").Return(true, nil)

	s.NoError(s.service.Authorize(s.ctx, user, "journal.write"))
}

func (s *AuthServiceTestSuite) TestAuthorizeDenied() {
	user := &domain.User{UserID: 7, RoleID: 3, IsActive: true}
	s.permRepo.On("RoleHasPermission", s.ctx, int64(3), "journal.write").Return(false, nil)

	err := s.service.Authorize(s.ctx, user, "journal.write")

	s.ErrorIs(err, apperrors.ErrForbidden)
}
