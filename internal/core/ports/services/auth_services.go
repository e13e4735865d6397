package services

import (
	"context"

	"github.com/hqasem/small-biz-erp/internal/core/domain"
)

// AuthSvcFacade owns credential verification, session token issuance and
// verification, and role-based permission evaluation.
type AuthSvcFacade interface {
	// Authenticate verifies the credentials and issues a signed session
	// token. Every failure mode surfaces as apperrors.ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (string, *domain.User, error)
	// VerifyToken fails closed: malformed, badly signed, or expired tokens
	// all yield apperrors.ErrUnauthenticated. A valid token is re-resolved
	// against the user store so deactivated users lose access immediately.
	VerifyToken(ctx context.Context, token string) (*domain.User, error)
	// Authorize returns nil when the user's role grants the permission, or
	// apperrors.ErrForbidden. Members of the admin role always pass.
	Authorize(ctx context.Context, user *domain.User, permission string) error
}
