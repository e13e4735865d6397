package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/hqasem/small-biz-erp/internal/core/domain"
)

// userCtxKey is the key under which the authenticated user is stored in the
// request context by RequireAuth.
const userCtxKey = contextKey("authUser")

// GetUserFromContext retrieves the authenticated user placed in the request
// context by RequireAuth. It returns the user and a boolean indicating
// whether one was found.
func GetUserFromContext(c *gin.Context) (*domain.User, bool) {
	user, ok := c.Request.Context().Value(userCtxKey).(*domain.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

func withUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userCtxKey, user)
}
