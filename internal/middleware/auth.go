package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	portssvc "github.com/hqasem/small-biz-erp/internal/core/ports/services"
)

// RequireAuth creates a Gin middleware that extracts the bearer token,
// verifies it through the auth service, and stores the resolved user in the
// request context. Every failure mode yields 401; the caller cannot tell a
// malformed token apart from an expired one.
func RequireAuth(authService portssvc.AuthSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		user, err := authService.VerifyToken(c.Request.Context(), parts[1])
		if err != nil {
			logger.Warn("Token verification failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx := withUser(c.Request.Context(), user)
		enrichedLogger := logger.With(slog.Int64("user_id", user.UserID))
		ctx = withLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequirePermission creates a Gin middleware that checks the authenticated
// user's role for the named permission. It must run after RequireAuth.
// Denial yields 403, distinct from the 401 of a failed authentication.
func RequirePermission(authService portssvc.AuthSvcFacade, permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		user, ok := GetUserFromContext(c)
		if !ok {
			logger.Error("RequirePermission used without RequireAuth")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if err := authService.Authorize(c.Request.Context(), user, permission); err != nil {
			logger.Warn("Permission denied",
				slog.Int64("role_id", user.RoleID),
				slog.String("permission", permission))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		c.Next()
	}
}
