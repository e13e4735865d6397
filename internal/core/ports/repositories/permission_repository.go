package repositories

import (
	"context"

	"github.com/hqasem/small-biz-erp/internal/core/domain"
)

// PermissionRepository defines persistence operations for the
// role/permission grant model.
type PermissionRepository interface {
	// RoleHasPermission reports whether a role_permission row links roleID
	// to the named permission.
	RoleHasPermission(ctx context.Context, roleID int64, permissionName string) (bool, error)
	FindPermissionsByRoleID(ctx context.Context, roleID int64) ([]domain.Permission, error)
	FindRoleByID(ctx context.Context, roleID int64) (*domain.Role, error)
}
