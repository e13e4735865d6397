package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hqasem/small-biz-erp/internal/apperrors"
	"github.com/hqasem/small-biz-erp/internal/core/domain"
	portsrepo "github.com/hqasem/small-biz-erp/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPermissionRepository struct {
	BaseRepository
}

// NewPgxPermissionRepository creates a new repository for role and
// permission data.
func NewPgxPermissionRepository(pool *pgxpool.Pool) portsrepo.PermissionRepository {
	return &PgxPermissionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PermissionRepository = (*PgxPermissionRepository)(nil)

func (r *PgxPermissionRepository) RoleHasPermission(ctx context.Context, roleID int64, permissionName string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM role_permissions rp
			JOIN permissions p ON p.permission_id = rp.permission_id
			WHERE rp.role_id = $1 AND p.name = $2
		);
	`
	var granted bool
	if err := r.Pool.QueryRow(ctx, query, roleID, permissionName).Scan(&granted); err != nil {
		return false, fmt.Errorf("failed to check role permission: %w", err)
	}
	return granted, nil
}

func (r *PgxPermissionRepository) FindPermissionsByRoleID(ctx context.Context, roleID int64) ([]domain.Permission, error) {
	query := `
		SELECT p.permission_id, p.name, COALESCE(p.description, '')
		FROM role_permissions rp
		JOIN permissions p ON p.permission_id = rp.permission_id
		WHERE rp.role_id = $1
		ORDER BY p.name;
	`
	rows, err := r.Pool.Query(ctx, query, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions for role %d: %w", roleID, err)
	}
	defer rows.Close()

	var permissions []domain.Permission
	for rows.Next() {
		var p domain.Permission
		if err := rows.Scan(&p.PermissionID, &p.Name, &p.Description); err != nil {
			return nil, fmt.Errorf("failed to scan permission row: %w", err)
		}
		permissions = append(permissions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate permission rows: %w", err)
	}
	return permissions, nil
}

func (r *PgxPermissionRepository) FindRoleByID(ctx context.Context, roleID int64) (*domain.Role, error) {
	query := `SELECT role_id, name, COALESCE(description, '') FROM roles WHERE role_id = $1;`
	var role domain.Role
	err := r.Pool.QueryRow(ctx, query, roleID).Scan(&role.RoleID, &role.Name, &role.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find role %d: %w", roleID, err)
	}
	return &role, nil
}
