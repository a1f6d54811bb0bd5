package postgres

import (
	"context"

	"github.com/clearpath-coaching/site-api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RoleRepository reads role assignments backing the authorization gate.
type RoleRepository struct {
	pool *pgxpool.Pool
}

func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

func (r *RoleRepository) HasRole(ctx context.Context, userID, role string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, role).Scan(&exists); err != nil {
		if isInvalidUUID(err) {
			return false, nil
		}
		return false, &domain.StoreError{Op: "check role", Err: err}
	}
	return exists, nil
}

// GrantRole assigns a role to an identity. Granting an already-held role is a
// no-op.
func (r *RoleRepository) GrantRole(ctx context.Context, userID, role string) error {
	const stmt = `
INSERT INTO user_roles (user_id, role)
VALUES ($1, $2)
ON CONFLICT (user_id, role) DO NOTHING`
	if _, err := r.pool.Exec(ctx, stmt, userID, role); err != nil {
		return &domain.StoreError{Op: "grant role", Err: err}
	}
	return nil
}
