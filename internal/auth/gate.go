package auth

import (
	"context"
	"log"
)

// AdminRole is the role name that grants event mutation rights.
const AdminRole = "admin"

// RoleStore looks up role assignments for an identity. The identity provider
// itself is an external collaborator; only the role record is ours.
type RoleStore interface {
	HasRole(ctx context.Context, userID, role string) (bool, error)
}

// Gate answers "may this caller mutate events". It has no side effects of its
// own: every check is a fresh read of the role store.
type Gate struct {
	roles  RoleStore
	logger *log.Logger
}

func NewGate(roles RoleStore, logger *log.Logger) *Gate {
	if logger == nil {
		logger = log.Default()
	}
	return &Gate{roles: roles, logger: logger}
}

// Check resolves the caller's capability. An empty user ID or a role store
// failure resolves to NotAdmin: the gate fails closed and never surfaces an
// error to the caller.
func (g *Gate) Check(ctx context.Context, userID string) Capability {
	if userID == "" {
		return CapabilityNotAdmin
	}
	isAdmin, err := g.roles.HasRole(ctx, userID, AdminRole)
	if err != nil {
		g.logger.Printf("WARN: role check for %s failed, treating as not admin: %v", userID, err)
		return CapabilityNotAdmin
	}
	if isAdmin {
		return CapabilityAdmin
	}
	return CapabilityNotAdmin
}
