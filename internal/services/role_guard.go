package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// RoleGuard authorizes callers against their stored role. Every call hits
// the store so a revoked role takes effect on the next request; the cheaper
// claim-trusting check lives in the middleware layer and must not be used
// where freshness matters.
type RoleGuard struct {
	users UserStore
}

func NewRoleGuard(users UserStore) *RoleGuard {
	return &RoleGuard{users: users}
}

// Authorize resolves the caller's current role by email and checks it
// against the allowed set. Returns the resolved role on success.
func (g *RoleGuard) Authorize(email string, allowed ...string) (string, error) {
	user, err := g.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("resolve role for %s: %w", email, err)
	}
	for _, role := range allowed {
		if user.Role == role {
			return user.Role, nil
		}
	}
	return "", ErrForbidden
}
