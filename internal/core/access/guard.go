// Package access decides whether a resolved identity may perform an
// operation. It has no side effects and no dependencies on the transport
// or storage layers; handlers map its errors to HTTP status codes.
package access

import (
	"errors"

	"github.com/google/uuid"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
)

var (
	ErrUnauthenticated  = errors.New("authentication required")
	ErrInsufficientRole = errors.New("insufficient role")
	ErrNotOwner         = errors.New("not the resource owner")
)

// Rule is a single authorization requirement evaluated against the
// identity resolved for the current request (nil means anonymous).
type Rule interface {
	check(identity *domain.Identity) error
}

type anyAuthenticated struct{}

func (anyAuthenticated) check(identity *domain.Identity) error {
	if identity == nil {
		return ErrUnauthenticated
	}
	return nil
}

// AnyAuthenticated passes for every logged-in user regardless of role.
func AnyAuthenticated() Rule { return anyAuthenticated{} }

type roleAtLeast struct {
	role domain.Role
}

func (r roleAtLeast) check(identity *domain.Identity) error {
	if identity == nil {
		return ErrUnauthenticated
	}
	if roleRank(identity.Role) < roleRank(r.role) {
		return ErrInsufficientRole
	}
	return nil
}

// RoleAtLeast passes when the identity's role ranks at or above the given
// role. USER < ADMIN.
func RoleAtLeast(role domain.Role) Rule { return roleAtLeast{role: role} }

type ownerOrRole struct {
	owner uuid.UUID
	role  domain.Role
}

func (r ownerOrRole) check(identity *domain.Identity) error {
	if identity == nil {
		return ErrUnauthenticated
	}
	if identity.ID == r.owner {
		return nil
	}
	if roleRank(identity.Role) >= roleRank(r.role) {
		return nil
	}
	return ErrNotOwner
}

// OwnerOrRole passes when the identity owns the resource or holds at least
// the given role.
func OwnerOrRole(owner uuid.UUID, role domain.Role) Rule {
	return ownerOrRole{owner: owner, role: role}
}

// Require evaluates rule against identity. It returns nil when the
// operation is authorized, ErrUnauthenticated for anonymous callers, and
// ErrInsufficientRole or ErrNotOwner when the caller is known but the rule
// fails.
func Require(identity *domain.Identity, rule Rule) error {
	return rule.check(identity)
}

func roleRank(role domain.Role) int {
	switch role {
	case domain.RoleAdmin:
		return 2
	case domain.RoleUser:
		return 1
	}
	return 0
}
