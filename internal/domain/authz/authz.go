// Package authz holds the capability predicate evaluated by every service
// before a mutation or a list. Ownership is the email stored on a record's
// userId field; admins pass every check.
package authz

import (
	"errors"

	"welfare-app-go/internal/domain/authn"
)

var ErrForbidden = errors.New("forbidden")

type Actor struct {
	ID    string
	Email string
	Role  string
}

type Action int

const (
	// ActionReadOwn and ActionMutateOwn are owner-scoped record operations.
	ActionReadOwn Action = iota
	ActionMutateOwn
	// Admin-only operations.
	ActionManageScheme
	ActionResolveGrievance
	ActionReviewApplication
	ActionListAll
)

func (a Actor) IsAdmin() bool {
	return a.Role == authn.RoleAdmin
}

// Allow reports whether actor may perform action against a record owned by
// ownerID. ownerID is ignored for admin-only actions.
func Allow(actor Actor, action Action, ownerID string) bool {
	if actor.IsAdmin() {
		return true
	}

	switch action {
	case ActionReadOwn, ActionMutateOwn:
		return ownerID != "" && actor.Email == ownerID
	default:
		return false
	}
}
