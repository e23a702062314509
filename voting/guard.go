// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"fmt"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/models"
)

// AccessGuard decides caller roles. The administrator is fixed at construction
// and is not a participant unless explicitly registered.
type AccessGuard struct {
	admin    models.Identity
	registry *identityRegistry
}

func (g AccessGuard) IsAdministrator(caller models.Identity) bool {
	return auth.SameIdentity(caller, g.admin)
}

func (g AccessGuard) IsRegisteredParticipant(caller models.Identity) bool {
	return g.registry.isRegistered(caller)
}

func (g AccessGuard) requireAdministrator(caller models.Identity, op string) error {
	if !g.IsAdministrator(caller) {
		return fmt.Errorf("%w: %s is restricted to the administrator", ErrPermissionDenied, op)
	}
	return nil
}

func (g AccessGuard) requireParticipant(caller models.Identity, op string) error {
	if !g.IsRegisteredParticipant(caller) {
		return fmt.Errorf("%w: %s is restricted to registered participants", ErrNotAParticipant, op)
	}
	return nil
}
