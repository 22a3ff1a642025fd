// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"jobfinder/internal/domain/entity"
)

// SessionSnapshot is the published view of the session state, consumed by
// the navigation gate and any screen needing identity. It is a value: once
// handed to a subscriber it never mutates.
type SessionSnapshot struct {
	// IsInitializing is true until the restore-at-startup attempt has
	// finished, so the gate can render a placeholder instead of
	// prematurely choosing a tree.
	IsInitializing bool

	// IsAuthenticated is true exactly when a bearer token is present.
	// Account completeness is not required.
	IsAuthenticated bool

	// Account is the current profile snapshot; nullable even while
	// authenticated.
	Account *entity.Account
}

// Unsubscribe detaches a previously registered snapshot listener.
type Unsubscribe func()

// SessionUsecase is the single authority over the session lifecycle.
// Login and Logout are mutually exclusive; a stale login result never
// overwrites a newer session change.
type SessionUsecase interface {
	// RestoreSession loads the persisted session at cold start. Storage
	// failures are absorbed: the app simply starts unauthenticated.
	RestoreSession(ctx context.Context) error

	// Login resolves any accepted credential shape into a canonical
	// session, binds the token, persists the record and publishes the
	// authenticated snapshot. It returns the resolved account, which may
	// be nil even on success. The only surfaced failure is a domain
	// AuthenticationFailed error; a failed login leaves the prior state
	// untouched.
	Login(ctx context.Context, credentials entity.Credentials) (*entity.Account, error)

	// Logout clears store, binder and published identity. Idempotent.
	Logout(ctx context.Context) error

	// Snapshot returns the current published state.
	Snapshot() SessionSnapshot

	// Subscribe registers a listener invoked synchronously after every
	// snapshot change, starting with the current state.
	Subscribe(fn func(SessionSnapshot)) Unsubscribe
}
