// Package service defines the interfaces for collaborators the session core
// depends on. Implementations live in the infra layer.
package service

import (
	"context"

	"jobfinder/internal/domain/entity"
)

// CredentialStore persists the single session record across app restarts.
// Load returns (nil, nil) when no record exists. Save overwrites and Clear
// is idempotent. Implementations must treat a corrupt record as absent.
type CredentialStore interface {
	Load(ctx context.Context) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session) error
	Clear(ctx context.Context) error
}
