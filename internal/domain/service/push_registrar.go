package service

import "context"

// PushRegistrar syncs the device push token with the backend after login.
// The call is fire-and-forget: failures are logged by the caller and never
// affect the session.
type PushRegistrar interface {
	SyncPushToken(ctx context.Context, accountID string) error
}
