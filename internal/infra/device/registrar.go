// Package device collects device metadata and registers the push token with
// the backend.
package device

import (
	"context"
	"log/slog"
	"os"
	"runtime"

	"jobfinder/config"
	"jobfinder/internal/domain/service"
	"jobfinder/internal/infra/api"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// registrar implements the PushRegistrar interface. The push token is an
// install-scoped identifier; on platforms with a real notification provider
// it would be replaced by the provider-issued token.
type registrar struct {
	client     *api.Client
	logger     *slog.Logger
	enabled    bool
	appVersion string
	pushToken  string
}

// RegistrarParams holds dependencies for the push registrar, injected by Fx.
type RegistrarParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Client *api.Client
}

// NewPushRegistrar is the constructor for registrar.
func NewPushRegistrar(params RegistrarParams) service.PushRegistrar {
	enabled := params.Config.Push != nil && params.Config.Push.Enabled

	return &registrar{
		client:     params.Client,
		logger:     params.Logger,
		enabled:    enabled,
		appVersion: params.Config.Env.AppVersion,
		pushToken:  uuid.New().String(),
	}
}

// SyncPushToken sends the device push token and metadata to the backend.
// Disabled push configuration makes this a no-op.
func (r *registrar) SyncPushToken(ctx context.Context, accountID string) error {
	if !r.enabled {
		r.logger.Debug("Push registration disabled, skipping sync")

		return nil
	}

	payload := &api.PushTokenPayload{
		Token:      r.pushToken,
		DeviceID:   deviceID(),
		Platform:   runtime.GOOS,
		AppVersion: r.appVersion,
		AccountID:  accountID,
	}

	return r.client.RegisterPushToken(ctx, payload)
}

func deviceID() string {
	hostname, err := os.Hostname()
	if err != nil {
		return ""
	}

	return hostname
}
