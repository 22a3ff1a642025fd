package devserver

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"jobfinder/config"
	"jobfinder/internal/delivery/navigation"
	"jobfinder/internal/domain/entity"
	"jobfinder/internal/infra/api"
	"jobfinder/internal/infra/auth"
	"jobfinder/internal/infra/device"
	"jobfinder/internal/infra/persistence/bolt"
	"jobfinder/internal/usecase"
	"jobfinder/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appUnderTest struct {
	cfg     *config.Config
	client  *api.Client
	store   *bolt.Store
	session usecase.SessionUsecase
}

// newAppUnderTest wires the real client core against the stub backend, the
// way the Fx graph does in production.
func newAppUnderTest(t *testing.T, ts *httptest.Server, storagePath string) *appUnderTest {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{Push: &config.PushConfig{Enabled: true}}
	cfg.Env.AppVersion = "1.2.3"
	cfg.API.BaseURL = ts.URL
	cfg.API.BasePath = "/api/v1"
	cfg.API.Timeout = 5 * time.Second
	cfg.Storage.Path = storagePath

	client := api.NewClient(api.ClientParams{Config: cfg, Logger: logger})
	store, err := bolt.Open(storagePath, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	session := impl.NewSessionService(impl.SessionServiceParams{
		Store:     store,
		API:       api.AsAuthAPI(client),
		Binder:    api.AsTokenBinder(client),
		Decoder:   auth.NewClaimsDecoder(),
		Registrar: device.NewPushRegistrar(device.RegistrarParams{Config: cfg, Logger: logger, Client: client}),
		Logger:    logger,
	})

	return &appUnderTest{cfg: cfg, client: client, store: store, session: session}
}

func TestEndToEnd_LoginLifecycle(t *testing.T) {
	srv, ts := newTestServer(t)
	accountID, err := srv.SeedAccount("Lan", "lan@example.com", "secret123", "candidate")
	require.NoError(t, err)

	storagePath := filepath.Join(t.TempDir(), "session.db")
	app := newAppUnderTest(t, ts, storagePath)
	ctx := context.Background()

	gate := navigation.NewGate(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	detach := gate.Attach(app.session)
	defer detach()

	// Cold start with nothing saved.
	require.NoError(t, app.session.RestoreSession(ctx))
	assert.Equal(t, navigation.TreeGuest, gate.Current())

	account, err := app.session.Login(ctx, entity.PasswordCredentials{Email: "lan@example.com", Password: "secret123"})
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, accountID, account.ID)
	assert.Equal(t, entity.RoleCandidate, account.Role)
	assert.Equal(t, navigation.TreeCandidate, gate.Current())

	// The session landed on disk with the same token the binder carries.
	saved, err := app.store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, accountID, saved.AccountID)
	assert.NotEmpty(t, saved.Token)

	profile, err := app.client.FetchOwnProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, accountID, profile.ID)

	// The detached push sync reaches the stub eventually.
	assert.Eventually(t, func() bool {
		_, ok := srv.PushRegistrations(accountID)

		return ok
	}, 3*time.Second, 10*time.Millisecond)
	reg, _ := srv.PushRegistrations(accountID)
	assert.Equal(t, "1.2.3", reg.AppVersion)

	require.NoError(t, app.session.Logout(ctx))
	assert.Equal(t, navigation.TreeGuest, gate.Current())

	saved, err = app.store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, saved)

	// The cleared binder no longer authorizes requests.
	_, err = app.client.FetchOwnProfile(ctx)
	require.Error(t, err)
}

func TestEndToEnd_RestoreAcrossRestart(t *testing.T) {
	srv, ts := newTestServer(t)
	accountID, err := srv.SeedAccount("Minh", "minh@example.com", "secret123", "employer")
	require.NoError(t, err)

	storagePath := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	first := newAppUnderTest(t, ts, storagePath)
	_, err = first.session.Login(ctx, entity.PasswordCredentials{Email: "minh@example.com", Password: "secret123"})
	require.NoError(t, err)
	require.NoError(t, first.store.Close())

	// Relaunch: a fresh graph over the same storage file.
	second := newAppUnderTest(t, ts, storagePath)
	gate := navigation.NewGate(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	defer gate.Attach(second.session)()

	require.NoError(t, second.session.RestoreSession(ctx))

	snapshot := second.session.Snapshot()
	assert.True(t, snapshot.IsAuthenticated)
	require.NotNil(t, snapshot.Account)
	assert.Equal(t, accountID, snapshot.Account.ID)
	assert.Equal(t, navigation.TreeEmployer, gate.Current())

	// The restored token authorizes requests again.
	profile, err := second.client.FetchOwnProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, accountID, profile.ID)
}

func TestEndToEnd_WrongPassword(t *testing.T) {
	srv, ts := newTestServer(t)
	_, err := srv.SeedAccount("Lan", "lan@example.com", "secret123", "candidate")
	require.NoError(t, err)

	app := newAppUnderTest(t, ts, filepath.Join(t.TempDir(), "session.db"))
	ctx := context.Background()

	_, err = app.session.Login(ctx, entity.PasswordCredentials{Email: "lan@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.False(t, app.session.Snapshot().IsAuthenticated)

	saved, err := app.store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, saved)
}
