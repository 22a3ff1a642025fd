package bolt

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"jobfinder/internal/domain/entity"
	domainerrors "jobfinder/internal/domain/errors"
	"jobfinder/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "session.db"), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestStore_Open_EmptyPath(t *testing.T) {
	_, err := Open("  ", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
}

func TestStore_Load_Empty(t *testing.T) {
	store := newTestStore(t)

	session, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestStore_SaveLoad_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	session := &entity.Session{
		Token:     "jwt-1",
		AccountID: "acc-1",
		Account:   &entity.Account{ID: "acc-1", Name: "Lan", Email: "lan@example.com", Role: entity.RoleCandidate},
	}
	require.NoError(t, store.Save(ctx, session))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, session, loaded)
}

func TestStore_Save_Overwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &entity.Session{Token: "jwt-1", AccountID: "acc-1"}))
	require.NoError(t, store.Save(ctx, &entity.Session{Token: "jwt-2", AccountID: "acc-2"}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "jwt-2", loaded.Token)
	assert.Equal(t, "acc-2", loaded.AccountID)
}

func TestStore_Save_NilSession(t *testing.T) {
	store := newTestStore(t)

	require.Error(t, store.Save(context.Background(), nil))
}

func TestStore_Clear_Idempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &entity.Session{Token: "jwt-1"}))
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStore_Load_CorruptRecord(t *testing.T) {
	store := newTestStore(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(authBucket)).Put([]byte(sessionKey), []byte("{not json"))
	})
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStorageUnavailable))
}

func TestStore_CancelledContext(t *testing.T) {
	store := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Load(ctx)
	require.Error(t, err)
	require.Error(t, store.Save(ctx, &entity.Session{Token: "jwt-1"}))
	require.Error(t, store.Clear(ctx))
}
