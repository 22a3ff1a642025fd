// Package bolt provides the on-device credential store backed by bbolt.
package bolt

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"jobfinder/config"
	"jobfinder/internal/domain/entity"
	domainerrors "jobfinder/internal/domain/errors"
	"jobfinder/internal/domain/service"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"
	"go.uber.org/fx"
)

const (
	authBucket = "auth"
	// sessionKey is the single well-known key the serialized session record
	// lives under. Changing it orphans sessions persisted by older builds.
	sessionKey = "currentSession"
)

// Store is a bbolt-backed CredentialStore holding at most one session record.
type Store struct {
	db     *bbolt.DB
	logger *slog.Logger
}

// Open opens a bbolt-backed store at the provided path.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open storage db")
	}

	store := &Store{db: db, logger: logger}
	if err := store.ensureBucket(); err != nil {
		_ = db.Close()

		return nil, err
	}

	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

// Load reads the persisted session record. A missing record yields
// (nil, nil); a corrupt one is treated as absent and reported.
func (s *Store) Load(ctx context.Context) (*entity.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	var raw []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(authBucket))
		if bucket == nil {
			return nil
		}
		if value := bucket.Get([]byte(sessionKey)); value != nil {
			raw = append(raw, value...)
		}

		return nil
	})
	if err != nil {
		return nil, domainerrors.ErrStorageUnavailable.WrapMessage(err.Error())
	}
	if raw == nil {
		return nil, nil
	}

	var session entity.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		s.logger.Warn("Discarding corrupt session record", slog.Any("error", err))

		return nil, domainerrors.ErrStorageUnavailable.WrapMessage("corrupt session record")
	}

	return &session, nil
}

// Save overwrites the persisted session record.
func (s *Store) Save(ctx context.Context, session *entity.Session) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	if session == nil {
		return errors.New("session is required")
	}

	encoded, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "encode session record")
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(authBucket)).Put([]byte(sessionKey), encoded)
	})
	if err != nil {
		return domainerrors.ErrStorageUnavailable.WrapMessage(err.Error())
	}

	return nil
}

// Clear removes the persisted session record. Idempotent.
func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(authBucket)).Delete([]byte(sessionKey))
	})
	if err != nil {
		return domainerrors.ErrStorageUnavailable.WrapMessage(err.Error())
	}

	return nil
}

func (s *Store) ensureBucket() error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(authBucket))

		return err
	})

	return errors.Wrap(err, "ensure auth bucket")
}

// StoreParams holds dependencies for the credential store, injected by Fx.
type StoreParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewCredentialStore opens the store at the configured path and closes it on
// application shutdown.
func NewCredentialStore(params StoreParams) (service.CredentialStore, error) {
	store, err := Open(params.Config.Storage.Path, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}
