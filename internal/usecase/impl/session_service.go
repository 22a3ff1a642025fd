// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "jobfinder/internal/delivery/context"
	"jobfinder/internal/domain/entity"
	domainerrors "jobfinder/internal/domain/errors"
	"jobfinder/internal/domain/service"
	"jobfinder/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface. It is the only
// writer of the session record, the credential store and the token binder.
type sessionService struct {
	store     service.CredentialStore
	api       service.AuthAPI
	binder    service.TokenBinder
	decoder   service.TokenDecoder
	registrar service.PushRegistrar
	logger    *slog.Logger
	validate  *validator.Validate

	// mu guards all mutable session state below. generation increments on
	// every authoritative session change; an async result produced under an
	// older generation is stale and must be discarded.
	mu           sync.Mutex
	generation   uint64
	session      *entity.Session
	initializing bool
	subscribers  map[uint64]func(usecase.SessionSnapshot)
	nextSubID    uint64

	background sync.WaitGroup
}

// resolvedIdentity is the canonical triple produced from any accepted
// credential shape before it becomes the session.
type resolvedIdentity struct {
	Token     string
	AccountID string
	Account   *entity.Account
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Store     service.CredentialStore
	API       service.AuthAPI
	Binder    service.TokenBinder
	Decoder   service.TokenDecoder
	Registrar service.PushRegistrar
	Logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		store:        params.Store,
		api:          params.API,
		binder:       params.Binder,
		decoder:      params.Decoder,
		registrar:    params.Registrar,
		logger:       params.Logger,
		validate:     validator.New(),
		initializing: true,
		subscribers:  make(map[uint64]func(usecase.SessionSnapshot)),
	}
}

// log returns an operation-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RestoreSession loads the persisted session once at cold start. A missing,
// corrupt or unreadable record simply leaves the app unauthenticated; the
// failure is logged and never surfaced.
func (srv *sessionService) RestoreSession(ctx context.Context) error {
	srv.mu.Lock()
	startGen := srv.generation
	srv.mu.Unlock()

	saved, err := srv.store.Load(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load saved session, starting unauthenticated", slog.Any("error", err))
		saved = nil
	}

	srv.mu.Lock()
	if srv.generation != startGen {
		// A login or logout beat the restore; its state wins.
		srv.initializing = false
		srv.unlockAndNotify(srv.lockNotify())

		return nil
	}
	if saved.Authenticated() {
		srv.binder.SetBearer(saved.Token)
		srv.session = saved
		srv.log(ctx).Info("Session restored", slog.String("accountId", saved.AccountID))
	} else {
		srv.log(ctx).Debug("No saved session found")
	}
	srv.initializing = false
	srv.unlockAndNotify(srv.lockNotify())

	return nil
}

// Login resolves the credentials into a canonical session and atomically
// replaces whatever session was active before. The resolution phase runs
// without holding the state lock; the commit re-checks the generation so a
// result arriving after a logout or a newer login is discarded.
func (srv *sessionService) Login(ctx context.Context, credentials entity.Credentials) (*entity.Account, error) {
	srv.mu.Lock()
	startGen := srv.generation
	srv.mu.Unlock()

	ident, err := srv.resolve(ctx, credentials)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.Any("error", err))

		return nil, err
	}

	// Commit: claim the session slot and bind the token. The binder must
	// reflect the new token before the profile enrichment below.
	srv.mu.Lock()
	if srv.generation != startGen {
		srv.mu.Unlock()
		srv.log(ctx).Warn("Discarding stale login result, session changed while login was in flight")

		return nil, domainerrors.ErrLoginSuperseded.WrapMessage("session changed during login")
	}
	srv.generation++
	gen := srv.generation
	srv.binder.SetBearer(ident.Token)
	srv.session = &entity.Session{Token: ident.Token, AccountID: ident.AccountID, Account: ident.Account}
	srv.initializing = false
	// Token present is enough to flip navigation; identity enrichment and
	// persistence follow.
	srv.unlockAndNotify(srv.lockNotify())

	if ident.AccountID == "" {
		srv.enrichFromProfile(ctx, ident)
	}

	srv.mu.Lock()
	if srv.generation != gen {
		srv.mu.Unlock()
		srv.log(ctx).Warn("Discarding enriched login result, session changed during enrichment")

		return nil, domainerrors.ErrLoginSuperseded.WrapMessage("session changed during login enrichment")
	}
	session := &entity.Session{Token: ident.Token, AccountID: ident.AccountID, Account: ident.Account}
	srv.session = session
	if err := srv.store.Save(ctx, session); err != nil {
		// Persisting is best-effort: the in-memory session stays valid and
		// the next login will overwrite whatever the store holds.
		srv.log(ctx).Warn("Failed to persist session", slog.Any("error", err))
	}
	srv.unlockAndNotify(srv.lockNotify())

	srv.log(ctx).Info("Login succeeded", slog.String("accountId", ident.AccountID))

	// Fire-and-forget: push-token sync must never block or fail the login.
	srv.background.Add(1)
	go srv.syncPushToken(context.WithoutCancel(ctx), gen, ident.AccountID)

	return ident.Account, nil
}

// Logout clears store, binder and published identity, in that order, as one
// atomic step from the perspective of observers. Idempotent.
func (srv *sessionService) Logout(ctx context.Context) error {
	srv.mu.Lock()
	srv.generation++
	if err := srv.store.Clear(ctx); err != nil {
		srv.log(ctx).Warn("Failed to clear credential store", slog.Any("error", err))
	}
	srv.binder.SetBearer("")
	srv.session = nil
	srv.initializing = false
	srv.unlockAndNotify(srv.lockNotify())

	srv.log(ctx).Info("Logged out")

	return nil
}

// Snapshot returns the current published state.
func (srv *sessionService) Snapshot() usecase.SessionSnapshot {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.snapshotLocked()
}

// Subscribe registers a listener invoked synchronously after every snapshot
// change, starting with the current state.
func (srv *sessionService) Subscribe(fn func(usecase.SessionSnapshot)) usecase.Unsubscribe {
	srv.mu.Lock()
	srv.nextSubID++
	id := srv.nextSubID
	srv.subscribers[id] = fn
	snapshot := srv.snapshotLocked()
	srv.mu.Unlock()

	fn(snapshot)

	return func() {
		srv.mu.Lock()
		delete(srv.subscribers, id)
		srv.mu.Unlock()
	}
}

// resolve turns any accepted credential shape into the canonical identity
// triple. It fails only when no token can be produced at all.
func (srv *sessionService) resolve(ctx context.Context, credentials entity.Credentials) (*resolvedIdentity, error) {
	switch c := credentials.(type) {
	case entity.TokenCredentials:
		if err := srv.validate.Struct(c); err != nil {
			return nil, domainerrors.ErrAuthenticationFailed.WrapMessage("token credentials carried no token")
		}
		ident := &resolvedIdentity{Token: c.Token, Account: c.Account}
		srv.fillAccountIDFromClaims(ctx, ident)

		return ident, nil

	case entity.PasswordCredentials:
		if err := srv.validate.Struct(c); err != nil {
			return nil, domainerrors.ErrAuthenticationFailed.WrapMessage("email and password are required")
		}
		resp, err := srv.api.LoginWithPassword(ctx, c.Email, c.Password)
		if err != nil {
			return nil, err
		}
		ident := &resolvedIdentity{Token: resp.Token, Account: resp.Account}
		srv.fillAccountIDFromClaims(ctx, ident)

		return ident, nil

	default:
		return nil, domainerrors.ErrAuthenticationFailed.WrapMessage("unsupported credential shape")
	}
}

// fillAccountIDFromClaims derives the account id from the account payload
// when present, falling back to the token's identity claims. Decode failure
// is non-fatal: the session continues without an id.
func (srv *sessionService) fillAccountIDFromClaims(ctx context.Context, ident *resolvedIdentity) {
	if ident.Account != nil && ident.Account.ID != "" {
		ident.AccountID = ident.Account.ID

		return
	}

	id, err := srv.decoder.DecodeAccountID(ident.Token)
	if err != nil {
		srv.log(ctx).Warn("Token claims decode failed, continuing without account id", slog.Any("error", err))

		return
	}
	ident.AccountID = id
}

// enrichFromProfile asks the server who the token belongs to. Best-effort:
// a failure is logged and the session keeps whatever identity it has.
func (srv *sessionService) enrichFromProfile(ctx context.Context, ident *resolvedIdentity) {
	account, err := srv.api.FetchOwnProfile(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to fetch own profile", slog.Any("error", domainerrors.ErrEnrichmentFailed.WrapMessage(err.Error())))

		return
	}
	if account == nil {
		return
	}

	if ident.Account == nil {
		ident.Account = account
	}
	if ident.AccountID == "" {
		ident.AccountID = account.ID
	}
}

// syncPushToken runs detached from the login that triggered it. A result
// arriving after a logout or a newer login is dropped, and failures only log.
func (srv *sessionService) syncPushToken(ctx context.Context, gen uint64, accountID string) {
	defer srv.background.Done()

	srv.mu.Lock()
	stale := srv.generation != gen
	srv.mu.Unlock()
	if stale {
		srv.logger.Debug("Skipping push-token sync for replaced session")

		return
	}

	if err := srv.registrar.SyncPushToken(ctx, accountID); err != nil {
		srv.logger.Warn("Push-token sync failed", slog.Any("error", domainerrors.ErrEnrichmentFailed.WrapMessage(err.Error())))
	}
}

func (srv *sessionService) snapshotLocked() usecase.SessionSnapshot {
	snapshot := usecase.SessionSnapshot{
		IsInitializing:  srv.initializing,
		IsAuthenticated: srv.session.Authenticated(),
	}
	if srv.session != nil {
		snapshot.Account = srv.session.Account
	}

	return snapshot
}

type pendingNotify struct {
	snapshot    usecase.SessionSnapshot
	subscribers []func(usecase.SessionSnapshot)
}

// lockNotify captures the snapshot and subscriber list while mu is held.
func (srv *sessionService) lockNotify() pendingNotify {
	pending := pendingNotify{
		snapshot:    srv.snapshotLocked(),
		subscribers: make([]func(usecase.SessionSnapshot), 0, len(srv.subscribers)),
	}
	for _, fn := range srv.subscribers {
		pending.subscribers = append(pending.subscribers, fn)
	}

	return pending
}

// unlockAndNotify releases mu and delivers the captured snapshot. Callbacks
// run without the state lock so they may call back into the controller.
func (srv *sessionService) unlockAndNotify(pending pendingNotify) {
	srv.mu.Unlock()
	for _, fn := range pending.subscribers {
		fn(pending.snapshot)
	}
}
