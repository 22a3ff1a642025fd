// Package navigation selects which navigation tree the app mounts based on
// the published session state. It holds no business logic and performs no
// network calls.
package navigation

import (
	"log/slog"
	"sync"

	"jobfinder/internal/domain/entity"
	"jobfinder/internal/usecase"
)

// Tree identifies one of the disjoint navigation subtrees.
type Tree string

const (
	// TreeLoading is the placeholder rendered while the session restore is
	// still in flight.
	TreeLoading Tree = "loading"
	// TreeGuest is the unauthenticated tree (login, browse-only screens).
	TreeGuest Tree = "guest"
	// TreeCandidate is the authenticated candidate tab tree.
	TreeCandidate Tree = "candidateTabs"
	// TreeEmployer is the authenticated employer tree.
	TreeEmployer Tree = "employerTabs"
)

// Select is the pure tree choice: placeholder while initializing, guest
// without a token, otherwise the tree matching the account role. A nil
// account defaults to the candidate tree; token presence alone decides
// authentication.
func Select(snapshot usecase.SessionSnapshot) Tree {
	if snapshot.IsInitializing {
		return TreeLoading
	}
	if !snapshot.IsAuthenticated {
		return TreeGuest
	}
	if snapshot.Account != nil && snapshot.Account.Role == entity.RoleEmployer {
		return TreeEmployer
	}

	return TreeCandidate
}

// Gate tracks the currently mounted tree and remounts it synchronously
// whenever the session controller publishes a new snapshot.
type Gate struct {
	logger   *slog.Logger
	onChange func(Tree)

	mu      sync.RWMutex
	current Tree
}

// NewGate is the constructor for Gate. onChange is invoked on every tree
// switch and may be nil.
func NewGate(logger *slog.Logger, onChange func(Tree)) *Gate {
	return &Gate{
		logger:   logger,
		onChange: onChange,
		current:  TreeLoading,
	}
}

// Attach subscribes the gate to the session controller. The returned
// Unsubscribe detaches it again.
func (g *Gate) Attach(session usecase.SessionUsecase) usecase.Unsubscribe {
	return session.Subscribe(func(snapshot usecase.SessionSnapshot) {
		g.apply(Select(snapshot))
	})
}

// Current returns the currently mounted tree.
func (g *Gate) Current() Tree {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.current
}

func (g *Gate) apply(tree Tree) {
	g.mu.Lock()
	changed := g.current != tree
	g.current = tree
	g.mu.Unlock()

	if !changed {
		return
	}

	g.logger.Debug("Navigation tree switched", slog.String("tree", string(tree)))
	if g.onChange != nil {
		g.onChange(tree)
	}
}
