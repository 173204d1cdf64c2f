package usecase

import (
	"sync"

	"github.com/google/uuid"

	"github.com/hogardeco/hogar/internal/domain"
)

// CartUC owns the live carts, one per session. All transitions go through
// Dispatch, which hands the session's current state to the pure reducer and
// stores whatever comes back. The mutex serializes dispatches so each cart
// sees its events one at a time; the domain package itself stays lock-free.
type CartUC struct {
	mu       sync.Mutex
	sessions map[string]domain.CartState
}

func NewCartUC() *CartUC {
	return &CartUC{sessions: map[string]domain.CartState{}}
}

// NewSession creates an empty, closed cart and returns its session ID.
func (uc *CartUC) NewSession() string {
	id := uuid.NewString()
	uc.mu.Lock()
	uc.sessions[id] = domain.CartState{}
	uc.mu.Unlock()
	return id
}

// Has reports whether the session exists.
func (uc *CartUC) Has(sessionID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	_, ok := uc.sessions[sessionID]
	return ok
}

// Get returns the session's current state.
func (uc *CartUC) Get(sessionID string) (domain.CartState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	state, ok := uc.sessions[sessionID]
	if !ok {
		return domain.CartState{}, domain.ErrNoSession
	}
	return state, nil
}

// Dispatch applies one action and returns the resulting state. The only
// failure mode is an unknown session; the reducer itself never fails.
func (uc *CartUC) Dispatch(sessionID string, a domain.CartAction) (domain.CartState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	state, ok := uc.sessions[sessionID]
	if !ok {
		return domain.CartState{}, domain.ErrNoSession
	}
	next := domain.Reduce(state, a)
	uc.sessions[sessionID] = next
	return next, nil
}

func (uc *CartUC) Totals(sessionID string) (domain.CartTotals, error) {
	state, err := uc.Get(sessionID)
	if err != nil {
		return domain.CartTotals{}, err
	}
	return domain.Totals(state), nil
}

func (uc *CartUC) ItemCount(sessionID string) (int, error) {
	state, err := uc.Get(sessionID)
	if err != nil {
		return 0, err
	}
	return domain.ItemCount(state), nil
}

// Drop discards a session and its cart.
func (uc *CartUC) Drop(sessionID string) {
	uc.mu.Lock()
	delete(uc.sessions, sessionID)
	uc.mu.Unlock()
}
