package wallet

import (
	"sync"

	"github/hdforge/go-wallet/internal/wallet/chain"
)

// Sessions keeps one derivation Session per user
type Sessions struct {
	mu           sync.Mutex
	sessions     map[string]*Session
	defaultChain chain.Chain
	opts         []Option
}

// NewSessions creates a registry whose sessions start on defaultChain
func NewSessions(defaultChain chain.Chain, opts ...Option) *Sessions {
	return &Sessions{
		sessions:     make(map[string]*Session),
		defaultChain: defaultChain,
		opts:         opts,
	}
}

// Get returns the session of userID, creating an empty one if needed
func (r *Sessions) Get(userID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[userID]
	if !ok {
		session = NewSession(r.defaultChain, r.opts...)
		r.sessions[userID] = session
	}

	return session
}

// Drop resets and forgets the session of userID
func (r *Sessions) Drop(userID string) {
	r.mu.Lock()
	session, ok := r.sessions[userID]
	delete(r.sessions, userID)
	r.mu.Unlock()

	if ok {
		session.Reset()
	}
}

// Len returns the number of live sessions
func (r *Sessions) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// Clear resets and forgets every session
func (r *Sessions) Clear() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, session := range sessions {
		session.Reset()
	}
}
