package usecase

import (
	"errors"
	"sync"
)

// errRetired is returned by a controller the registry already let go of
var errRetired = errors.New("session controller retired")

// Registry keeps one controller per authenticated customer
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Controller
	deps     *Dependencies
}

// NewRegistry returns an empty registry whose controllers share deps
func NewRegistry(deps *Dependencies) *Registry {
	return &Registry{
		sessions: make(map[string]*Controller),
		deps:     deps,
	}
}

// Get returns the controller of userID, creating an idle one if needed
func (r *Registry) Get(userID string) *Controller {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.sessions[userID]
	if !ok {
		c = NewController(userID, r.deps)
		r.sessions[userID] = c
	}
	return c
}

// Lookup returns the controller of userID without creating one
func (r *Registry) Lookup(userID string) (*Controller, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.sessions[userID]
	return c, ok
}

// Retire forgets the controller of userID when its session is idle, so
// only sessions in progress stay in memory
func (r *Registry) Retire(userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.sessions[userID]
	if !ok || !c.retireIfIdle() {
		return false
	}
	delete(r.sessions, userID)
	return true
}

// Teardown resets and forgets the controller of userID
func (r *Registry) Teardown(userID string) {
	r.mu.Lock()
	c, ok := r.sessions[userID]
	delete(r.sessions, userID)
	r.mu.Unlock()

	if ok {
		c.Reset()
	}
}

// ResetAll tears down every session, used on shutdown
func (r *Registry) ResetAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Controller)
	r.mu.Unlock()

	for _, c := range sessions {
		c.Reset()
	}
}

// Len returns the number of tracked sessions
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
