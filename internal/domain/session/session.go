// Package session holds the per-user session state resolved by the profile gate.
//
// A Session is read-only for everyone except the holder of its Writer.
package session

import (
	"context"
	"sync"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
)

// Snapshot is an immutable view of the session at one point in time.
type Snapshot struct {
	AuthUser *entity.AuthUser `json:"auth_user"`
	Profile  *entity.Profile  `json:"profile"`
	Location *entity.Location `json:"location"`
}

// IsAuthenticated reports whether both the identity and the profile are known.
func (s Snapshot) IsAuthenticated() bool {
	return s.AuthUser != nil && s.Profile != nil
}

// Role returns the profile role, or RoleNone when there is no profile.
func (s Snapshot) Role() entity.Role {
	if s.Profile == nil {
		return entity.RoleNone
	}

	return s.Profile.Role
}

func (s Snapshot) clone() Snapshot {
	out := Snapshot{Profile: s.Profile.Clone(), Location: s.Location.Clone()}
	if s.AuthUser != nil {
		u := *s.AuthUser
		out.AuthUser = &u
	}

	return out
}

// Session is the read side of the session state.
type Session struct {
	mu       sync.RWMutex
	snapshot Snapshot
	ready    chan struct{}
	once     sync.Once
}

// Writer is the only way to change a Session.
type Writer struct {
	s *Session
}

// New creates an empty session and its writer.
func New() (*Session, *Writer) {
	s := &Session{ready: make(chan struct{})}

	return s, &Writer{s: s}
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot.clone()
}

// Ready is closed exactly once, the first time the writer publishes.
func (s *Session) Ready() <-chan struct{} {
	return s.ready
}

// Wait blocks until the session is ready or ctx is done.
func (s *Session) Wait(ctx context.Context) (Snapshot, error) {
	select {
	case <-s.ready:
		return s.Snapshot(), nil
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
}

// Publish replaces the session state and signals readiness on the first call.
func (w *Writer) Publish(snap Snapshot) {
	w.s.mu.Lock()
	w.s.snapshot = snap.clone()
	w.s.mu.Unlock()

	w.s.once.Do(func() { close(w.s.ready) })
}

// Clear drops the session state. Readiness, once signalled, stays signalled.
func (w *Writer) Clear() {
	w.s.mu.Lock()
	w.s.snapshot = Snapshot{}
	w.s.mu.Unlock()
}
