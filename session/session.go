/*
Package session caches the charge collection in memory, synchronized with
the charge service.

PURPOSE:
  One Session backs one running UI: it holds the cached collection, a
  loading flag and a load error, and exposes the three mutations. Each
  mutation calls the service FIRST and only mutates the cache on success -
  so the cache and the persisted snapshot never diverge. Failures propagate
  to the caller with the cache untouched.

ORDERING:
  Mutations are applied to the cache in the order their service calls
  resolve. Overlapping in-flight mutations are not serialized against each
  other; that matches the single-user assumption documented on the store.
*/
package session

import (
	"context"
	"sync"

	"github.com/supersharkz/chargeboard/charge"
	"github.com/supersharkz/chargeboard/service"
)

// Session is the in-memory cache of the charge collection.
type Session struct {
	svc service.Charges

	mu      sync.RWMutex
	charges []charge.Charge
	loading bool
	loadErr string
}

// New returns a session that has not loaded yet. Call Load once before
// reading.
func New(svc service.Charges) *Session {
	return &Session{svc: svc, loading: true}
}

// Load issues the initial list call. On success the cache is populated and
// the loading flag cleared; on failure a human-readable error is recorded
// and the collection stays empty.
func (s *Session) Load(ctx context.Context) {
	charges, err := s.svc.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.loadErr = "Failed to load charges"
		return
	}
	s.charges = charges
	s.loadErr = ""
}

// Charges returns a copy of the cached collection in its original order.
func (s *Session) Charges() []charge.Charge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]charge.Charge, len(s.charges))
	copy(out, s.charges)
	return out
}

// Loading reports whether the initial load is still in flight.
func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the load error message, or "" if the load succeeded.
func (s *Session) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Add creates a charge through the service and, on success, appends it to
// the cache.
func (s *Session) Add(ctx context.Context, input charge.CreateInput) (charge.Charge, error) {
	created, err := s.svc.Create(ctx, input)
	if err != nil {
		return charge.Charge{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.charges = append(s.charges, created)
	return created, nil
}

// Update mutates a charge through the service and, on success, replaces it
// in the cache by ID.
func (s *Session) Update(ctx context.Context, id string, input charge.UpdateInput) (charge.Charge, error) {
	updated, err := s.svc.Update(ctx, id, input)
	if err != nil {
		return charge.Charge{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.charges {
		if c.ChargeID == id {
			s.charges[i] = updated
			break
		}
	}
	return updated, nil
}

// Remove deletes a charge through the service and, on success, filters it
// out of the cache.
func (s *Session) Remove(ctx context.Context, id string) error {
	if err := s.svc.Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.charges[:0:0]
	for _, c := range s.charges {
		if c.ChargeID != id {
			kept = append(kept, c)
		}
	}
	s.charges = kept
	return nil
}
