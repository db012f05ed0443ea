/*
Package store persists the charge collection as a JSON snapshot in durable
key-value storage, behind a simulated network delay.

PURPOSE:
  This is the system's mock backend. Every operation reads the full
  snapshot, applies one change, and writes the full snapshot back - there
  are no partial-write states observable to a caller.

SNAPSHOT LAYOUT:
  One storage key holds a JSON array of charge records: numeric fields as
  IEEE-754 doubles, dates as YYYY-MM-DD strings.

SEED FALLBACK:
  On missing, corrupt or unparseable storage the store silently falls back
  to a fixed five-record seed dataset. Corruption is never surfaced as an
  error.

LATENCY:
  Each operation waits a fixed artificial delay (default 300ms) to model a
  network round trip. Tests construct the store with zero delay.

ID OWNERSHIP:
  The store owns its ID generator, seeded from the loaded snapshot at
  construction time. IDs of deleted charges are never reused.

CONCURRENCY:
  One store instance per process, one logical writer. Overlapping mutations
  are last-resolved-wins; the read-modify-write is not locked against other
  processes sharing the same storage. Multi-process use is out of scope.

SEE ALSO:
  - kv/kv.go: The storage port
  - service/service.go: The stable API the rest of the system consumes
*/
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/supersharkz/chargeboard/charge"
	"github.com/supersharkz/chargeboard/kv"
)

// StorageKey is the fixed key the charge snapshot lives under.
const StorageKey = "supersharkz_charges"

// DefaultDelay is the simulated network latency applied to every operation.
const DefaultDelay = 300 * time.Millisecond

// Seed returns the fixed fallback dataset used when no valid persisted
// data exists.
func Seed() []charge.Charge {
	return []charge.Charge{
		{ChargeID: "chg_001", ChargeAmount: 120.00, PaidAmount: 0.00, StudentID: "stu_101", DateCharged: "2025-01-05"},
		{ChargeID: "chg_002", ChargeAmount: 80.50, PaidAmount: 80.50, StudentID: "stu_102", DateCharged: "2025-01-07"},
		{ChargeID: "chg_003", ChargeAmount: 150.00, PaidAmount: 50.00, StudentID: "stu_101", DateCharged: "2025-01-12"},
		{ChargeID: "chg_004", ChargeAmount: 95.00, PaidAmount: 0.00, StudentID: "stu_103", DateCharged: "2025-01-15"},
		{ChargeID: "chg_005", ChargeAmount: 200.00, PaidAmount: 200.00, StudentID: "stu_104", DateCharged: "2025-01-20"},
	}
}

// Config tunes a ChargeStore. The zero value means no simulated delay;
// use DefaultConfig for production settings.
type Config struct {
	// Delay is the artificial latency per operation.
	Delay time.Duration
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{Delay: DefaultDelay}
}

// ChargeStore is the mock backend over a KV snapshot.
type ChargeStore struct {
	kv    kv.KV
	delay time.Duration
	gen   *charge.Generator
}

// New creates a charge store over the given storage. The ID generator is
// seeded from the currently persisted collection (or the seed dataset), so
// freshly created charges never collide with existing IDs.
func New(storage kv.KV, cfg Config) *ChargeStore {
	s := &ChargeStore{kv: storage, delay: cfg.Delay}

	charges := s.load()
	ids := make([]string, len(charges))
	for i, c := range charges {
		ids[i] = c.ChargeID
	}
	s.gen = charge.NewGenerator(ids)
	return s
}

// load reads the snapshot, falling back to the seed dataset on missing or
// corrupt data.
func (s *ChargeStore) load() []charge.Charge {
	raw, ok := s.kv.Get(StorageKey)
	if !ok {
		return Seed()
	}
	var charges []charge.Charge
	if err := json.Unmarshal([]byte(raw), &charges); err != nil {
		return Seed()
	}
	return charges
}

// save persists the full snapshot.
func (s *ChargeStore) save(charges []charge.Charge) error {
	raw, err := json.Marshal(charges)
	if err != nil {
		return err
	}
	return s.kv.Set(StorageKey, string(raw))
}

// wait models the network round trip. It respects context cancellation so
// callers with deadlines aren't stuck behind the artificial delay.
func (s *ChargeStore) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// List returns the full collection.
func (s *ChargeStore) List(ctx context.Context) ([]charge.Charge, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.load(), nil
}

// Create assigns a fresh ID, appends the charge, persists the snapshot and
// returns the created record. Always succeeds given valid input.
func (s *ChargeStore) Create(ctx context.Context, input charge.CreateInput) (charge.Charge, error) {
	if err := s.wait(ctx); err != nil {
		return charge.Charge{}, err
	}

	id, err := s.gen.Next()
	if err != nil {
		return charge.Charge{}, err
	}

	created := charge.Charge{
		ChargeID:     id,
		StudentID:    input.StudentID,
		ChargeAmount: input.ChargeAmount,
		PaidAmount:   input.PaidAmount,
		DateCharged:  input.DateCharged,
	}

	charges := append(s.load(), created)
	if err := s.save(charges); err != nil {
		return charge.Charge{}, err
	}
	return created, nil
}

// Update shallow-merges the partial input over the existing record,
// persists, and returns the merged record. Fails with a NotFoundError if
// the ID is absent; the collection is left unchanged on any failure.
func (s *ChargeStore) Update(ctx context.Context, id string, input charge.UpdateInput) (charge.Charge, error) {
	if err := s.wait(ctx); err != nil {
		return charge.Charge{}, err
	}

	charges := s.load()
	for i, c := range charges {
		if c.ChargeID != id {
			continue
		}
		merged := input.ApplyTo(c)
		charges[i] = merged
		if err := s.save(charges); err != nil {
			return charge.Charge{}, err
		}
		return merged, nil
	}
	return charge.Charge{}, &charge.NotFoundError{ChargeID: id}
}

// Delete removes the charge by ID and persists the remaining collection.
// Hard removal: no tombstone, no undo. Fails with a NotFoundError if the
// ID is absent.
func (s *ChargeStore) Delete(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	charges := s.load()
	remaining := charges[:0:0]
	for _, c := range charges {
		if c.ChargeID != id {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == len(charges) {
		return &charge.NotFoundError{ChargeID: id}
	}
	return s.save(remaining)
}
