/*
Package service exposes the stable async contract the rest of the system
programs against.

PURPOSE:
  Pure delegation to the store. No added logic, no added error cases. The
  point is the seam: callers (session, api) depend on the Charges
  interface, so the storage implementation can change without touching
  them.
*/
package service

import (
	"context"

	"github.com/supersharkz/chargeboard/charge"
)

// Charges is the service boundary contract. All operations may fail;
// failures are opaque error values bubbled to the caller.
type Charges interface {
	List(ctx context.Context) ([]charge.Charge, error)
	Create(ctx context.Context, input charge.CreateInput) (charge.Charge, error)
	Update(ctx context.Context, id string, input charge.UpdateInput) (charge.Charge, error)
	Delete(ctx context.Context, id string) error
}

// Store is what the service needs from the persistence layer. The store
// package satisfies it.
type Store interface {
	List(ctx context.Context) ([]charge.Charge, error)
	Create(ctx context.Context, input charge.CreateInput) (charge.Charge, error)
	Update(ctx context.Context, id string, input charge.UpdateInput) (charge.Charge, error)
	Delete(ctx context.Context, id string) error
}

type chargeService struct {
	store Store
}

// New returns a Charges service over the given store.
func New(store Store) Charges {
	return &chargeService{store: store}
}

func (s *chargeService) List(ctx context.Context) ([]charge.Charge, error) {
	return s.store.List(ctx)
}

func (s *chargeService) Create(ctx context.Context, input charge.CreateInput) (charge.Charge, error) {
	return s.store.Create(ctx, input)
}

func (s *chargeService) Update(ctx context.Context, id string, input charge.UpdateInput) (charge.Charge, error) {
	return s.store.Update(ctx, id, input)
}

func (s *chargeService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
