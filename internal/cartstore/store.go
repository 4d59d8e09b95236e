// Package cartstore holds the client-side mirror of the server-owned
// cart. Mutators never patch locally: every successful call replaces the
// whole mirror with the backend's response, so the mirror cannot diverge
// from server truth.
package cartstore

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/mdshakil05382/genzzone-frontend/domain"
)

// CartAPI is the backend surface the store consumes. Every call returns
// the full cart as the server now sees it.
type CartAPI interface {
	Get(ctx context.Context) (*domain.Cart, error)
	Add(ctx context.Context, productID int64, quantity int) (*domain.Cart, error)
	UpdateItem(ctx context.Context, itemID int64, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, itemID int64) (*domain.Cart, error)
	Clear(ctx context.Context) (*domain.Cart, error)
}

// Snapshot is what observers receive. Contents are unreliable while
// Loading is true; consumers gate on it.
type Snapshot struct {
	Cart    *domain.Cart
	Loading bool
}

type Subscriber func(Snapshot)

type Store struct {
	api CartAPI

	mu      sync.RWMutex
	cart    *domain.Cart
	loading bool
	subs    map[int]Subscriber
	nextSub int

	sfg singleflight.Group // Dedupes concurrent refreshes
}

func New(api CartAPI) *Store {
	return &Store{
		api:  api,
		cart: domain.EmptyCart(),
		subs: make(map[int]Subscriber),
	}
}

// Cart returns a deep-copied snapshot; observers never see the mirror's
// backing slices.
func (s *Store) Cart() *domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Clone()
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cart == nil {
		return 0
	}
	return s.cart.ItemCount
}

// Subscribe registers an observer called after every state change. The
// returned func unregisters it.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Refresh re-fetches the cart. Concurrent refreshes collapse into one
// request. On failure the mirror becomes the empty cart rather than
// staying stale, and the error is still returned to the caller.
func (s *Store) Refresh(ctx context.Context) error {
	s.setLoading(true)
	_, err, _ := s.sfg.Do("refresh", func() (interface{}, error) {
		cart, errGet := s.api.Get(ctx)
		if errGet != nil {
			log.Printf("cart refresh failed: %v", errGet)
			s.replace(domain.EmptyCart())
			return nil, errGet
		}
		s.replace(cart)
		return nil, nil
	})
	s.setLoading(false)
	return err
}

// Add sends the item to the backend and mirrors the response. A quantity
// below one means one.
func (s *Store) Add(ctx context.Context, productID int64, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	cart, err := s.api.Add(ctx, productID, quantity)
	if err != nil {
		return err
	}
	s.replace(cart)
	return nil
}

func (s *Store) Update(ctx context.Context, itemID int64, quantity int) error {
	cart, err := s.api.UpdateItem(ctx, itemID, quantity)
	if err != nil {
		return err
	}
	s.replace(cart)
	return nil
}

func (s *Store) Remove(ctx context.Context, itemID int64) error {
	cart, err := s.api.RemoveItem(ctx, itemID)
	if err != nil {
		return err
	}
	s.replace(cart)
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	cart, err := s.api.Clear(ctx)
	if err != nil {
		return err
	}
	s.replace(cart)
	return nil
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()
	notify(subs, snap)
}

func (s *Store) replace(cart *domain.Cart) {
	if cart == nil {
		cart = domain.EmptyCart()
	}
	s.mu.Lock()
	s.cart = cart
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()
	notify(subs, snap)
}

func (s *Store) snapshotLocked() (Snapshot, []Subscriber) {
	subs := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return Snapshot{Cart: s.cart.Clone(), Loading: s.loading}, subs
}

// Subscribers run outside the lock so they may call back into the store.
func notify(subs []Subscriber, snap Snapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}
