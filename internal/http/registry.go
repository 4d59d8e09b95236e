package http

import (
	"log"
	"sync"
	"time"

	"github.com/mdshakil05382/genzzone-frontend/internal/cartstore"
	"github.com/mdshakil05382/genzzone-frontend/internal/checkout"
	"github.com/mdshakil05382/genzzone-frontend/internal/client"
)

// Registry binds one cart mirror and one submission pipeline to each
// shopper session, so the duplicate-submit guard and the mirror semantics
// hold across requests from the same browser.
type Registry struct {
	carts  *client.CartClient
	orders *client.OrderClient

	mu       sync.Mutex
	shoppers map[string]*shopper

	idleAfter time.Duration
}

type shopper struct {
	cart     *cartstore.Store
	pipeline *checkout.Pipeline
	lastSeen time.Time
}

func NewRegistry(carts *client.CartClient, orders *client.OrderClient) *Registry {
	return &Registry{
		carts:     carts,
		orders:    orders,
		shoppers:  make(map[string]*shopper),
		idleAfter: 30 * time.Minute,
	}
}

// CartFor returns the session's cart mirror, creating it on first use.
func (r *Registry) CartFor(token string) *cartstore.Store {
	return r.get(token).cart
}

// PipelineFor returns the session's live pipeline. A pipeline that
// reached its terminal success state is replaced by a fresh one: the next
// request is a new form instance.
func (r *Registry) PipelineFor(token string) *checkout.Pipeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	sh := r.getLocked(token)
	if sh.pipeline.State().IsTerminal() {
		sh.pipeline.Stop()
		sh.pipeline = checkout.NewPipeline(r.orders, sh.cart, nil)
	}
	return sh.pipeline
}

func (r *Registry) get(token string) *shopper {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getLocked(token)
}

func (r *Registry) getLocked(token string) *shopper {
	sh, ok := r.shoppers[token]
	if !ok {
		cart := cartstore.New(r.carts)
		sh = &shopper{
			cart:     cart,
			pipeline: checkout.NewPipeline(r.orders, cart, nil),
		}
		r.shoppers[token] = sh
	}
	sh.lastSeen = time.Now()
	return sh
}

// EvictLoop drops shoppers idle past the deadline. Runs until stop is
// closed.
func (r *Registry) EvictLoop(stop <-chan struct{}) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			r.evictIdle(time.Now())
		}
	}
}

func (r *Registry) evictIdle(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for token, sh := range r.shoppers {
		if now.Sub(sh.lastSeen) > r.idleAfter {
			sh.pipeline.Stop()
			delete(r.shoppers, token)
		}
	}
	log.Printf("shopper registry holds %d sessions", len(r.shoppers))
}
