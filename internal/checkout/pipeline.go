package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mdshakil05382/genzzone-frontend/domain"
	"github.com/mdshakil05382/genzzone-frontend/internal/client"
	"github.com/mdshakil05382/genzzone-frontend/internal/pricing"
)

// NavigateDelay is how long the success acknowledgement stays on screen
// before the one-shot navigation home fires.
const NavigateDelay = 3 * time.Second

// OrderAPI is the order backend surface the pipeline consumes.
type OrderAPI interface {
	Create(ctx context.Context, req client.SingleOrderRequest) (*client.OrderResponse, error)
	CreateFromCart(ctx context.Context, req client.CheckoutRequest) (*client.OrderResponse, error)
}

// CartRefresher re-derives the cart mirror from the server after a
// successful cart checkout.
type CartRefresher interface {
	Refresh(ctx context.Context) error
}

// Pipeline drives one form instance through Idle, Submitting and
// Succeeded/Failed. At most one submission is ever in flight; Succeeded
// is terminal.
type Pipeline struct {
	orders   OrderAPI
	cart     CartRefresher // nil in the single-product flow
	navigate func()
	delay    time.Duration

	mu            sync.Mutex
	state         domain.SubmissionState
	reason        string
	stockConflict bool
	customer      string
	timer         *time.Timer
}

// NewPipeline builds a pipeline. cart may be nil (single-product orders
// touch no cart); navigate may be nil when the caller has nowhere to go.
func NewPipeline(orders OrderAPI, cart CartRefresher, navigate func()) *Pipeline {
	return &Pipeline{
		orders:   orders,
		cart:     cart,
		navigate: navigate,
		delay:    NavigateDelay,
		state:    domain.SubmissionIdle,
	}
}

func (p *Pipeline) State() domain.SubmissionState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// FailureReason is the display text for the Failed state, empty otherwise.
func (p *Pipeline) FailureReason() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reason
}

// StockConflict reports whether the last failure was the backend refusing
// a quantity it no longer has, so the UI can ask for a correction instead
// of suggesting a retry.
func (p *Pipeline) StockConflict() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stockConflict
}

// Acknowledgement names the customer the order was placed for. Empty in
// every state but Succeeded.
func (p *Pipeline) Acknowledgement() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != domain.SubmissionSucceeded {
		return ""
	}
	return fmt.Sprintf("Thank you for your order, %s!", p.customer)
}

// SubmitOrder runs the single-product flow: validate, price, submit.
// Validation failures come back as *ValidationError and never reach the
// network. Backend failures settle into the Failed state and return nil;
// the caller reads State and FailureReason.
func (p *Pipeline) SubmitOrder(ctx context.Context, draft domain.OrderDraft, product *domain.Product) error {
	if err := ValidateOrder(draft, product); err != nil {
		return err
	}
	if err := p.begin(draft.CustomerName); err != nil {
		return err
	}

	b := pricing.OrderBreakdown(product.EffectivePrice(), draft.Quantity, draft.Zone)
	req := client.SingleOrderRequest{
		CustomerName:   draft.CustomerName,
		District:       draft.District,
		Address:        draft.Address,
		PhoneNumber:    draft.PhoneNumber,
		ProductID:      product.ID,
		ProductSize:    draft.ProductSize,
		Quantity:       draft.Quantity,
		OrderNote:      draft.OrderNote,
		UnitPrice:      b.UnitPrice.Round(2).InexactFloat64(),
		ProductTotal:   b.ProductTotal.Round(2).InexactFloat64(),
		DeliveryCharge: b.DeliveryCharge.Round(2).InexactFloat64(),
		TotalPrice:     b.TotalPrice.Round(2).InexactFloat64(),
	}

	if _, err := p.orders.Create(ctx, req); err != nil {
		p.fail(err)
		return nil
	}
	p.succeed(false)
	return nil
}

// SubmitCheckout runs the cart flow. cart must be the current mirror; the
// backend resolves the items itself from the session's server-side cart.
func (p *Pipeline) SubmitCheckout(ctx context.Context, draft domain.CheckoutDraft, cart *domain.Cart) error {
	if err := ValidateCheckout(draft, cart); err != nil {
		return err
	}
	if err := p.begin(draft.CustomerName); err != nil {
		return err
	}

	req := client.CheckoutRequest{
		CustomerName: draft.CustomerName,
		District:     draft.District,
		Address:      draft.Address,
		PhoneNumber:  draft.PhoneNumber,
		ProductSize:  draft.ProductSize,
		OrderNote:    draft.OrderNote,
	}

	if _, err := p.orders.CreateFromCart(ctx, req); err != nil {
		p.fail(err)
		return nil
	}
	p.succeed(true)
	return nil
}

// Reset returns a Failed or Idle pipeline to Idle. A running or succeeded
// pipeline stays put.
func (p *Pipeline) Reset() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch p.state {
	case domain.SubmissionSubmitting:
		return ErrSubmitInFlight
	case domain.SubmissionSucceeded:
		return ErrSubmissionDone
	}
	p.state = domain.SubmissionIdle
	p.reason = ""
	p.stockConflict = false
	return nil
}

// Stop cancels a pending navigation timer when the consuming context is
// torn down. An in-flight submission is not aborted; its result is simply
// discarded.
func (p *Pipeline) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

func (p *Pipeline) begin(customer string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch {
	case p.state == domain.SubmissionSubmitting:
		return ErrSubmitInFlight
	case p.state.IsTerminal():
		return ErrSubmissionDone
	case !domain.CanTransition(p.state, domain.SubmissionSubmitting):
		return ErrSubmitInFlight
	}
	p.state = domain.SubmissionSubmitting
	p.reason = ""
	p.stockConflict = false
	p.customer = customer
	return nil
}

func (p *Pipeline) succeed(refreshCart bool) {
	p.mu.Lock()
	p.state = domain.SubmissionSucceeded
	if p.navigate != nil {
		nav := p.navigate
		p.timer = time.AfterFunc(p.delay, nav)
		p.navigate = nil // one-shot
	}
	p.mu.Unlock()

	if refreshCart && p.cart != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := p.cart.Refresh(ctx); err != nil {
			log.Printf("cart refresh after checkout failed: %v", err)
		}
	}
}

func (p *Pipeline) fail(err error) {
	reason := GenericFailureMessage
	conflict := false
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if r := apiErr.Reason(); r != "" {
			reason = r
		}
		conflict = apiErr.IsStockConflict()
	}
	log.Printf("order submission failed: %v", err)

	p.mu.Lock()
	p.state = domain.SubmissionFailed
	p.reason = reason
	p.stockConflict = conflict
	p.mu.Unlock()
}
