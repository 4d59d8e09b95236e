package checkout

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdshakil05382/genzzone-frontend/domain"
	"github.com/mdshakil05382/genzzone-frontend/internal/client"
)

type mockOrderAPI struct {
	m           sync.Mutex
	err         error
	createCalls int
	cartCalls   int
	lastSingle  client.SingleOrderRequest
	gate        chan struct{} // when set, calls block until closed
}

func (m *mockOrderAPI) Create(_ context.Context, req client.SingleOrderRequest) (*client.OrderResponse, error) {
	m.m.Lock()
	m.createCalls++
	m.lastSingle = req
	gate := m.gate
	err := m.err
	m.m.Unlock()
	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return &client.OrderResponse{OrderID: 11}, nil
}

func (m *mockOrderAPI) CreateFromCart(context.Context, client.CheckoutRequest) (*client.OrderResponse, error) {
	m.m.Lock()
	m.cartCalls++
	gate := m.gate
	err := m.err
	m.m.Unlock()
	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return &client.OrderResponse{OrderID: 12}, nil
}

func (m *mockOrderAPI) calls() (int, int) {
	m.m.Lock()
	defer m.m.Unlock()
	return m.createCalls, m.cartCalls
}

type mockRefresher struct {
	m     sync.Mutex
	calls int
}

func (m *mockRefresher) Refresh(context.Context) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.calls++
	return nil
}

func (m *mockRefresher) count() int {
	m.m.Lock()
	defer m.m.Unlock()
	return m.calls
}

func TestSubmitOrder_Success(t *testing.T) {
	api := &mockOrderAPI{}
	navigated := make(chan struct{})
	p := NewPipeline(api, nil, func() { close(navigated) })
	p.delay = 10 * time.Millisecond

	err := p.SubmitOrder(context.Background(), validOrderDraft(), pricedProduct())
	require.NoError(t, err)

	assert.Equal(t, domain.SubmissionSucceeded, p.State())
	assert.Equal(t, "Thank you for your order, Rahim Uddin!", p.Acknowledgement())

	select {
	case <-navigated:
	case <-time.After(time.Second):
		t.Fatal("navigation never fired")
	}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func pricedProduct() *domain.Product {
	p := stockedProduct(5)
	p.CurrentPrice = dec("450.00")
	return p
}

func TestSubmitOrder_PayloadCarriesPriceBreakdown(t *testing.T) {
	api := &mockOrderAPI{}
	p := NewPipeline(api, nil, nil)

	draft := validOrderDraft()
	draft.Quantity = 3
	require.NoError(t, p.SubmitOrder(context.Background(), draft, pricedProduct()))

	api.m.Lock()
	req := api.lastSingle
	api.m.Unlock()
	assert.Equal(t, float64(450), req.UnitPrice)
	assert.Equal(t, float64(1350), req.ProductTotal)
	assert.Equal(t, float64(80), req.DeliveryCharge, "Dhaka is inside the capital")
	assert.Equal(t, float64(1430), req.TotalPrice)
	assert.Equal(t, int64(3), req.ProductID)
}

func TestSubmitOrder_ValidationNeverReachesNetwork(t *testing.T) {
	api := &mockOrderAPI{}
	p := NewPipeline(api, nil, nil)

	draft := validOrderDraft()
	draft.Quantity = 5
	err := p.SubmitOrder(context.Background(), draft, stockedProduct(2))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Only 2 items available in stock", verr.Reason)
	creates, _ := api.calls()
	assert.Zero(t, creates, "validation failures must not hit the order API")
	assert.Equal(t, domain.SubmissionIdle, p.State())
}

func TestSubmit_ReentrancyGuard(t *testing.T) {
	api := &mockOrderAPI{gate: make(chan struct{})}
	p := NewPipeline(api, nil, nil)

	done := make(chan error, 1)
	go func() {
		done <- p.SubmitOrder(context.Background(), validOrderDraft(), pricedProduct())
	}()

	// Wait for the first submit to be in flight, then double-click.
	require.Eventually(t, func() bool {
		return p.State() == domain.SubmissionSubmitting
	}, time.Second, time.Millisecond)

	err := p.SubmitOrder(context.Background(), validOrderDraft(), pricedProduct())
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(api.gate)
	require.NoError(t, <-done)

	creates, _ := api.calls()
	assert.Equal(t, 1, creates, "exactly one order call for a double submit")
}

func TestSubmit_FailedStateCarriesServerReasonVerbatim(t *testing.T) {
	api := &mockOrderAPI{err: &client.APIError{Status: 400, ErrorText: "Out of stock"}}
	refresher := &mockRefresher{}
	p := NewPipeline(api, refresher, nil)

	err := p.SubmitCheckout(context.Background(), validCheckoutDraft(), nonEmptyCart())
	require.NoError(t, err, "backend failures settle into Failed, they do not propagate")

	assert.Equal(t, domain.SubmissionFailed, p.State())
	assert.Equal(t, "Out of stock", p.FailureReason())
	assert.True(t, p.StockConflict())
	assert.Zero(t, refresher.count(), "no cart refresh on failure")
}

func TestSubmit_ReasonFallsBackToMessageThenGeneric(t *testing.T) {
	api := &mockOrderAPI{err: &client.APIError{Status: 500, Message: "temporary glitch"}}
	p := NewPipeline(api, nil, nil)
	require.NoError(t, p.SubmitOrder(context.Background(), validOrderDraft(), pricedProduct()))
	assert.Equal(t, "temporary glitch", p.FailureReason())

	api2 := &mockOrderAPI{err: client.ErrUnavailable}
	p2 := NewPipeline(api2, nil, nil)
	require.NoError(t, p2.SubmitOrder(context.Background(), validOrderDraft(), pricedProduct()))
	assert.Equal(t, GenericFailureMessage, p2.FailureReason())
	assert.False(t, p2.StockConflict())
}

func TestSubmit_RetryAfterFailure(t *testing.T) {
	api := &mockOrderAPI{err: &client.APIError{Status: 503, ErrorText: "busy"}}
	p := NewPipeline(api, nil, nil)

	require.NoError(t, p.SubmitOrder(context.Background(), validOrderDraft(), pricedProduct()))
	require.Equal(t, domain.SubmissionFailed, p.State())

	api.m.Lock()
	api.err = nil
	api.m.Unlock()

	require.NoError(t, p.SubmitOrder(context.Background(), validOrderDraft(), pricedProduct()))
	assert.Equal(t, domain.SubmissionSucceeded, p.State())
	assert.Empty(t, p.FailureReason())
}

func TestSubmit_SuccessIsTerminal(t *testing.T) {
	api := &mockOrderAPI{}
	p := NewPipeline(api, nil, nil)
	require.NoError(t, p.SubmitOrder(context.Background(), validOrderDraft(), pricedProduct()))

	err := p.SubmitOrder(context.Background(), validOrderDraft(), pricedProduct())
	assert.ErrorIs(t, err, ErrSubmissionDone)
	creates, _ := api.calls()
	assert.Equal(t, 1, creates)

	assert.ErrorIs(t, p.Reset(), ErrSubmissionDone)
}

func TestSubmitCheckout_RefreshesCartOnSuccessOnly(t *testing.T) {
	api := &mockOrderAPI{}
	refresher := &mockRefresher{}
	p := NewPipeline(api, refresher, nil)

	require.NoError(t, p.SubmitCheckout(context.Background(), validCheckoutDraft(), nonEmptyCart()))

	assert.Equal(t, domain.SubmissionSucceeded, p.State())
	assert.Equal(t, 1, refresher.count())
	_, fromCart := api.calls()
	assert.Equal(t, 1, fromCart)
}

func TestSubmitOrder_SingleFlowTouchesNoCart(t *testing.T) {
	api := &mockOrderAPI{}
	refresher := &mockRefresher{}
	p := NewPipeline(api, refresher, nil)

	require.NoError(t, p.SubmitOrder(context.Background(), validOrderDraft(), pricedProduct()))
	assert.Zero(t, refresher.count())
}

func TestAcknowledgement_OnlyAfterSuccess(t *testing.T) {
	api := &mockOrderAPI{err: &client.APIError{Status: 500, ErrorText: "boom"}}
	p := NewPipeline(api, nil, nil)
	assert.Empty(t, p.Acknowledgement(), "nothing to acknowledge before a submit")

	require.NoError(t, p.SubmitOrder(context.Background(), validOrderDraft(), pricedProduct()))
	assert.Empty(t, p.Acknowledgement(), "a failed submission acknowledges nothing")

	api.m.Lock()
	api.err = nil
	api.m.Unlock()
	require.NoError(t, p.SubmitOrder(context.Background(), validOrderDraft(), pricedProduct()))
	assert.Equal(t, "Thank you for your order, Rahim Uddin!", p.Acknowledgement())
}

func TestReset_ClearsFailure(t *testing.T) {
	api := &mockOrderAPI{err: &client.APIError{Status: 500, ErrorText: "boom"}}
	p := NewPipeline(api, nil, nil)
	require.NoError(t, p.SubmitOrder(context.Background(), validOrderDraft(), pricedProduct()))
	require.Equal(t, domain.SubmissionFailed, p.State())

	require.NoError(t, p.Reset())
	assert.Equal(t, domain.SubmissionIdle, p.State())
	assert.Empty(t, p.FailureReason())
}

func TestStop_CancelsPendingNavigation(t *testing.T) {
	api := &mockOrderAPI{}
	navigated := make(chan struct{}, 1)
	p := NewPipeline(api, nil, func() { navigated <- struct{}{} })
	p.delay = 50 * time.Millisecond

	require.NoError(t, p.SubmitOrder(context.Background(), validOrderDraft(), pricedProduct()))
	p.Stop()

	select {
	case <-navigated:
		t.Fatal("navigation fired after teardown")
	case <-time.After(120 * time.Millisecond):
	}
}
