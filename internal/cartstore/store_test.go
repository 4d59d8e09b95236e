package cartstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdshakil05382/genzzone-frontend/domain"
)

type mockCartAPI struct {
	m        sync.Mutex
	cart     *domain.Cart
	err      error
	getCalls int
	gate     chan struct{} // when set, Get blocks until closed
}

func (m *mockCartAPI) Get(context.Context) (*domain.Cart, error) {
	m.m.Lock()
	m.getCalls++
	gate := m.gate
	m.m.Unlock()
	if gate != nil {
		<-gate
	}
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.cart.Clone(), nil
}

func (m *mockCartAPI) respond(items ...domain.CartItem) *domain.Cart {
	count := 0
	total := decimal.Zero
	for _, it := range items {
		count += it.Quantity
		total = total.Add(it.Subtotal)
	}
	cart := &domain.Cart{ID: 1, Items: items, ItemCount: count, Total: total}
	m.m.Lock()
	m.cart = cart
	m.m.Unlock()
	return cart
}

func (m *mockCartAPI) Add(context.Context, int64, int) (*domain.Cart, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.cart.Clone(), nil
}

func (m *mockCartAPI) UpdateItem(context.Context, int64, int) (*domain.Cart, error) {
	return m.Add(context.Background(), 0, 0)
}

func (m *mockCartAPI) RemoveItem(context.Context, int64) (*domain.Cart, error) {
	return m.Add(context.Background(), 0, 0)
}

func (m *mockCartAPI) Clear(context.Context) (*domain.Cart, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return domain.EmptyCart(), nil
}

func item(id int64, qty int, subtotal string) domain.CartItem {
	d, _ := decimal.NewFromString(subtotal)
	return domain.CartItem{ID: id, Quantity: qty, Subtotal: d}
}

func TestAdd_ReplacesMirrorWithServerResponse(t *testing.T) {
	api := &mockCartAPI{}
	api.respond(item(1, 2, "900"))
	store := New(api)

	require.NoError(t, store.Add(context.Background(), 3, 2))

	cart := store.Cart()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, store.ItemCount())
	assert.Equal(t, int64(1), cart.ID)
}

func TestAdd_DefaultsQuantityToOne(t *testing.T) {
	api := &mockCartAPI{}
	api.respond(item(1, 1, "450"))
	store := New(api)

	require.NoError(t, store.Add(context.Background(), 3, 0))
	assert.Equal(t, 1, store.ItemCount())
}

func TestMutatorFailure_LeavesMirrorUntouchedAndRethrows(t *testing.T) {
	api := &mockCartAPI{}
	api.respond(item(1, 2, "900"))
	store := New(api)
	require.NoError(t, store.Refresh(context.Background()))

	boom := errors.New("backend rejected")
	api.m.Lock()
	api.err = boom
	api.m.Unlock()

	err := store.Update(context.Background(), 1, 5)
	assert.ErrorIs(t, err, boom)

	cart := store.Cart()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity, "failed mutation must not patch the mirror")
}

func TestRefresh_FailureYieldsEmptyNotStale(t *testing.T) {
	api := &mockCartAPI{}
	api.respond(item(1, 2, "900"))
	store := New(api)
	require.NoError(t, store.Refresh(context.Background()))
	require.Equal(t, 2, store.ItemCount())

	api.m.Lock()
	api.err = errors.New("fetch failed")
	api.m.Unlock()

	err := store.Refresh(context.Background())
	assert.Error(t, err)
	assert.True(t, store.Cart().IsEmpty(), "a cart the server cannot confirm must not be shown")
	assert.False(t, store.Loading())
}

func TestRefresh_Idempotent(t *testing.T) {
	api := &mockCartAPI{}
	api.respond(item(1, 1, "500"), item(2, 1, "300"))
	store := New(api)

	require.NoError(t, store.Refresh(context.Background()))
	first := store.Cart()
	require.NoError(t, store.Refresh(context.Background()))
	second := store.Cart()

	assert.Equal(t, first.ItemCount, second.ItemCount)
	assert.True(t, first.Total.Equal(second.Total))
	assert.Equal(t, len(first.Items), len(second.Items))
}

func TestRefresh_ConcurrentCallsCollapse(t *testing.T) {
	api := &mockCartAPI{gate: make(chan struct{})}
	api.respond(item(1, 1, "500"))
	store := New(api)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Refresh(context.Background())
		}()
	}
	// Let the goroutines pile up on the in-flight fetch, then release it.
	for {
		api.m.Lock()
		started := api.getCalls > 0
		api.m.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}
	time.Sleep(50 * time.Millisecond)
	close(api.gate)
	wg.Wait()

	api.m.Lock()
	calls := api.getCalls
	api.m.Unlock()
	assert.Less(t, calls, 5, "concurrent refreshes must be deduplicated")
	assert.Equal(t, 1, store.ItemCount())
}

func TestLoading_SpansRefreshOnly(t *testing.T) {
	api := &mockCartAPI{}
	api.respond(item(1, 1, "500"))
	store := New(api)

	var sawLoading bool
	unsubscribe := store.Subscribe(func(snap Snapshot) {
		if snap.Loading {
			sawLoading = true
		}
	})
	defer unsubscribe()

	require.NoError(t, store.Refresh(context.Background()))
	assert.True(t, sawLoading)
	assert.False(t, store.Loading())

	sawLoading = false
	require.NoError(t, store.Add(context.Background(), 1, 1))
	assert.False(t, sawLoading, "item mutators must not flip loading")
}

func TestSubscribe_NotifiesAndUnsubscribes(t *testing.T) {
	api := &mockCartAPI{}
	api.respond(item(1, 2, "900"))
	store := New(api)

	var got []Snapshot
	unsubscribe := store.Subscribe(func(snap Snapshot) {
		got = append(got, snap)
	})

	require.NoError(t, store.Add(context.Background(), 3, 2))
	require.NotEmpty(t, got)
	last := got[len(got)-1]
	assert.Equal(t, 2, last.Cart.ItemCount)

	unsubscribe()
	seen := len(got)
	require.NoError(t, store.Clear(context.Background()))
	assert.Len(t, got, seen, "unsubscribed observer must not be called")
	assert.True(t, store.Cart().IsEmpty())
}

func TestCart_SnapshotIsDetached(t *testing.T) {
	api := &mockCartAPI{}
	api.respond(item(1, 2, "900"))
	store := New(api)
	require.NoError(t, store.Refresh(context.Background()))

	snap := store.Cart()
	snap.Items[0].Quantity = 99

	assert.Equal(t, 2, store.Cart().Items[0].Quantity)
}
