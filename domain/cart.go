package domain

import "github.com/shopspring/decimal"

// Cart is owned by the backend. The client only ever holds what the last
// server response said; item_count and total are never recomputed locally.
type Cart struct {
	ID        int64           `json:"id"`
	Items     []CartItem      `json:"items"`
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
}

type CartItem struct {
	ID       int64           `json:"id"`
	CartID   int64           `json:"cart"`
	Product  Product         `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// EmptyCart is the representation used when the backend has no cart for
// the session, or when a fetch failed and the mirror must not stay stale.
func EmptyCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

// Clone deep-copies the cart so store consumers can never reach the
// mirror's backing slices.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Items = make([]CartItem, len(c.Items))
	copy(cp.Items, c.Items)
	return &cp
}
