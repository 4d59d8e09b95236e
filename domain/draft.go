package domain

import "strings"

// OrderDraft is the transient form state of the single-product flow. It is
// never persisted; it lives until the order succeeds or the shopper
// leaves.
type OrderDraft struct {
	CustomerName string
	District     string
	Zone         DeliveryZone
	Address      string
	PhoneNumber  string
	ProductSize  string
	OrderNote    string
	Quantity     int
}

// NewOrderDraft trims the free-text fields and derives the pricing tier
// from the district once, at construction.
func NewOrderDraft(name, district, address, phone, size, note string, quantity int) OrderDraft {
	return OrderDraft{
		CustomerName: strings.TrimSpace(name),
		District:     strings.TrimSpace(district),
		Zone:         ZoneForDistrict(district),
		Address:      strings.TrimSpace(address),
		PhoneNumber:  strings.TrimSpace(phone),
		ProductSize:  strings.TrimSpace(size),
		OrderNote:    strings.TrimSpace(note),
		Quantity:     quantity,
	}
}

// CheckoutDraft is the cart-flow counterpart: no quantity, the backend
// resolves items from the server-side cart.
type CheckoutDraft struct {
	CustomerName string
	District     string
	Zone         DeliveryZone
	Address      string
	PhoneNumber  string
	ProductSize  string
	OrderNote    string
}

func NewCheckoutDraft(name, district, address, phone, size, note string) CheckoutDraft {
	return CheckoutDraft{
		CustomerName: strings.TrimSpace(name),
		District:     strings.TrimSpace(district),
		Zone:         ZoneForDistrict(district),
		Address:      strings.TrimSpace(address),
		PhoneNumber:  strings.TrimSpace(phone),
		ProductSize:  strings.TrimSpace(size),
		OrderNote:    strings.TrimSpace(note),
	}
}
