// Package pricing computes the checkout-time money figures: delivery
// charge by zone, cart grand totals and the single-order price breakdown.
// Everything is pure and decimal-safe; display rounding happens only in
// FormatTaka.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/mdshakil05382/genzzone-frontend/domain"
)

var (
	chargeInsideCapital  = decimal.NewFromInt(80)
	chargeOutsideCapital = decimal.NewFromInt(150)
)

// DeliveryCharge is a fixed two-tier step function over the zone. With no
// zone selected yet the charge is zero; that state is display-only and
// never submittable.
func DeliveryCharge(zone domain.DeliveryZone) decimal.Decimal {
	switch zone {
	case domain.ZoneInsideCapital:
		return chargeInsideCapital
	case domain.ZoneOutsideCapital:
		return chargeOutsideCapital
	default:
		return decimal.Zero
	}
}

// Totals is what the checkout summary shows for a cart.
type Totals struct {
	Subtotal       decimal.Decimal
	DeliveryCharge decimal.Decimal
	GrandTotal     decimal.Decimal
	ItemCount      int
}

// CheckoutTotals derives the checkout figures from the server-owned cart
// and the selected zone. Item subtotals are taken as the server computed
// them, never recomputed here.
func CheckoutTotals(cart *domain.Cart, zone domain.DeliveryZone) Totals {
	subtotal := decimal.Zero
	count := 0
	if cart != nil {
		for _, item := range cart.Items {
			subtotal = subtotal.Add(item.Subtotal)
			count += item.Quantity
		}
	}
	charge := DeliveryCharge(zone)
	return Totals{
		Subtotal:       subtotal,
		DeliveryCharge: charge,
		GrandTotal:     subtotal.Add(charge),
		ItemCount:      count,
	}
}

// Breakdown carries the price fields of the single-product order payload.
type Breakdown struct {
	UnitPrice      decimal.Decimal
	ProductTotal   decimal.Decimal
	DeliveryCharge decimal.Decimal
	TotalPrice     decimal.Decimal
}

// OrderBreakdown prices a single-product order: product total is unit
// price times quantity, total price adds the delivery charge.
func OrderBreakdown(unitPrice decimal.Decimal, quantity int, zone domain.DeliveryZone) Breakdown {
	productTotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	charge := DeliveryCharge(zone)
	return Breakdown{
		UnitPrice:      unitPrice,
		ProductTotal:   productTotal,
		DeliveryCharge: charge,
		TotalPrice:     productTotal.Add(charge),
	}
}

// FormatTaka renders an amount the way the storefront always has: rounded
// to whole taka with a literal ".00" suffix, e.g. "Tk 950.00".
func FormatTaka(amount decimal.Decimal) string {
	return "Tk " + amount.Round(0).StringFixed(0) + ".00"
}
