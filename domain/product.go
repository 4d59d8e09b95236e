package domain

import "github.com/shopspring/decimal"

// Product mirrors the catalog backend's product representation. Prices
// arrive as JSON strings and stay decimal end to end.
type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Category     *Category       `json:"category,omitempty"`
	CategorySlug string          `json:"category_slug,omitempty"`
	RegularPrice decimal.Decimal `json:"regular_price"`
	OfferPrice   decimal.Decimal `json:"offer_price,omitempty"`
	HasOffer     bool            `json:"has_offer"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	Stock        int             `json:"stock"`
	Image        string          `json:"image,omitempty"`
}

// EffectivePrice is the unit price a shopper pays right now. The backend
// precomputes current_price; when it is absent the offer price counts only
// if it actually undercuts the regular price.
func (p *Product) EffectivePrice() decimal.Decimal {
	if !p.CurrentPrice.IsZero() {
		return p.CurrentPrice
	}
	if p.HasOffer && !p.OfferPrice.IsZero() && p.OfferPrice.LessThan(p.RegularPrice) {
		return p.OfferPrice
	}
	return p.RegularPrice
}

func (p *Product) InStock() bool {
	return p.Stock > 0
}

// DiscountPercent is the rounded badge percentage, 0 when there is no
// valid offer.
func (p *Product) DiscountPercent() int {
	if !p.HasOffer || p.OfferPrice.IsZero() || !p.OfferPrice.LessThan(p.RegularPrice) || p.RegularPrice.IsZero() {
		return 0
	}
	ratio := p.RegularPrice.Sub(p.OfferPrice).Div(p.RegularPrice).Mul(decimal.NewFromInt(100))
	return int(ratio.Round(0).IntPart())
}

// CategoryDisplayName prefers the nested category object and falls back to
// the legacy slug field.
func (p *Product) CategoryDisplayName() string {
	if p.Category != nil {
		if p.Category.ParentName != "" {
			return p.Category.ParentName + " - " + p.Category.Name
		}
		return p.Category.Name
	}
	return p.CategorySlug
}

type Category struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Slug       string     `json:"slug"`
	ParentName string     `json:"parent_name,omitempty"`
	Children   []Category `json:"children,omitempty"`
}

// BestSelling is one entry of the curated best-selling rail.
type BestSelling struct {
	ID         int64   `json:"id"`
	Product    Product `json:"product"`
	SalesCount int     `json:"sales_count,omitempty"`
}
