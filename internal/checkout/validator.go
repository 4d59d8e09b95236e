package checkout

import (
	"fmt"
	"strings"

	"github.com/mdshakil05382/genzzone-frontend/domain"
)

// Form validation for both order flows. Rules run in a fixed order and
// the first failure wins; callers re-run validation on every submit
// attempt because stock and cart contents move between renders.

const (
	msgNameRequired    = "Please enter your name"
	msgDistrictMissing = "Please select a district"
	msgAddressRequired = "Please enter your address"
	msgPhoneRequired   = "Please enter your phone number"
	msgQuantityMin     = "Quantity must be at least 1"
	msgOutOfStock      = "This product is currently out of stock."
	msgCartEmpty       = "Cart is empty"
	msgNoProduct       = "Product not selected"
)

// ValidateOrder checks the single-product order form against the
// product's live stock.
func ValidateOrder(draft domain.OrderDraft, product *domain.Product) error {
	if product == nil {
		return validationErr(msgNoProduct)
	}
	if err := validateCustomer(draft.CustomerName, draft.Zone, draft.Address, draft.PhoneNumber); err != nil {
		return err
	}
	if product.Stock == 0 {
		return validationErr(msgOutOfStock)
	}
	if draft.Quantity < 1 {
		return validationErr(msgQuantityMin)
	}
	if draft.Quantity > product.Stock {
		return validationErr(fmt.Sprintf("Only %d items available in stock", product.Stock))
	}
	return nil
}

// ValidateCheckout checks the cart-checkout form; the cart passed in must
// be the current mirror, not a cached render.
func ValidateCheckout(draft domain.CheckoutDraft, cart *domain.Cart) error {
	if err := validateCustomer(draft.CustomerName, draft.Zone, draft.Address, draft.PhoneNumber); err != nil {
		return err
	}
	if cart.IsEmpty() {
		return validationErr(msgCartEmpty)
	}
	return nil
}

func validateCustomer(name string, zone domain.DeliveryZone, address, phone string) error {
	if strings.TrimSpace(name) == "" {
		return validationErr(msgNameRequired)
	}
	if !zone.Selected() {
		return validationErr(msgDistrictMissing)
	}
	if strings.TrimSpace(address) == "" {
		return validationErr(msgAddressRequired)
	}
	// Presence only; no format rule is enforced on phone numbers.
	if strings.TrimSpace(phone) == "" {
		return validationErr(msgPhoneRequired)
	}
	return nil
}
