package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mdshakil05382/genzzone-frontend/domain"
	"github.com/mdshakil05382/genzzone-frontend/internal/checkout"
	"github.com/mdshakil05382/genzzone-frontend/internal/client"
	"github.com/mdshakil05382/genzzone-frontend/internal/pricing"
)

// CheckoutHandler fronts the pricing preview and both order flows.
type CheckoutHandler struct {
	reg     *Registry
	catalog *client.CatalogClient
	timeout time.Duration
}

func NewCheckoutHandler(reg *Registry, catalog *client.CatalogClient, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		reg:     reg,
		catalog: catalog,
		timeout: timeout,
	}
}

type OrderRequestDTO struct {
	CustomerName string `json:"customer_name"`
	District     string `json:"district"`
	Address      string `json:"address"`
	PhoneNumber  string `json:"phone_number"`
	ProductID    int64  `json:"product_id"`
	ProductSize  string `json:"product_size"`
	Quantity     int    `json:"quantity"`
	OrderNote    string `json:"order_note"`
}

type CheckoutRequestDTO struct {
	CustomerName string `json:"customer_name"`
	District     string `json:"district"`
	Address      string `json:"address"`
	PhoneNumber  string `json:"phone_number"`
	ProductSize  string `json:"product_size"`
	OrderNote    string `json:"order_note"`
}

type SubmissionResponseDTO struct {
	Message              string `json:"message"`
	RedirectAfterSeconds int    `json:"redirect_after_seconds"`
}

type QuoteResponseDTO struct {
	ItemCount             int     `json:"item_count"`
	Subtotal              float64 `json:"subtotal"`
	DeliveryCharge        float64 `json:"delivery_charge"`
	GrandTotal            float64 `json:"grand_total"`
	SubtotalDisplay       string  `json:"subtotal_display"`
	DeliveryChargeDisplay string  `json:"delivery_charge_display"`
	GrandTotalDisplay     string  `json:"grand_total_display"`
}

// Quote prices the current cart for a district the shopper is still
// choosing. No district at all is fine; the charge is just zero.
func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	district := r.URL.Query().Get("district")
	if district != "" && !domain.IsValidDistrict(district) {
		respondError(w, http.StatusBadRequest, "unknown_district", "unknown district")
		return
	}

	store := h.reg.CartFor(client.SessionFromContext(r.Context()))
	if err := store.Refresh(ctx); err != nil {
		handleClientError(w, err)
		return
	}

	totals := pricing.CheckoutTotals(store.Cart(), domain.ZoneForDistrict(district))
	respondJSON(w, http.StatusOK, QuoteResponseDTO{
		ItemCount:             totals.ItemCount,
		Subtotal:              totals.Subtotal.Round(2).InexactFloat64(),
		DeliveryCharge:        totals.DeliveryCharge.Round(2).InexactFloat64(),
		GrandTotal:            totals.GrandTotal.Round(2).InexactFloat64(),
		SubtotalDisplay:       pricing.FormatTaka(totals.Subtotal),
		DeliveryChargeDisplay: pricing.FormatTaka(totals.DeliveryCharge),
		GrandTotalDisplay:     pricing.FormatTaka(totals.GrandTotal),
	})
}

// CreateOrder is the single-product flow: resolve the product for its
// live stock and price, then run the shopper's pipeline.
func (h *CheckoutHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req OrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	product, err := h.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		handleClientError(w, err)
		return
	}

	draft := domain.NewOrderDraft(
		req.CustomerName, req.District, req.Address,
		req.PhoneNumber, req.ProductSize, req.OrderNote, req.Quantity,
	)

	token := client.SessionFromContext(r.Context())
	pipeline := h.reg.PipelineFor(token)
	h.finishSubmission(w, pipeline, pipeline.SubmitOrder(ctx, draft, product))
}

// CheckoutCart is the cart flow: re-mirror the cart from the server so
// validation sees live contents, then submit.
func (h *CheckoutHandler) CheckoutCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	token := client.SessionFromContext(r.Context())
	store := h.reg.CartFor(token)
	if err := store.Refresh(ctx); err != nil {
		handleClientError(w, err)
		return
	}

	draft := domain.NewCheckoutDraft(
		req.CustomerName, req.District, req.Address,
		req.PhoneNumber, req.ProductSize, req.OrderNote,
	)

	pipeline := h.reg.PipelineFor(token)
	h.finishSubmission(w, pipeline, pipeline.SubmitCheckout(ctx, draft, store.Cart()))
}

func (h *CheckoutHandler) finishSubmission(w http.ResponseWriter, pipeline *checkout.Pipeline, err error) {
	if err != nil {
		var verr *checkout.ValidationError
		switch {
		case errors.As(err, &verr):
			respondError(w, http.StatusUnprocessableEntity, "validation_failed", verr.Reason)
		case errors.Is(err, checkout.ErrSubmitInFlight):
			respondError(w, http.StatusTooManyRequests, "submission_in_flight", "an order submission is already in progress")
		case errors.Is(err, checkout.ErrSubmissionDone):
			respondError(w, http.StatusConflict, "already_placed", "this order was already placed")
		default:
			respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		}
		return
	}

	switch pipeline.State() {
	case domain.SubmissionSucceeded:
		respondJSON(w, http.StatusCreated, SubmissionResponseDTO{
			Message:              pipeline.Acknowledgement(),
			RedirectAfterSeconds: int(checkout.NavigateDelay / time.Second),
		})
	case domain.SubmissionFailed:
		if pipeline.StockConflict() {
			respondError(w, http.StatusConflict, "out_of_stock", pipeline.FailureReason())
			return
		}
		respondError(w, http.StatusBadGateway, "order_failed", pipeline.FailureReason())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "unexpected submission state")
	}
}
