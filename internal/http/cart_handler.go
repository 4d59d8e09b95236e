package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mdshakil05382/genzzone-frontend/internal/client"
)

// CartHandler serves the cart endpoints through the shopper's mirror, so
// what the browser sees is always the backend's last answer.
type CartHandler struct {
	reg     *Registry
	timeout time.Duration
}

func NewCartHandler(reg *Registry, timeout time.Duration) *CartHandler {
	return &CartHandler{
		reg:     reg,
		timeout: timeout,
	}
}

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	store := h.reg.CartFor(client.SessionFromContext(r.Context()))
	if err := store.Refresh(ctx); err != nil {
		handleClientError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, store.Cart())
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	store := h.reg.CartFor(client.SessionFromContext(r.Context()))
	if err := store.Add(ctx, req.ProductID, req.Quantity); err != nil {
		handleClientError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, store.Cart())
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	itemID, err := strconv.ParseInt(chi.URLParam(r, "item_id"), 10, 64)
	if err != nil || itemID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "item_id must be a positive integer")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity < 1 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be at least 1")
		return
	}

	store := h.reg.CartFor(client.SessionFromContext(r.Context()))
	if err := store.Update(ctx, itemID, req.Quantity); err != nil {
		handleClientError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, store.Cart())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	itemID, err := strconv.ParseInt(chi.URLParam(r, "item_id"), 10, 64)
	if err != nil || itemID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "item_id must be a positive integer")
		return
	}

	store := h.reg.CartFor(client.SessionFromContext(r.Context()))
	if err := store.Remove(ctx, itemID); err != nil {
		handleClientError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, store.Cart())
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	store := h.reg.CartFor(client.SessionFromContext(r.Context()))
	if err := store.Clear(ctx); err != nil {
		handleClientError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, store.Cart())
}
