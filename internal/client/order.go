package client

import (
	"context"
	"net/http"
)

// OrderClient submits orders. Field names are the backend's wire contract
// and must not change.
type OrderClient struct {
	c *Client
}

func NewOrderClient(c *Client) *OrderClient {
	return &OrderClient{c: c}
}

// SingleOrderRequest is the single-product order payload, price breakdown
// included. Prices are rounded to two decimals before they go on the wire.
type SingleOrderRequest struct {
	CustomerName   string  `json:"customer_name"`
	District       string  `json:"district"`
	Address        string  `json:"address"`
	PhoneNumber    string  `json:"phone_number"`
	ProductID      int64   `json:"product_id"`
	ProductSize    string  `json:"product_size"`
	Quantity       int     `json:"quantity"`
	OrderNote      string  `json:"order_note,omitempty"`
	UnitPrice      float64 `json:"unit_price"`
	ProductTotal   float64 `json:"product_total"`
	DeliveryCharge float64 `json:"delivery_charge"`
	TotalPrice     float64 `json:"total_price"`
}

// CheckoutRequest is the cart-checkout payload. No product identifiers:
// the backend resolves items from the cart tied to the session token.
type CheckoutRequest struct {
	CustomerName string `json:"customer_name"`
	District     string `json:"district"`
	Address      string `json:"address"`
	PhoneNumber  string `json:"phone_number"`
	ProductSize  string `json:"product_size,omitempty"`
	OrderNote    string `json:"order_note,omitempty"`
}

type OrderResponse struct {
	OrderID int64  `json:"order_id,omitempty"`
	Message string `json:"message,omitempty"`
}

func (oc *OrderClient) Create(ctx context.Context, req SingleOrderRequest) (*OrderResponse, error) {
	var resp OrderResponse
	if err := oc.c.doJSON(ctx, http.MethodPost, "/api/orders/create/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (oc *OrderClient) CreateFromCart(ctx context.Context, req CheckoutRequest) (*OrderResponse, error) {
	var resp OrderResponse
	if err := oc.c.doJSON(ctx, http.MethodPost, "/api/orders/create-from-cart/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
