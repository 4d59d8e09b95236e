package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mdshakil05382/genzzone-frontend/domain"
)

// CartClient mutates the server-owned cart. Every call returns the full
// cart as the backend now sees it; callers replace their state with it
// wholesale.
type CartClient struct {
	c *Client
}

func NewCartClient(c *Client) *CartClient {
	return &CartClient{c: c}
}

type addItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// Get fetches the session's cart. The backend answers with its empty-cart
// representation when none exists yet.
func (cc *CartClient) Get(ctx context.Context) (*domain.Cart, error) {
	var cart domain.Cart
	if err := cc.c.doJSON(ctx, http.MethodGet, "/api/cart/", nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (cc *CartClient) Add(ctx context.Context, productID int64, quantity int) (*domain.Cart, error) {
	var cart domain.Cart
	req := addItemRequest{ProductID: productID, Quantity: quantity}
	if err := cc.c.doJSON(ctx, http.MethodPost, "/api/cart/add/", req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (cc *CartClient) UpdateItem(ctx context.Context, itemID int64, quantity int) (*domain.Cart, error) {
	var cart domain.Cart
	req := updateItemRequest{Quantity: quantity}
	path := fmt.Sprintf("/api/cart/items/%d/", itemID)
	if err := cc.c.doJSON(ctx, http.MethodPut, path, req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (cc *CartClient) RemoveItem(ctx context.Context, itemID int64) (*domain.Cart, error) {
	var cart domain.Cart
	path := fmt.Sprintf("/api/cart/items/%d/", itemID)
	if err := cc.c.doJSON(ctx, http.MethodDelete, path, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// Clear drops every item. Some backend versions answer 204 with no body;
// that still means the cart is now empty.
func (cc *CartClient) Clear(ctx context.Context) (*domain.Cart, error) {
	var cart domain.Cart
	if err := cc.c.doJSON(ctx, http.MethodDelete, "/api/cart/clear/", nil, &cart); err != nil {
		return nil, err
	}
	if cart.Items == nil {
		return domain.EmptyCart(), nil
	}
	return &cart, nil
}
