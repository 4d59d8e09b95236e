package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/mdshakil05382/genzzone-frontend/domain"
)

// CatalogClient fetches products, the best-selling rail and the category
// tree.
type CatalogClient struct {
	c *Client
}

func NewCatalogClient(c *Client) *CatalogClient {
	return &CatalogClient{c: c}
}

func (cc *CatalogClient) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	err := cc.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d/", id), nil, &product)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (cc *CatalogClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := cc.c.doJSON(ctx, http.MethodGet, "/api/products/", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (cc *CatalogClient) BestSelling(ctx context.Context) ([]domain.BestSelling, error) {
	var items []domain.BestSelling
	if err := cc.c.doJSON(ctx, http.MethodGet, "/api/best-selling/", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (cc *CatalogClient) CategoryTree(ctx context.Context) ([]domain.Category, error) {
	var tree []domain.Category
	if err := cc.c.doJSON(ctx, http.MethodGet, "/api/categories/tree/", nil, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// ImageURL resolves a backend image reference against the media base URL.
// Absolute references pass through untouched; empty ones stay empty.
func ImageURL(base, ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	u, err := url.Parse(base)
	if err != nil || base == "" {
		return ref
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(ref, "/")
	return u.String()
}
