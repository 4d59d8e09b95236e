package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mdshakil05382/genzzone-frontend/internal/client"
	"github.com/mdshakil05382/genzzone-frontend/internal/session"
)

// NewRouter assembles the storefront API surface.
func NewRouter(backend *client.Client, sessions *session.Store, requestTimeout time.Duration) (chi.Router, *Registry) {
	catalogClient := client.NewCatalogClient(backend)
	cartClient := client.NewCartClient(backend)
	orderClient := client.NewOrderClient(backend)

	reg := NewRegistry(cartClient, orderClient)

	catalogHandler := NewCatalogHandler(catalogClient, requestTimeout)
	cartHandler := NewCartHandler(reg, requestTimeout)
	checkoutHandler := NewCheckoutHandler(reg, catalogClient, requestTimeout)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(SessionMiddleware(sessions))

		r.Get("/products", catalogHandler.ListProducts)
		r.Get("/products/{id}", catalogHandler.GetProduct)
		r.Get("/best-selling", catalogHandler.BestSelling)
		r.Get("/categories/tree", catalogHandler.CategoryTree)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{item_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{item_id}", cartHandler.RemoveItem)
			r.Post("/checkout", checkoutHandler.CheckoutCart)
		})

		r.Get("/checkout/quote", checkoutHandler.Quote)
		r.Post("/orders", checkoutHandler.CreateOrder)
	})

	return r, reg
}
