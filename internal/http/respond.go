package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/mdshakil05382/genzzone-frontend/internal/client"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleClientError maps backend-client failures onto gateway responses.
// Structured backend errors keep their message; transport failures become
// a 503.
func handleClientError(w http.ResponseWriter, err error) {
	if errors.Is(err, client.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "Product not found")
		return
	}
	if errors.Is(err, client.ErrUnavailable) {
		respondError(w, http.StatusServiceUnavailable, "service_unavailable", "Backend is unavailable, please try again")
		return
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Reason()
		if msg == "" {
			msg = "internal server error"
		}
		respondJSON(w, http.StatusBadGateway, ErrorResponse{
			Error:   msg,
			Code:    "upstream_error",
			Details: fmt.Sprintf("upstream status %d", apiErr.Status),
		})
		return
	}
	respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}
