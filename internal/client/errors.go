package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	// ErrUnavailable wraps every transport-level failure, including an
	// open circuit breaker. The backend was never reached or never
	// answered.
	ErrUnavailable = errors.New("backend unavailable")

	ErrProductNotFound = errors.New("product not found")
)

// APIError is a structured non-2xx answer from the backend. ErrorText is
// the payload's "error" field; Message its "message" field.
type APIError struct {
	Status    int
	ErrorText string `json:"error"`
	Message   string `json:"message"`
	Code      string `json:"code,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Reason())
}

// Reason picks the display reason the way the storefront always has:
// the "error" field first, then "message", else empty so the caller can
// substitute its generic text.
func (e *APIError) Reason() string {
	if e.ErrorText != "" {
		return e.ErrorText
	}
	return e.Message
}

// IsStockConflict distinguishes the quantity-exceeds-live-stock rejection
// so the UI can prompt a quantity correction instead of a blind retry.
func (e *APIError) IsStockConflict() bool {
	if e.Status == http.StatusConflict {
		return true
	}
	if e.Code == "out_of_stock" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Reason()), "out of stock")
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil && len(data) > 0 {
		// Body may not be JSON at all (proxies, plain-text 502s);
		// the status code alone is still a usable APIError.
		json.Unmarshal(data, apiErr)
	}
	return apiErr
}
