package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/balaji-sweets/storefront/internal/services"
)

// CheckoutHandler composes the WhatsApp order handoff
type CheckoutHandler struct {
	provider *CartProvider
	notifier services.Notifier
	opener   services.Opener
	phone    string
}

// NewCheckoutHandler creates a new checkout handler. phone is the WhatsApp
// recipient in international format without a leading plus.
func NewCheckoutHandler(provider *CartProvider, notifier services.Notifier, opener services.Opener, phone string) *CheckoutHandler {
	return &CheckoutHandler{
		provider: provider,
		notifier: notifier,
		opener:   opener,
		phone:    phone,
	}
}

// CheckoutRequest carries the optional customer details for the order message.
type CheckoutRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// CheckoutResponse returns the composed wa.me URL for the client to open.
type CheckoutResponse struct {
	URL string `json:"url"`
}

// ServeHTTP handles the POST /api/checkout request
func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cart := h.provider.CartFor(w, r)
	checkout := services.NewCheckoutService(cart, h.notifier, h.opener, h.phone)

	url, err := checkout.Checkout(req.Name, req.Address)
	if errors.Is(err, services.ErrEmptyCart) {
		sendErrorResponse(w, "Cart empty", http.StatusConflict)
		return
	}
	if err != nil {
		log.Printf("Error composing checkout: %v", err)
		sendErrorResponse(w, "Failed to compose order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(CheckoutResponse{URL: url}); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
