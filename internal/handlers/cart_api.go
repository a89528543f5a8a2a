package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/balaji-sweets/storefront/internal/catalog"
	"github.com/balaji-sweets/storefront/internal/models"
	"github.com/balaji-sweets/storefront/internal/services"
)

// CartStateResponse carries the fresh cart totals back to the client so the
// badge and cart view can re-render after every mutation.
type CartStateResponse struct {
	Count int   `json:"count"`
	Total int64 `json:"total"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// AddItemHandler handles adding a configured product to the cart
type AddItemHandler struct {
	catalog  *catalog.Catalog
	provider *CartProvider
}

// NewAddItemHandler creates a new add-item handler
func NewAddItemHandler(cat *catalog.Catalog, provider *CartProvider) *AddItemHandler {
	return &AddItemHandler{
		catalog:  cat,
		provider: provider,
	}
}

// AddItemRequest is the product configuration coming from the page: the
// product name plus the overlay's weight and quantity selection.
type AddItemRequest struct {
	Name     string `json:"name"`
	Weight   int    `json:"weight"`
	Quantity int    `json:"quantity"`
}

// ServeHTTP handles the POST /api/cart/items request
func (h *AddItemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	product, err := h.catalog.Find(req.Name)
	if err != nil {
		sendErrorResponse(w, "Unknown product", http.StatusNotFound)
		return
	}

	weight, err := models.ParseWeight(req.Weight)
	if err != nil {
		sendErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	cart := h.provider.CartFor(w, r)

	// Drive the product overlay controller the same way the page does:
	// open with the catalog triple, configure, confirm.
	selection := services.NewProductSelection(cart)
	if err := selection.Open(product.Name, product.BasePrice, product.Image); err != nil {
		sendErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := selection.SelectWeight(weight); err != nil {
		sendErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Quantity > 1 {
		if err := selection.AdjustQuantity(req.Quantity - 1); err != nil {
			sendErrorResponse(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if err := selection.Confirm(); err != nil {
		log.Printf("Error adding to cart: %v", err)
		sendErrorResponse(w, "Failed to add to cart", http.StatusInternalServerError)
		return
	}

	sendCartState(w, cart)
}

// QuantityHandler handles quantity stepper changes on a cart line
type QuantityHandler struct {
	provider *CartProvider
}

// NewQuantityHandler creates a new quantity handler
func NewQuantityHandler(provider *CartProvider) *QuantityHandler {
	return &QuantityHandler{provider: provider}
}

// QuantityRequest identifies a cart line and the signed quantity change.
type QuantityRequest struct {
	ID    string `json:"id"`
	Delta int    `json:"delta"`
}

// ServeHTTP handles the POST /api/cart/quantity request
func (h *QuantityHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req QuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		sendErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cart := h.provider.CartFor(w, r)
	if err := cart.UpdateQuantity(req.ID, req.Delta); err != nil {
		log.Printf("Error updating quantity: %v", err)
		sendErrorResponse(w, "Failed to update quantity", http.StatusInternalServerError)
		return
	}

	sendCartState(w, cart)
}

// RemoveItemHandler handles removing a cart line
type RemoveItemHandler struct {
	provider *CartProvider
}

// NewRemoveItemHandler creates a new remove handler
func NewRemoveItemHandler(provider *CartProvider) *RemoveItemHandler {
	return &RemoveItemHandler{provider: provider}
}

// RemoveRequest identifies the cart line to remove.
type RemoveRequest struct {
	ID string `json:"id"`
}

// ServeHTTP handles the POST /api/cart/remove request
func (h *RemoveItemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RemoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		sendErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cart := h.provider.CartFor(w, r)
	if err := cart.Remove(req.ID); err != nil {
		log.Printf("Error removing item: %v", err)
		sendErrorResponse(w, "Failed to remove item", http.StatusInternalServerError)
		return
	}

	sendCartState(w, cart)
}

// ClearCartHandler handles emptying the cart
type ClearCartHandler struct {
	provider *CartProvider
}

// NewClearCartHandler creates a new clear handler
func NewClearCartHandler(provider *CartProvider) *ClearCartHandler {
	return &ClearCartHandler{provider: provider}
}

// ServeHTTP handles the POST /api/cart/clear request
func (h *ClearCartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	cart := h.provider.CartFor(w, r)
	if err := cart.Clear(); err != nil {
		log.Printf("Error clearing cart: %v", err)
		sendErrorResponse(w, "Failed to clear cart", http.StatusInternalServerError)
		return
	}

	sendCartState(w, cart)
}

// CartCountHandler serves the cart badge query
type CartCountHandler struct {
	provider *CartProvider
}

// NewCartCountHandler creates a new count handler
func NewCartCountHandler(provider *CartProvider) *CartCountHandler {
	return &CartCountHandler{provider: provider}
}

// ServeHTTP handles the GET /api/cart/count request
func (h *CartCountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sendCartState(w, h.provider.CartFor(w, r))
}

// sendCartState writes the fresh count and total as JSON.
func sendCartState(w http.ResponseWriter, cart *services.CartService) {
	items, err := cart.Items()
	if err != nil {
		log.Printf("Error loading cart: %v", err)
		sendErrorResponse(w, "Failed to load cart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	resp := CartStateResponse{
		Count: items.TotalQuantity(),
		Total: items.Total(),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// sendErrorResponse sends a JSON error response
func sendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
