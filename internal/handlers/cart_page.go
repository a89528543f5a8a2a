package handlers

import (
	"html/template"
	"log"
	"net/http"
)

// CartPageHandler renders the cart page
type CartPageHandler struct {
	template *template.Template
	provider *CartProvider
}

// CartLine is one cart entry prepared for display.
type CartLine struct {
	ID        string
	Title     string
	Weight    string
	Qty       int
	LineTotal int64
}

// CartPageData represents the data passed to the cart template
type CartPageData struct {
	Lines []CartLine
	Total int64
	Count int
	Empty bool
}

// NewCartPageHandler creates a new cart page handler
func NewCartPageHandler(templatePath string, provider *CartProvider) (*CartPageHandler, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, err
	}

	return &CartPageHandler{
		template: tmpl,
		provider: provider,
	}, nil
}

// ServeHTTP handles the GET /cart request
func (h *CartPageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	cart := h.provider.CartFor(w, r)
	items, err := cart.Items()
	if err != nil {
		log.Printf("Error loading cart: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := CartPageData{
		Total: items.Total(),
		Count: items.TotalQuantity(),
		Empty: items.IsEmpty(),
	}
	for _, item := range items {
		data.Lines = append(data.Lines, CartLine{
			ID:        item.ID,
			Title:     item.Title,
			Weight:    item.Weight,
			Qty:       item.Qty,
			LineTotal: item.Total(),
		})
	}

	if err := h.template.Execute(w, data); err != nil {
		log.Printf("Error rendering template: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
