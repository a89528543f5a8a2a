package handlers

import (
	"html/template"
	"log"
	"net/http"

	"github.com/balaji-sweets/storefront/internal/catalog"
	"github.com/balaji-sweets/storefront/internal/models"
)

// MenuHandler renders the product menu page
type MenuHandler struct {
	template *template.Template
	catalog  *catalog.Catalog
	provider *CartProvider
}

// MenuProduct is one catalog entry prepared for display.
type MenuProduct struct {
	Name      string
	BasePrice int64
	Image     string
	Category  string
}

// MenuData represents the data passed to the menu template
type MenuData struct {
	Products  []MenuProduct
	Weights   []models.Weight
	CartCount int
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(templatePath string, cat *catalog.Catalog, provider *CartProvider) (*MenuHandler, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, err
	}

	return &MenuHandler{
		template: tmpl,
		catalog:  cat,
		provider: provider,
	}, nil
}

// ServeHTTP handles the GET / request
func (h *MenuHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	cart := h.provider.CartFor(w, r)
	count, err := cart.TotalQuantity()
	if err != nil {
		log.Printf("Error loading cart count: %v", err)
	}

	data := MenuData{
		Weights:   models.Weights(),
		CartCount: count,
	}
	for _, p := range h.catalog.List() {
		data.Products = append(data.Products, MenuProduct{
			Name:      p.Name,
			BasePrice: p.BasePrice,
			Image:     p.Image,
			Category:  p.Category,
		})
	}

	if err := h.template.Execute(w, data); err != nil {
		log.Printf("Error rendering template: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
