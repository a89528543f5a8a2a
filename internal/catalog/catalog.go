package catalog

import "errors"

// ErrNotFound is returned when a requested product is not in the catalog.
var ErrNotFound = errors.New("product not found")

// Product is one catalog entry. BasePrice is rupees per quarter kilogram;
// the three values here are the whole contract the overlay depends on.
type Product struct {
	Name      string
	BasePrice int64
	Image     string
	Category  string
}

// Catalog is the fixed set of products offered by the shop.
type Catalog struct {
	products []Product
}

// New creates a catalog over the given products.
func New(products []Product) *Catalog {
	return &Catalog{products: products}
}

// Default returns the standard Balaji Sweets menu.
func Default() *Catalog {
	return New([]Product{
		{Name: "Motichoor Ladoo", BasePrice: 180, Image: "/static/images/motichoor-ladoo.jpg", Category: "Ladoo"},
		{Name: "Besan Ladoo", BasePrice: 160, Image: "/static/images/besan-ladoo.jpg", Category: "Ladoo"},
		{Name: "Kaju Katli", BasePrice: 280, Image: "/static/images/kaju-katli.jpg", Category: "Barfi"},
		{Name: "Milk Barfi", BasePrice: 200, Image: "/static/images/milk-barfi.jpg", Category: "Barfi"},
		{Name: "Mysore Pak", BasePrice: 220, Image: "/static/images/mysore-pak.jpg", Category: "Ghee Sweets"},
		{Name: "Gulab Jamun", BasePrice: 150, Image: "/static/images/gulab-jamun.jpg", Category: "Syrup Sweets"},
		{Name: "Jalebi", BasePrice: 140, Image: "/static/images/jalebi.jpg", Category: "Syrup Sweets"},
		{Name: "Soan Papdi", BasePrice: 130, Image: "/static/images/soan-papdi.jpg", Category: "Flaky Sweets"},
	})
}

// List returns the products in menu order.
func (c *Catalog) List() []Product {
	products := make([]Product, len(c.products))
	copy(products, c.products)
	return products
}

// Find returns the product with the given display name.
func (c *Catalog) Find(name string) (Product, error) {
	for _, p := range c.products {
		if p.Name == name {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}
