package models

import (
	"errors"
)

// LineItem is one product/tier combination committed to the cart.
type LineItem struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Price  int64  `json:"price"`
	Qty    int    `json:"qty"`
	Weight string `json:"weight"`
	Image  string `json:"image"`
}

// Domain errors
var (
	ErrEmptyItemID    = errors.New("line item id cannot be empty")
	ErrEmptyItemTitle = errors.New("line item title cannot be empty")
	ErrInvalidPrice   = errors.New("line item price must be positive")
	ErrInvalidQty     = errors.New("line item quantity must be at least 1")
)

// NewLineItem creates a validated line item. Price is the unit price for the
// selected tier, not the base per-quarter-kilogram price.
func NewLineItem(id, title string, price int64, qty int, weight, image string) (LineItem, error) {
	item := LineItem{
		ID:     id,
		Title:  title,
		Price:  price,
		Qty:    qty,
		Weight: weight,
		Image:  image,
	}
	if err := item.Validate(); err != nil {
		return LineItem{}, err
	}
	return item, nil
}

// Validate checks the stored-line invariants.
func (i LineItem) Validate() error {
	if i.ID == "" {
		return ErrEmptyItemID
	}
	if i.Title == "" {
		return ErrEmptyItemTitle
	}
	if i.Price <= 0 {
		return ErrInvalidPrice
	}
	if i.Qty < 1 {
		return ErrInvalidQty
	}
	return nil
}

// Total is the line total for this item.
func (i LineItem) Total() int64 {
	return i.Price * int64(i.Qty)
}

// Cart is an ordered list of line items, unique by ID. Insertion order is
// preserved but carries no meaning.
type Cart []LineItem

// Find returns the index of the line with the given id, or -1.
func (c Cart) Find(id string) int {
	for i, item := range c {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Total sums price*qty over all lines. Recomputed on every call.
func (c Cart) Total() int64 {
	var total int64
	for _, item := range c {
		total += item.Total()
	}
	return total
}

// TotalQuantity sums quantities over all lines. Backs the cart badge.
func (c Cart) TotalQuantity() int {
	var total int
	for _, item := range c {
		total += item.Qty
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c) == 0
}
