package services

import (
	"errors"
	"fmt"

	"github.com/balaji-sweets/storefront/internal/models"
)

// Selection errors
var (
	ErrSelectionClosed  = errors.New("no product selection is open")
	ErrEmptyProductName = errors.New("product name cannot be empty")
	ErrInvalidBasePrice = errors.New("base price must be positive")
)

// SelectionState is a read-only snapshot of the open selection.
type SelectionState struct {
	Name      string
	BasePrice int64
	Image     string
	Weight    models.Weight
	Quantity  int
	Price     int64
}

// ProductSelection is the product overlay controller: transient configuration
// state for one product, alive only between Open and Confirm/Cancel. The cart
// never sees it except at the moment of confirm.
type ProductSelection struct {
	cart *CartService

	open      bool
	name      string
	basePrice int64
	image     string
	weight    models.Weight
	quantity  int
}

// NewProductSelection creates a closed selection bound to cart.
func NewProductSelection(cart *CartService) *ProductSelection {
	return &ProductSelection{cart: cart}
}

// Open starts configuring a product, resetting weight to the quarter-kilogram
// tier and quantity to one. Opening over an open selection discards it.
func (s *ProductSelection) Open(name string, basePrice int64, image string) error {
	if name == "" {
		return ErrEmptyProductName
	}
	if basePrice <= 0 {
		return ErrInvalidBasePrice
	}

	s.open = true
	s.name = name
	s.basePrice = basePrice
	s.image = image
	s.weight = models.WeightQuarterKilo
	s.quantity = 1
	return nil
}

// SelectWeight switches the open selection to another tier.
func (s *ProductSelection) SelectWeight(w models.Weight) error {
	if !s.open {
		return ErrSelectionClosed
	}
	if !w.IsValid() {
		return models.ErrInvalidWeight
	}
	s.weight = w
	return nil
}

// AdjustQuantity changes the open selection's quantity by delta, flooring at
// one. A committed cart line may drop to zero and disappear; the overlay
// quantity may not.
func (s *ProductSelection) AdjustQuantity(delta int) error {
	if !s.open {
		return ErrSelectionClosed
	}
	s.quantity += delta
	if s.quantity < 1 {
		s.quantity = 1
	}
	return nil
}

// Price returns the line total for the current configuration, recomputed from
// the same pricing rule that the persisted line will use.
func (s *ProductSelection) Price() (int64, error) {
	if !s.open {
		return 0, ErrSelectionClosed
	}
	return models.LineTotal(s.basePrice, s.weight, s.quantity), nil
}

// State returns a snapshot of the open selection.
func (s *ProductSelection) State() (SelectionState, error) {
	if !s.open {
		return SelectionState{}, ErrSelectionClosed
	}
	return SelectionState{
		Name:      s.name,
		BasePrice: s.basePrice,
		Image:     s.image,
		Weight:    s.weight,
		Quantity:  s.quantity,
		Price:     models.LineTotal(s.basePrice, s.weight, s.quantity),
	}, nil
}

// IsOpen reports whether a selection is being configured.
func (s *ProductSelection) IsOpen() bool {
	return s.open
}

// Confirm commits the configuration as a cart line and closes the selection.
func (s *ProductSelection) Confirm() error {
	if !s.open {
		return ErrSelectionClosed
	}

	item, err := models.NewLineItem(
		models.ItemID(s.name, s.weight),
		s.name,
		models.UnitPrice(s.basePrice, s.weight),
		s.quantity,
		s.weight.Label(),
		s.image,
	)
	if err != nil {
		return fmt.Errorf("invalid selection: %w", err)
	}

	if err := s.cart.Add(item); err != nil {
		return err
	}

	s.reset()
	return nil
}

// Cancel discards the open selection without touching the cart. Cancelling a
// closed selection is a no-op.
func (s *ProductSelection) Cancel() {
	s.reset()
}

func (s *ProductSelection) reset() {
	*s = ProductSelection{cart: s.cart}
}
