package services

import (
	"fmt"

	"github.com/balaji-sweets/storefront/internal/models"
)

// CartRepository defines the persistence interface for the cart.
type CartRepository interface {
	Load() (models.Cart, error)
	Save(cart models.Cart) error
	Clear() error
}

// Notifier surfaces one-off user-visible confirmations.
type Notifier interface {
	Show(message string)
}

// EventType identifies a cart mutation for subscribers.
type EventType string

// Cart mutation events
const (
	EventItemAdded       EventType = "item_added"
	EventQuantityChanged EventType = "quantity_changed"
	EventItemRemoved     EventType = "item_removed"
	EventCartCleared     EventType = "cart_cleared"
)

// Event is delivered to subscribers after a mutation has been persisted.
type Event struct {
	Type   EventType
	ItemID string
}

// CartService owns cart mutations. The cart is reloaded from the repository
// on every operation; nothing is cached between calls.
type CartService struct {
	repo        CartRepository
	notifier    Notifier
	subscribers []func(Event)
}

// NewCartService creates a cart service. The notifier may be nil.
func NewCartService(repo CartRepository, notifier Notifier) *CartService {
	return &CartService{
		repo:     repo,
		notifier: notifier,
	}
}

// Subscribe registers fn to be called after every persisted mutation.
// Subscribers back the re-render-on-mutation contract between model and views.
func (s *CartService) Subscribe(fn func(Event)) {
	s.subscribers = append(s.subscribers, fn)
}

// Items returns the current cart.
func (s *CartService) Items() (models.Cart, error) {
	return s.repo.Load()
}

// Add puts item into the cart. An existing line with the same id absorbs the
// incoming quantity; its price and display fields are left untouched.
func (s *CartService) Add(item models.LineItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("invalid line item: %w", err)
	}

	cart, err := s.repo.Load()
	if err != nil {
		return err
	}

	if idx := cart.Find(item.ID); idx >= 0 {
		cart[idx].Qty += item.Qty
	} else {
		cart = append(cart, item)
	}

	if err := s.repo.Save(cart); err != nil {
		return err
	}

	s.notify("Added to cart")
	s.emit(Event{Type: EventItemAdded, ItemID: item.ID})
	return nil
}

// UpdateQuantity adjusts the quantity of the line with the given id by delta,
// flooring at zero. A zero result removes the line. An unknown id is a no-op.
func (s *CartService) UpdateQuantity(id string, delta int) error {
	cart, err := s.repo.Load()
	if err != nil {
		return err
	}

	idx := cart.Find(id)
	if idx < 0 {
		return nil
	}

	qty := cart[idx].Qty + delta
	if qty < 0 {
		qty = 0
	}
	if qty == 0 {
		cart = append(cart[:idx], cart[idx+1:]...)
	} else {
		cart[idx].Qty = qty
	}

	if err := s.repo.Save(cart); err != nil {
		return err
	}

	s.emit(Event{Type: EventQuantityChanged, ItemID: id})
	return nil
}

// Remove deletes the line with the given id. An unknown id is a no-op.
func (s *CartService) Remove(id string) error {
	cart, err := s.repo.Load()
	if err != nil {
		return err
	}

	idx := cart.Find(id)
	if idx < 0 {
		return nil
	}
	cart = append(cart[:idx], cart[idx+1:]...)

	if err := s.repo.Save(cart); err != nil {
		return err
	}

	s.emit(Event{Type: EventItemRemoved, ItemID: id})
	return nil
}

// Clear drops the persisted cart key entirely.
func (s *CartService) Clear() error {
	if err := s.repo.Clear(); err != nil {
		return err
	}
	s.emit(Event{Type: EventCartCleared})
	return nil
}

// Total returns the grand total over all lines, recomputed from storage.
func (s *CartService) Total() (int64, error) {
	cart, err := s.repo.Load()
	if err != nil {
		return 0, err
	}
	return cart.Total(), nil
}

// TotalQuantity returns the item count across all lines, for the cart badge.
func (s *CartService) TotalQuantity() (int, error) {
	cart, err := s.repo.Load()
	if err != nil {
		return 0, err
	}
	return cart.TotalQuantity(), nil
}

func (s *CartService) notify(message string) {
	if s.notifier != nil {
		s.notifier.Show(message)
	}
}

func (s *CartService) emit(event Event) {
	for _, fn := range s.subscribers {
		fn(event)
	}
}
