package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/balaji-sweets/storefront/internal/models"
	"github.com/balaji-sweets/storefront/internal/storage"
)

// DefaultCartKey is the storage key carried over from the storefront's
// original persistence format.
const DefaultCartKey = "bs_cart_v1"

// CartRepository persists one cart as a JSON blob under a fixed key.
type CartRepository struct {
	store storage.Store
	key   string
}

// NewCartRepository creates a repository over store using key. An empty key
// falls back to DefaultCartKey.
func NewCartRepository(store storage.Store, key string) *CartRepository {
	if key == "" {
		key = DefaultCartKey
	}
	return &CartRepository{
		store: store,
		key:   key,
	}
}

// Load reads the persisted cart. A missing key or malformed value yields an
// empty cart, never an error; only backend I/O failures are surfaced.
func (r *CartRepository) Load() (models.Cart, error) {
	data, err := r.store.Get(r.key)
	if errors.Is(err, storage.ErrNotFound) {
		return models.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		// Corrupt storage is treated as "no cart".
		return models.Cart{}, nil
	}
	return cart, nil
}

// Save persists the cart, replacing the previous value.
func (r *CartRepository) Save(cart models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := r.store.Put(r.key, data); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Clear drops the storage key entirely. Distinct from saving an empty list,
// though both read back as an empty cart.
func (r *CartRepository) Clear() error {
	if err := r.store.Delete(r.key); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
