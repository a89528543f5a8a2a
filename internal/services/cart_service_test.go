package services

import (
	"testing"

	"github.com/balaji-sweets/storefront/internal/models"
	"github.com/balaji-sweets/storefront/internal/repository"
	"github.com/balaji-sweets/storefront/internal/storage"
)

// fakeNotifier records toast messages
type fakeNotifier struct {
	messages []string
}

func (n *fakeNotifier) Show(message string) {
	n.messages = append(n.messages, message)
}

func newTestCart(t *testing.T) (*CartService, *storage.MemoryStore, *fakeNotifier) {
	t.Helper()
	store := storage.NewMemoryStore()
	notifier := &fakeNotifier{}
	repo := repository.NewCartRepository(store, repository.DefaultCartKey)
	return NewCartService(repo, notifier), store, notifier
}

func ladoo(qty int) models.LineItem {
	return models.LineItem{
		ID:     "motichoor-ladoo-250g",
		Title:  "Motichoor Ladoo",
		Price:  180,
		Qty:    qty,
		Weight: "250Gms",
		Image:  "/static/images/motichoor-ladoo.jpg",
	}
}

func TestCartService_AddNewItem(t *testing.T) {
	cart, _, notifier := newTestCart(t)

	if err := cart.Add(ladoo(2)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	items, err := cart.Items()
	if err != nil {
		t.Fatalf("Items() error = %v", err)
	}
	if len(items) != 1 || items[0].Qty != 2 {
		t.Errorf("Items() = %+v, want one line with qty 2", items)
	}
	if len(notifier.messages) != 1 || notifier.messages[0] != "Added to cart" {
		t.Errorf("notifier messages = %v, want [Added to cart]", notifier.messages)
	}
}

func TestCartService_AddMergesOnID(t *testing.T) {
	cart, _, _ := newTestCart(t)

	if err := cart.Add(ladoo(2)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	// Same id with different display fields: only the quantity merges.
	incoming := ladoo(3)
	incoming.Title = "Renamed Ladoo"
	incoming.Price = 999
	if err := cart.Add(incoming); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	items, err := cart.Items()
	if err != nil {
		t.Fatalf("Items() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Items() returned %d lines, want 1 (merged)", len(items))
	}
	if items[0].Qty != 5 {
		t.Errorf("merged qty = %d, want 5", items[0].Qty)
	}
	if items[0].Title != "Motichoor Ladoo" || items[0].Price != 180 {
		t.Errorf("merge changed display fields: %+v", items[0])
	}
}

func TestCartService_AddInvalidItem(t *testing.T) {
	cart, _, notifier := newTestCart(t)

	if err := cart.Add(models.LineItem{}); err == nil {
		t.Error("Add() with invalid item expected error")
	}
	if len(notifier.messages) != 0 {
		t.Errorf("invalid add should not notify, got %v", notifier.messages)
	}
}

func TestCartService_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name      string
		delta     int
		wantLines int
		wantQty   int
	}{
		{name: "increment", delta: 1, wantLines: 1, wantQty: 4},
		{name: "decrement", delta: -1, wantLines: 1, wantQty: 2},
		{name: "to exactly zero removes line", delta: -3, wantLines: 0},
		{name: "large negative floors at zero and removes", delta: -99, wantLines: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart, _, _ := newTestCart(t)
			if err := cart.Add(ladoo(3)); err != nil {
				t.Fatalf("Add() error = %v", err)
			}

			if err := cart.UpdateQuantity("motichoor-ladoo-250g", tt.delta); err != nil {
				t.Fatalf("UpdateQuantity() error = %v", err)
			}

			items, err := cart.Items()
			if err != nil {
				t.Fatalf("Items() error = %v", err)
			}
			if len(items) != tt.wantLines {
				t.Fatalf("got %d lines, want %d", len(items), tt.wantLines)
			}
			if tt.wantLines > 0 && items[0].Qty != tt.wantQty {
				t.Errorf("qty = %d, want %d", items[0].Qty, tt.wantQty)
			}
		})
	}
}

func TestCartService_UpdateQuantityUnknownID(t *testing.T) {
	cart, _, _ := newTestCart(t)
	if err := cart.Add(ladoo(1)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	// Unknown id is a silent no-op, not an error.
	if err := cart.UpdateQuantity("no-such-line", -1); err != nil {
		t.Fatalf("UpdateQuantity() on unknown id error = %v", err)
	}

	items, _ := cart.Items()
	if len(items) != 1 || items[0].Qty != 1 {
		t.Errorf("cart changed by unknown-id update: %+v", items)
	}
}

func TestCartService_Remove(t *testing.T) {
	cart, _, _ := newTestCart(t)
	if err := cart.Add(ladoo(2)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := cart.Remove("motichoor-ladoo-250g"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	items, _ := cart.Items()
	if len(items) != 0 {
		t.Errorf("Items() after Remove() = %+v, want empty", items)
	}

	// Removing again is a no-op.
	if err := cart.Remove("motichoor-ladoo-250g"); err != nil {
		t.Fatalf("Remove() on unknown id error = %v", err)
	}
}

func TestCartService_ClearIdempotent(t *testing.T) {
	cart, _, _ := newTestCart(t)

	if err := cart.Clear(); err != nil {
		t.Fatalf("Clear() on empty cart error = %v", err)
	}
	if err := cart.Add(ladoo(1)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := cart.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	items, err := cart.Items()
	if err != nil {
		t.Fatalf("Items() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Items() after Clear() = %+v, want empty", items)
	}
}

func TestCartService_Totals(t *testing.T) {
	cart, _, _ := newTestCart(t)

	if err := cart.Add(models.LineItem{ID: "a", Title: "A", Price: 100, Qty: 2, Weight: "250Gms"}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := cart.Add(models.LineItem{ID: "b", Title: "B", Price: 50, Qty: 1, Weight: "250Gms"}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	total, err := cart.Total()
	if err != nil {
		t.Fatalf("Total() error = %v", err)
	}
	if total != 250 {
		t.Errorf("Total() = %d, want 250", total)
	}

	count, err := cart.TotalQuantity()
	if err != nil {
		t.Fatalf("TotalQuantity() error = %v", err)
	}
	if count != 3 {
		t.Errorf("TotalQuantity() = %d, want 3", count)
	}
}

func TestCartService_RoundTripAcrossServices(t *testing.T) {
	cart, store, _ := newTestCart(t)
	if err := cart.Add(ladoo(2)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	// A fresh service over the same store simulates a fresh page load.
	fresh := NewCartService(repository.NewCartRepository(store, repository.DefaultCartKey), nil)
	items, err := fresh.Items()
	if err != nil {
		t.Fatalf("Items() error = %v", err)
	}
	if len(items) != 1 || items[0] != ladoo(2) {
		t.Errorf("round trip changed the item: %+v", items)
	}
}

func TestCartService_EmitsEvents(t *testing.T) {
	cart, _, _ := newTestCart(t)

	var events []Event
	cart.Subscribe(func(e Event) { events = append(events, e) })

	if err := cart.Add(ladoo(1)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := cart.UpdateQuantity("motichoor-ladoo-250g", 1); err != nil {
		t.Fatalf("UpdateQuantity() error = %v", err)
	}
	if err := cart.Remove("motichoor-ladoo-250g"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := cart.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	want := []EventType{EventItemAdded, EventQuantityChanged, EventItemRemoved, EventCartCleared}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i, e := range events {
		if e.Type != want[i] {
			t.Errorf("event %d = %s, want %s", i, e.Type, want[i])
		}
	}
}
