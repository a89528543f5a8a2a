package services

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/balaji-sweets/storefront/internal/models"
)

// ErrEmptyCart is returned when checkout is attempted with nothing in the cart.
var ErrEmptyCart = errors.New("cart is empty")

// Opener hands a URL to an external browsing context. The handoff is
// fire-and-forget; the composer does not depend on its outcome.
type Opener interface {
	Open(url string) error
}

// CheckoutService turns the cart into an outbound WhatsApp order message.
type CheckoutService struct {
	cart     *CartService
	notifier Notifier
	opener   Opener
	phone    string
}

// NewCheckoutService creates a checkout service. phone is the recipient in
// international format without a leading plus. opener may be nil when the
// caller opens the returned URL itself.
func NewCheckoutService(cart *CartService, notifier Notifier, opener Opener, phone string) *CheckoutService {
	return &CheckoutService{
		cart:     cart,
		notifier: notifier,
		opener:   opener,
		phone:    phone,
	}
}

// ComposeMessage builds the order summary in the storefront's wire format:
// lines joined with literal %0A, one line per cart entry, a total line, then
// optional name and address lines. Free-text fields are percent-encoded;
// catalog titles and weight labels come from a fixed trusted set.
func ComposeMessage(cart models.Cart, customerName, customerAddress string) string {
	var b strings.Builder
	b.WriteString("Order%0A")

	var total int64
	for _, item := range cart {
		itemTotal := item.Total()
		total += itemTotal
		fmt.Fprintf(&b, "%d x %s (%s) - ₹%d = ₹%d%%0A", item.Qty, item.Title, item.Weight, item.Price, itemTotal)
	}
	fmt.Fprintf(&b, "%%0ATotal: ₹%d%%0A", total)

	if customerName != "" {
		fmt.Fprintf(&b, "%%0AName: %s%%0A", url.QueryEscape(customerName))
	}
	if customerAddress != "" {
		fmt.Fprintf(&b, "Address: %s%%0A", url.QueryEscape(customerAddress))
	}
	return b.String()
}

// Checkout composes the order message, clears the cart, and hands the
// wa.me URL to the opener. The cart is cleared before the handoff is
// attempted, so a blocked handoff still leaves an empty cart; that ordering
// is a deliberate, documented trade. Returns the composed URL.
func (s *CheckoutService) Checkout(customerName, customerAddress string) (string, error) {
	cart, err := s.cart.Items()
	if err != nil {
		return "", err
	}
	if cart.IsEmpty() {
		s.notify("Cart empty")
		return "", ErrEmptyCart
	}

	message := ComposeMessage(cart, customerName, customerAddress)

	// Clear before opening WhatsApp.
	if err := s.cart.Clear(); err != nil {
		return "", err
	}

	waURL := fmt.Sprintf("https://wa.me/%s?text=%s", s.phone, message)
	if s.opener != nil {
		if err := s.opener.Open(waURL); err != nil {
			log.Printf("WhatsApp handoff failed (cart already cleared): %v", err)
		}
	}
	return waURL, nil
}

func (s *CheckoutService) notify(message string) {
	if s.notifier != nil {
		s.notifier.Show(message)
	}
}
