package handlers

import (
	"net/http"
	"sync"

	"github.com/balaji-sweets/storefront/internal/repository"
	"github.com/balaji-sweets/storefront/internal/services"
	"github.com/balaji-sweets/storefront/internal/storage"
	"github.com/google/uuid"
)

// SessionCookieName identifies the visitor whose cart key we read.
const SessionCookieName = "cart_session"

// CartProvider hands out one CartService per visitor session. Each session
// gets its own storage key, the server-side analogue of the storefront's
// per-origin local storage.
type CartProvider struct {
	store    storage.Store
	notifier services.Notifier

	mu    sync.RWMutex
	carts map[string]*services.CartService
}

// NewCartProvider creates a provider over store. The notifier may be nil.
func NewCartProvider(store storage.Store, notifier services.Notifier) *CartProvider {
	return &CartProvider{
		store:    store,
		notifier: notifier,
		carts:    make(map[string]*services.CartService),
	}
}

// CartFor returns the cart service for the request's session, issuing a new
// session cookie when the request carries none.
func (p *CartProvider) CartFor(w http.ResponseWriter, r *http.Request) *services.CartService {
	sessionID := p.ensureSession(w, r)

	p.mu.RLock()
	cart, ok := p.carts[sessionID]
	p.mu.RUnlock()
	if ok {
		return cart
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if cart, ok := p.carts[sessionID]; ok {
		return cart
	}

	key := repository.DefaultCartKey + ":" + sessionID
	repo := repository.NewCartRepository(p.store, key)
	cart = services.NewCartService(repo, p.notifier)
	p.carts[sessionID] = cart
	return cart
}

func (p *CartProvider) ensureSession(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	sessionID := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sessionID
}
