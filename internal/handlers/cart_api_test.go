package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/balaji-sweets/storefront/internal/catalog"
	"github.com/balaji-sweets/storefront/internal/storage"
)

func newTestProvider() *CartProvider {
	return NewCartProvider(storage.NewMemoryStore(), nil)
}

// doRequest performs a request against handler with a fixed session cookie so
// cart state carries across requests within a test.
func doRequest(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "test-session"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func decodeState(t *testing.T, rr *httptest.ResponseRecorder) CartStateResponse {
	t.Helper()
	var state CartStateResponse
	if err := json.NewDecoder(rr.Body).Decode(&state); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return state
}

func TestAddItemHandler(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		body           string
		expectedStatus int
		expectedCount  int
		expectedTotal  int64
	}{
		{
			name:           "add quarter kilo",
			method:         http.MethodPost,
			body:           `{"name":"Kaju Katli","weight":250,"quantity":1}`,
			expectedStatus: http.StatusOK,
			expectedCount:  1,
			expectedTotal:  280,
		},
		{
			name:           "add half kilo pair",
			method:         http.MethodPost,
			body:           `{"name":"Kaju Katli","weight":500,"quantity":2}`,
			expectedStatus: http.StatusOK,
			expectedCount:  2,
			expectedTotal:  1120,
		},
		{
			name:           "unknown product",
			method:         http.MethodPost,
			body:           `{"name":"Chocolate Cake","weight":250,"quantity":1}`,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "off-tier weight",
			method:         http.MethodPost,
			body:           `{"name":"Kaju Katli","weight":750,"quantity":1}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid body",
			method:         http.MethodPost,
			body:           `{not json`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "method not allowed",
			method:         http.MethodGet,
			body:           "",
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAddItemHandler(catalog.Default(), newTestProvider())

			rr := doRequest(t, handler, tt.method, "/api/cart/items", tt.body)
			if rr.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d (body: %s)", rr.Code, tt.expectedStatus, rr.Body.String())
			}
			if tt.expectedStatus != http.StatusOK {
				return
			}

			state := decodeState(t, rr)
			if state.Count != tt.expectedCount {
				t.Errorf("count = %d, want %d", state.Count, tt.expectedCount)
			}
			if state.Total != tt.expectedTotal {
				t.Errorf("total = %d, want %d", state.Total, tt.expectedTotal)
			}
		})
	}
}

func TestAddItemHandler_MergesAcrossRequests(t *testing.T) {
	provider := newTestProvider()
	handler := NewAddItemHandler(catalog.Default(), provider)

	body := `{"name":"Jalebi","weight":250,"quantity":2}`
	if rr := doRequest(t, handler, http.MethodPost, "/api/cart/items", body); rr.Code != http.StatusOK {
		t.Fatalf("first add status = %d", rr.Code)
	}
	rr := doRequest(t, handler, http.MethodPost, "/api/cart/items", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("second add status = %d", rr.Code)
	}

	state := decodeState(t, rr)
	if state.Count != 4 {
		t.Errorf("count after merge = %d, want 4", state.Count)
	}

	// Both adds landed on one line.
	countHandler := NewCartCountHandler(provider)
	rr = doRequest(t, countHandler, http.MethodGet, "/api/cart/count", "")
	if got := decodeState(t, rr); got.Count != 4 {
		t.Errorf("badge count = %d, want 4", got.Count)
	}
}

func TestQuantityHandler(t *testing.T) {
	provider := newTestProvider()
	addHandler := NewAddItemHandler(catalog.Default(), provider)
	quantityHandler := NewQuantityHandler(provider)

	doRequest(t, addHandler, http.MethodPost, "/api/cart/items", `{"name":"Jalebi","weight":250,"quantity":3}`)

	// Decrement below zero removes the line.
	rr := doRequest(t, quantityHandler, http.MethodPost, "/api/cart/quantity", `{"id":"jalebi-250g","delta":-99}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if state := decodeState(t, rr); state.Count != 0 {
		t.Errorf("count = %d, want 0", state.Count)
	}

	// Unknown id is a no-op, not an error.
	rr = doRequest(t, quantityHandler, http.MethodPost, "/api/cart/quantity", `{"id":"no-such-line","delta":1}`)
	if rr.Code != http.StatusOK {
		t.Errorf("unknown id status = %d, want 200", rr.Code)
	}

	// Missing id is rejected.
	rr = doRequest(t, quantityHandler, http.MethodPost, "/api/cart/quantity", `{"delta":1}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("missing id status = %d, want 400", rr.Code)
	}
}

func TestRemoveItemHandler(t *testing.T) {
	provider := newTestProvider()
	addHandler := NewAddItemHandler(catalog.Default(), provider)
	removeHandler := NewRemoveItemHandler(provider)

	doRequest(t, addHandler, http.MethodPost, "/api/cart/items", `{"name":"Jalebi","weight":250,"quantity":1}`)
	doRequest(t, addHandler, http.MethodPost, "/api/cart/items", `{"name":"Soan Papdi","weight":500,"quantity":1}`)

	rr := doRequest(t, removeHandler, http.MethodPost, "/api/cart/remove", `{"id":"jalebi-250g"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if state := decodeState(t, rr); state.Count != 1 {
		t.Errorf("count = %d, want 1", state.Count)
	}
}

func TestClearCartHandler(t *testing.T) {
	provider := newTestProvider()
	addHandler := NewAddItemHandler(catalog.Default(), provider)
	clearHandler := NewClearCartHandler(provider)

	doRequest(t, addHandler, http.MethodPost, "/api/cart/items", `{"name":"Jalebi","weight":250,"quantity":2}`)

	rr := doRequest(t, clearHandler, http.MethodPost, "/api/cart/clear", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if state := decodeState(t, rr); state.Count != 0 || state.Total != 0 {
		t.Errorf("state after clear = %+v, want zeroes", state)
	}

	// Clearing an already-empty cart succeeds.
	rr = doRequest(t, clearHandler, http.MethodPost, "/api/cart/clear", "")
	if rr.Code != http.StatusOK {
		t.Errorf("second clear status = %d, want 200", rr.Code)
	}
}

func TestCartCountHandler_EmptyCart(t *testing.T) {
	handler := NewCartCountHandler(newTestProvider())

	rr := doRequest(t, handler, http.MethodGet, "/api/cart/count", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if state := decodeState(t, rr); state.Count != 0 {
		t.Errorf("count = %d, want 0", state.Count)
	}
}

func TestCartProvider_SessionsAreIsolated(t *testing.T) {
	provider := newTestProvider()
	handler := NewAddItemHandler(catalog.Default(), provider)
	countHandler := NewCartCountHandler(provider)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"name":"Jalebi","weight":250,"quantity":1}`))
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "visitor-a"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("add status = %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/cart/count", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "visitor-b"})
	rr = httptest.NewRecorder()
	countHandler.ServeHTTP(rr, req)

	if state := decodeState(t, rr); state.Count != 0 {
		t.Errorf("visitor-b count = %d, want 0 (carts must be per-session)", state.Count)
	}
}

func TestCartProvider_IssuesSessionCookie(t *testing.T) {
	provider := newTestProvider()
	handler := NewCartCountHandler(provider)

	req := httptest.NewRequest(http.MethodGet, "/api/cart/count", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	cookies := rr.Result().Cookies()
	found := false
	for _, c := range cookies {
		if c.Name == SessionCookieName && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Errorf("response cookies = %v, want a %s cookie", cookies, SessionCookieName)
	}
}
