package cli

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/balaji-sweets/storefront/internal/config"
)

// ServerDependencies holds all dependencies needed for the server
type ServerDependencies struct {
	ServerConfig config.ServerConfig

	MenuHandler     http.Handler
	CartPageHandler http.Handler
	AddItemHandler  http.Handler
	QuantityHandler http.Handler
	RemoveHandler   http.Handler
	ClearHandler    http.Handler
	CountHandler    http.Handler
	CheckoutHandler http.Handler
}

// RunServe starts the storefront web server
func RunServe(deps ServerDependencies) error {
	listener, server, err := StartServer(deps)
	if err != nil {
		return err
	}
	defer listener.Close()

	return WaitForShutdown(server, nil)
}

// StartServer creates and starts the HTTP server, returning the listener and server
func StartServer(deps ServerDependencies) (net.Listener, *http.Server, error) {
	// Set up routes
	mux := http.NewServeMux()
	mux.Handle("/", deps.MenuHandler)
	mux.Handle("/cart", deps.CartPageHandler)
	mux.Handle("/api/cart/items", deps.AddItemHandler)
	mux.Handle("/api/cart/quantity", deps.QuantityHandler)
	mux.Handle("/api/cart/remove", deps.RemoveHandler)
	mux.Handle("/api/cart/clear", deps.ClearHandler)
	mux.Handle("/api/cart/count", deps.CountHandler)
	mux.Handle("/api/checkout", deps.CheckoutHandler)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// Create listener
	addr := fmt.Sprintf(":%s", deps.ServerConfig.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create listener: %w", err)
	}

	// Create HTTP server
	server := &http.Server{
		Handler: mux,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server listening on %s", listener.Addr().String())
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return listener, server, nil
}

// WaitForShutdown waits for a shutdown signal and gracefully shuts down the server.
// If shutdown is nil, a new channel is created and registered with signal.Notify.
func WaitForShutdown(server *http.Server, shutdown chan os.Signal) error {
	return WaitForShutdownWithTimeout(server, shutdown, 30*time.Second)
}

// WaitForShutdownWithTimeout allows specifying a custom shutdown timeout (primarily for testing)
func WaitForShutdownWithTimeout(server *http.Server, shutdown chan os.Signal, shutdownTimeout time.Duration) error {
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	}

	// Wait for shutdown signal
	sig := <-shutdown
	log.Printf("Received signal: %v, shutting down server...", sig)

	// Give outstanding requests time to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(ctx); err != nil {
		if err := server.Close(); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	log.Println("Server stopped")
	return nil
}
