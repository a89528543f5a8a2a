package main

import (
	"fmt"
	"log"
	"os"

	"github.com/balaji-sweets/storefront/internal/catalog"
	internalcli "github.com/balaji-sweets/storefront/internal/cli"
	"github.com/balaji-sweets/storefront/internal/config"
	"github.com/balaji-sweets/storefront/internal/database"
	"github.com/balaji-sweets/storefront/internal/handlers"
	"github.com/balaji-sweets/storefront/internal/notify"
	"github.com/balaji-sweets/storefront/internal/storage"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

var version = "0.1.0"

// logOpener logs the WhatsApp handoff instead of opening a browser. On the
// server the composed URL goes back to the client, which opens it; the
// handoff is fire-and-forget either way.
type logOpener struct{}

func (logOpener) Open(url string) error {
	log.Printf("WhatsApp handoff composed: %s", url)
	return nil
}

// buildStore creates the cart storage backend selected by configuration
func buildStore(storageConfig *config.StorageConfig) (storage.Store, error) {
	switch storageConfig.Backend {
	case config.StorageMemory:
		return storage.NewMemoryStore(), nil
	case config.StorageFile:
		return storage.NewFileStore(storageConfig.FilePath), nil
	case config.StoragePostgres:
		if err := database.Connect(); err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.RunMigrations(); err != nil {
			return nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		log.Println("Connected to database successfully")
		return storage.NewPostgresStore(database.DB), nil
	case config.StorageRedis:
		return storage.NewRedisStore(storageConfig.RedisURL)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", storageConfig.Backend)
	}
}

// buildServerDependencies creates all dependencies needed for the server
func buildServerDependencies() (internalcli.ServerDependencies, error) {
	var deps internalcli.ServerDependencies

	// Load server configuration
	deps.ServerConfig = config.LoadServerConfig()

	// Load WhatsApp configuration
	whatsappConfig, err := config.LoadWhatsAppConfig()
	if err != nil {
		return deps, fmt.Errorf("missing required WhatsApp configuration: %w", err)
	}

	// Load storage configuration and build the backend
	storageConfig, err := config.LoadStorageConfig(os.Getenv)
	if err != nil {
		return deps, err
	}
	store, err := buildStore(storageConfig)
	if err != nil {
		return deps, err
	}

	// Shared toast and per-session cart provider
	toast := notify.NewToast()
	provider := handlers.NewCartProvider(store, toast)

	// Product catalog
	cat := catalog.Default()

	// Create page handlers
	menuHandler, err := handlers.NewMenuHandler("templates/menu.html", cat, provider)
	if err != nil {
		return deps, fmt.Errorf("failed to create menu handler: %w", err)
	}
	deps.MenuHandler = menuHandler

	cartPageHandler, err := handlers.NewCartPageHandler("templates/cart.html", provider)
	if err != nil {
		return deps, fmt.Errorf("failed to create cart page handler: %w", err)
	}
	deps.CartPageHandler = cartPageHandler

	// Create API handlers
	deps.AddItemHandler = handlers.NewAddItemHandler(cat, provider)
	deps.QuantityHandler = handlers.NewQuantityHandler(provider)
	deps.RemoveHandler = handlers.NewRemoveItemHandler(provider)
	deps.ClearHandler = handlers.NewClearCartHandler(provider)
	deps.CountHandler = handlers.NewCartCountHandler(provider)
	deps.CheckoutHandler = handlers.NewCheckoutHandler(provider, toast, logOpener{}, whatsappConfig.Phone)

	return deps, nil
}

// ServeCommand returns the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the storefront web server",
		Action: func(c *cli.Context) error {
			deps, err := buildServerDependencies()
			if err != nil {
				return err
			}
			defer database.Close()

			return internalcli.RunServe(deps)
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "sweetshop",
		Usage:   "Balaji Sweets storefront management tool",
		Version: version,
		Commands: []*cli.Command{
			ServeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Fatal(err)
	}
}
