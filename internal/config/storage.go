package config

import "fmt"

// Storage backend names
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// StorageConfig selects and parameterizes the cart storage backend
type StorageConfig struct {
	Backend  string
	FilePath string
	RedisURL string
	CartKey  string
}

// LoadStorageConfig loads storage configuration from environment variables.
// The file backend is the default: the closest analogue of the storefront's
// original local key-value persistence.
func LoadStorageConfig(getenv func(string) string) (*StorageConfig, error) {
	config := &StorageConfig{
		Backend:  getenv("CART_STORAGE"),
		FilePath: getenv("CART_FILE"),
		RedisURL: getenv("REDIS_URL"),
		CartKey:  getenv("CART_KEY"),
	}

	if config.Backend == "" {
		config.Backend = StorageFile
	}
	switch config.Backend {
	case StorageMemory, StorageFile, StoragePostgres, StorageRedis:
	default:
		return nil, fmt.Errorf("unknown CART_STORAGE backend: %s", config.Backend)
	}

	if config.Backend == StorageFile && config.FilePath == "" {
		config.FilePath = "cart.json"
	}
	if config.Backend == StorageRedis && config.RedisURL == "" {
		config.RedisURL = "redis://localhost:6379"
	}

	return config, nil
}
