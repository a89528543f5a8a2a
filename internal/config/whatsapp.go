package config

import (
	"fmt"
	"os"
	"strings"
)

// WhatsAppConfig holds configuration for the WhatsApp order handoff
type WhatsAppConfig struct {
	Phone string
}

// LoadWhatsAppConfig loads WhatsApp configuration from environment variables.
// The phone number must be in international format without a leading plus,
// e.g. 919962899084.
func LoadWhatsAppConfig() (*WhatsAppConfig, error) {
	config := WhatsAppConfig{
		Phone: os.Getenv("WHATSAPP_PHONE"),
	}

	if config.Phone == "" {
		return nil, fmt.Errorf("WHATSAPP_PHONE is required")
	}
	if strings.HasPrefix(config.Phone, "+") {
		return nil, fmt.Errorf("WHATSAPP_PHONE must not include a leading +")
	}
	for _, r := range config.Phone {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("WHATSAPP_PHONE must contain digits only")
		}
	}

	return &config, nil
}
