package config

import (
	"github.com/spf13/viper"
)

// Config holds all application configuration values
type Config struct {
	Port           string
	LogLevel       string
	BrevoAPIKey    string
	BrevoListID    int
	WhatsAppNumber string
}

// LoadConfig reads configuration from environment variables, applying defaults
// for everything except the Brevo API key. A missing key is not fatal here:
// the relay checks it per request so the link-building endpoints keep working.
func LoadConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("BREVO_LIST_ID", 2)
	v.SetDefault("WHATSAPP_NUMBER", "212600000000")

	return &Config{
		Port:           v.GetString("PORT"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		BrevoAPIKey:    v.GetString("BREVO_API_KEY"),
		BrevoListID:    v.GetInt("BREVO_LIST_ID"),
		WhatsAppNumber: v.GetString("WHATSAPP_NUMBER"),
	}
}
