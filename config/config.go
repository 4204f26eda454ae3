package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type DiscordConfig struct {
	BotToken string
}

// IsConfigured returns true if all required Discord configuration is present
func (c DiscordConfig) IsConfigured() bool {
	return c.BotToken != ""
}

type AppConfig struct {
	// Core configuration (always required)
	DatabaseURL    string
	DatabaseSchema string
	Port           string // Optional with default "8080"

	CORSAllowedOrigins string // Optional with default "*"

	DiscordConfig DiscordConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	databaseURL, err := getEnvRequired("DB_URL")
	if err != nil {
		return nil, err
	}

	databaseSchema, err := getEnvRequired("DB_SCHEMA")
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		DatabaseURL:        databaseURL,
		DatabaseSchema:     databaseSchema,
		Port:               getEnvWithDefault("PORT", "8080"),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),

		DiscordConfig: DiscordConfig{
			BotToken: os.Getenv("DISCORD_BOT_TOKEN"),
		},
	}

	if !config.DiscordConfig.IsConfigured() {
		return nil, fmt.Errorf("DISCORD_BOT_TOKEN is required")
	}
	log.Printf("✅ Discord configuration loaded")

	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s environment variable is required", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
