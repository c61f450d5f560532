package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	StorePath string
	UploadDir string

	AdminEmail    string
	AdminPassword string

	PaymentApiURL string

	AllowOrigins string
}

// Load initializes configuration from environment variables or defaults
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		Port:      getEnv("PORT", "3000"),
		StorePath: getEnv("STORE_PATH", "lms.db"),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@lms.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),

		PaymentApiURL: getEnv("PAYMENT_API_URL", "http://localhost:9000/charge"),

		AllowOrigins: getEnv("ALLOW_ORIGINS", "*"),
	}

	// Validate critical configuration
	if cfg.AdminPassword == "admin123" {
		log.Println("Warning: Using default ADMIN_PASSWORD. Update it in your environment.")
	}
	if cfg.StorePath == "lms.db" {
		log.Println("Warning: Using default STORE_PATH. Update it in your environment.")
	}

	return cfg
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
