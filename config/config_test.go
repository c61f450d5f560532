package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STORE_PATH", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("PAYMENT_API_URL", "")
	t.Setenv("ALLOW_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "lms.db", cfg.StorePath)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, "admin@lms.local", cfg.AdminEmail)
	assert.Equal(t, "admin123", cfg.AdminPassword)
	assert.Equal(t, "http://localhost:9000/charge", cfg.PaymentApiURL)
	assert.Equal(t, "*", cfg.AllowOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORE_PATH", "/tmp/other.db")
	t.Setenv("ADMIN_EMAIL", "root@example.com")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/tmp/other.db", cfg.StorePath)
	assert.Equal(t, "root@example.com", cfg.AdminEmail)
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("WORKER_COUNT", "12")
	assert.Equal(t, 12, getEnvInt("WORKER_COUNT", 4))

	t.Setenv("WORKER_COUNT", "not-a-number")
	assert.Equal(t, 4, getEnvInt("WORKER_COUNT", 4))

	t.Setenv("WORKER_COUNT", "")
	assert.Equal(t, 4, getEnvInt("WORKER_COUNT", 4))
}
