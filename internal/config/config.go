package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// defaultAdminPassword guards the destructive endpoints in development;
// Validate refuses to run production with it.
const defaultAdminPassword = "default_admin_password"

type Config struct {
	AppHost  string
	HTTPPort string
	AppEnv   string
	LogLevel string

	// AdminPassword gates delete-all and the client's admin unlock flow.
	AdminPassword string

	// DataDir holds orders.json and db.json; UploadsDir holds photo files
	// referenced by order records.
	DataDir    string
	UploadsDir string
}

func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	cfg := &Config{
		AppHost:       getEnv("APP_HOST", "0.0.0.0"),
		HTTPPort:      firstEnv("APP_PORT", "HTTP_PORT", "3000"),
		AppEnv:        getEnv("APP_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AdminPassword: getEnv("ADMIN_PASSWORD", defaultAdminPassword),
		DataDir:       getEnv("DATA_DIR", "."),
		UploadsDir:    getEnv("UPLOADS_DIR", "uploads"),
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DataDir == "" || c.UploadsDir == "" {
		return errors.New("config: DATA_DIR and UPLOADS_DIR are required")
	}
	if c.AppEnv == "production" && c.AdminPassword == defaultAdminPassword {
		return errors.New("config: in production ADMIN_PASSWORD is required")
	}
	return nil
}

func (c *Config) OrdersPath() string {
	return filepath.Join(c.DataDir, "orders.json")
}

func (c *Config) OptionsPath() string {
	return filepath.Join(c.DataDir, "db.json")
}

func (c *Config) Addr() string {
	return c.AppHost + ":" + c.HTTPPort
}

func firstEnv(keysAndDef ...string) string {
	if len(keysAndDef) == 0 {
		return ""
	}
	def := keysAndDef[len(keysAndDef)-1]
	for _, k := range keysAndDef[:len(keysAndDef)-1] {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return def
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
