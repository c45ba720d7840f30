package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config is everything the process takes from the environment.
type Config struct {
	StoragePath string
	LogLevel    zerolog.Level
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// LoadConfig reads .env (without overriding real environment) and resolves
// settings. The default catalog filename matches what earlier versions of the
// program wrote, so existing catalogs are picked up as-is.
func LoadConfig() Config {
	_ = godotenv.Load(".env")

	lvl, err := zerolog.ParseLevel(getenv("CATALOG_LOG_LEVEL", "info"))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return Config{
		StoragePath: getenv("CATALOG_FILE", "library_books.json"),
		LogLevel:    lvl,
	}
}
