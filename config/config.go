package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Version is reported by the health endpoints.
const Version = "0.1.0"

// Config holds all process settings. It is loaded once in main and
// passed down explicitly; nothing reads the environment after startup.
type Config struct {
	Env         string
	MongoURI    string
	MongoDBName string
	APIPrefix   string
	ListenAddr  string
	LogLevel    string
	LogFormat   string
}

// Load reads settings from the environment, with a .env file as fallback.
func Load() Config {
	godotenv.Load()

	return Config{
		Env:         getEnv("ENV", "development"),
		MongoURI:    getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDBName: getEnv("MONGODB_DB_NAME", "booking_app"),
		APIPrefix:   getEnv("API_PREFIX", "/api"),
		ListenAddr:  getEnv("LISTEN_ADDR", ":8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, fallback string) string {
	if val, exist := os.LookupEnv(key); exist && val != "" {
		return val
	}
	return fallback
}
