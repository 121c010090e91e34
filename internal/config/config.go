package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Mongo
	MongoURI       string
	MongoDB        string
	ConnectTimeout time.Duration

	// CORS
	CORSAllowOrigins []string

	// Auth stub
	JWTSecret string
}

// Load reads configuration from the environment. A .env file is applied first
// when present, matching local development setups.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:             getenv("PORT", "5002"),
		MongoURI:         getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:          getenv("MONGO_DB", "shopokoa"),
		ConnectTimeout:   parseDuration(getenv("MONGO_CONNECT_TIMEOUT", "10s"), 10*time.Second),
		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),
		JWTSecret:        getenv("JWT_SECRET", "dev-secret-change-me"),
	}

	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
