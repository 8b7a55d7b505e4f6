package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Default allow-list: dev frontend + the deployed one.
var defaultOrigins = []string{
	"http://localhost:3000",
	"https://spa-transferts-frontend.onrender.com",
}

type Config struct {
	Port           string
	DatabaseURL    string // empty => local SQLite file
	SQLitePath     string
	AllowedOrigins []string
}

// Load reads configuration from the environment, after best-effort
// loading of a local .env file (dev convenience, ignored if absent).
func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{
		Port:           "5000",
		SQLitePath:     "database.db",
		AllowedOrigins: defaultOrigins,
	}

	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		cfg.Port = v
	}
	if v := strings.TrimSpace(os.Getenv("SQLITE_PATH")); v != "" {
		cfg.SQLitePath = v
	}

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))

	if v := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); v != "" {
		origins := make([]string, 0)
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.AllowedOrigins = origins
		}
	}

	return cfg
}

// IsPostgres reports whether DATABASE_URL selects the Postgres family.
func (c Config) IsPostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://") ||
		strings.HasPrefix(c.DatabaseURL, "postgresql://")
}
