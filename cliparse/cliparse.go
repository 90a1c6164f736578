package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          int
	DatabasePath  string
	SessionSecret string
	SessionTTL    time.Duration
	AssetsDir     string
	ModelsDir     string
}

// ParseFlags validates flags and fills in defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var ttlStr string

	fs := flag.NewFlagSet("fitroom", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabasePath, "d", "", "Path to the sqlite database file")
	fs.StringVar(&cfg.AssetsDir, "a", "", "Directory holding the static HTML/CSS/JS assets")
	fs.StringVar(&cfg.ModelsDir, "m", "", "Directory holding the 3D model files")
	fs.StringVar(&ttlStr, "session-ttl", "", "Session lifetime, e.g. 168h")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session signing secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = os.Getenv("DATABASE_PATH")
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "users.db"
	}

	if cfg.AssetsDir == "" {
		cfg.AssetsDir = os.Getenv("ASSETS_DIR")
	}
	if cfg.AssetsDir == "" {
		cfg.AssetsDir = "."
	}

	if cfg.ModelsDir == "" {
		cfg.ModelsDir = os.Getenv("MODELS_DIR")
	}
	if cfg.ModelsDir == "" {
		cfg.ModelsDir = "models"
	}

	if ttlStr == "" {
		ttlStr = os.Getenv("SESSION_TTL")
	}
	if ttlStr == "" {
		cfg.SessionTTL = 7 * 24 * time.Hour // default
	} else {
		ttl, err := time.ParseDuration(ttlStr)
		if err != nil || ttl <= 0 {
			return Config{}, errors.New("invalid SESSION_TTL duration")
		}
		cfg.SessionTTL = ttl
	}

	// Secrets - MUST be provided
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	return cfg, nil
}
