package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	BlobDir      string
	BlobBaseURL  string
	GamesAPIURL  string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// .env is optional; flags and real env variables win over it
	_ = godotenv.Load()

	fs := flag.NewFlagSet("scripthub", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Blob storage
	fs.StringVar(&cfg.BlobDir, "blob-dir", "", "Directory for uploaded thumbnails")
	fs.StringVar(&cfg.BlobBaseURL, "blob-url", "", "Public URL prefix for uploaded thumbnails")

	// Upstream
	fs.StringVar(&cfg.GamesAPIURL, "games-api", "", "Games API base URL (default upstream)")

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
			cfg.Port = 3319 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.BlobDir == "" {
		cfg.BlobDir = os.Getenv("BLOB_DIR")
		if cfg.BlobDir == "" {
			cfg.BlobDir = "./uploads"
		}
	}
	if cfg.BlobBaseURL == "" {
		cfg.BlobBaseURL = os.Getenv("BLOB_BASE_URL")
		if cfg.BlobBaseURL == "" {
			cfg.BlobBaseURL = "/uploads"
		}
	}

	if cfg.GamesAPIURL == "" {
		cfg.GamesAPIURL = os.Getenv("GAMES_API_URL")
	}

	return cfg, nil
}
