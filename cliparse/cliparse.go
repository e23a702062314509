package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          int
	StoreType     string
	DatabaseURL   string
	AdminIdentity string
	IdentitySalt  string
}

var storeTypes = []string{"memory", "sqlite", "postgres", "bolt"}

// LoadEnv reads KEY=value pairs from path into the environment.
// Variables already set win over the file. A missing file is not an error.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fset := flag.NewFlagSet("quickly-vote", flag.ContinueOnError)

	// Network and storage (can be CLI args or env)
	fset.IntVar(&cfg.Port, "p", 0, "Server port")
	fset.StringVar(&cfg.StoreType, "t", "", "Store type (memory, sqlite, postgres or bolt)")
	fset.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or file path")

	// Session identity and secrets (prefer env variables, but allow CLI for dev)
	fset.StringVar(&cfg.AdminIdentity, "admin", "", "Administrator identity")
	fset.StringVar(&cfg.IdentitySalt, "identity-salt", "", "Salt for identity fingerprints in logs (prefer env)")

	if err := fset.Parse(args); err != nil {
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
			cfg.Port = 3318 // default
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.StoreType == "" {
		cfg.StoreType = os.Getenv("STORE_TYPE")
		if cfg.StoreType == "" {
			cfg.StoreType = "memory"
		}
	}
	if !validStoreType(cfg.StoreType) {
		return Config{}, fmt.Errorf("unknown store type %q (want one of %s)", cfg.StoreType, strings.Join(storeTypes, ", "))
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" && cfg.StoreType != "memory" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	// Required
	if cfg.AdminIdentity == "" {
		cfg.AdminIdentity = os.Getenv("ADMIN_IDENTITY")
	}
	if cfg.AdminIdentity == "" {
		return Config{}, errors.New("ADMIN_IDENTITY required")
	}

	if cfg.IdentitySalt == "" {
		cfg.IdentitySalt = os.Getenv("IDENTITY_SALT")
	}
	if cfg.IdentitySalt == "" {
		return Config{}, errors.New("IDENTITY_SALT required")
	}

	return cfg, nil
}

func validStoreType(t string) bool {
	for _, s := range storeTypes {
		if s == t {
			return true
		}
	}
	return false
}
