package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	IdentifierSalt string
	CORSOrigin     string
	WriteRate      float64 // write requests per second per client
	WriteBurst     int
	TrustProxy     bool // key rate limits on X-Forwarded-For
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	fs := flag.NewFlagSet("lanka-compass", flag.ContinueOnError)

	fs.StringVar(&envFile, "env", ".env", "Optional dotenv file")

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.CORSOrigin, "cors-origin", "", "Allowed CORS origin (default: echo request origin)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.IdentifierSalt, "id-salt", "", "Voter identifier salt (prefer env)")

	fs.Float64Var(&cfg.WriteRate, "write-rate", 0, "Write requests per second per client")
	fs.IntVar(&cfg.WriteBurst, "write-burst", 0, "Write request burst per client")
	fs.BoolVar(&cfg.TrustProxy, "trust-proxy", false, "Trust X-Forwarded-For for client addresses")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Values already in the environment take precedence over the file
	if err := loadEnvFile(envFile); err != nil {
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
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = os.Getenv("CORS_ORIGIN")
	}

	if cfg.WriteRate == 0 {
		if v := os.Getenv("WRITE_RATE"); v != "" {
			rate, err := strconv.ParseFloat(v, 64)
			if err != nil || rate <= 0 {
				return Config{}, errors.New("invalid WRITE_RATE env variable")
			}
			cfg.WriteRate = rate
		} else {
			cfg.WriteRate = 1
		}
	}
	if cfg.WriteBurst == 0 {
		if v := os.Getenv("WRITE_BURST"); v != "" {
			burst, err := strconv.Atoi(v)
			if err != nil || burst <= 0 {
				return Config{}, errors.New("invalid WRITE_BURST env variable")
			}
			cfg.WriteBurst = burst
		} else {
			cfg.WriteBurst = 5
		}
	}

	if !cfg.TrustProxy {
		if v := os.Getenv("TRUST_PROXY"); v != "" {
			trust, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid TRUST_PROXY env variable")
			}
			cfg.TrustProxy = trust
		}
	}

	// Secrets - MUST be provided
	if cfg.IdentifierSalt == "" {
		cfg.IdentifierSalt = os.Getenv("IDENTIFIER_SALT")
	}
	if cfg.IdentifierSalt == "" {
		return Config{}, errors.New("IDENTIFIER_SALT required")
	}

	return cfg, nil
}

// loadEnvFile loads a dotenv file without overriding existing variables.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
