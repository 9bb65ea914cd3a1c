package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	StaticDir    string
	TokenSalt    string
	VerifyURL    string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("article-server", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (postgres, sqlite or memory)")
	fs.StringVar(&cfg.StaticDir, "s", "", "Front-end build directory")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.TokenSalt, "token-salt", "", "Token signing salt (prefer env)")
	fs.StringVar(&cfg.VerifyURL, "verify-url", "", "Remote identity-provider verify endpoint")

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
			cfg.Port = 8000 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "postgres"
		}
	}
	switch cfg.DatabaseType {
	case "postgres", "sqlite", "memory":
	default:
		return Config{}, errors.New("DATABASE_TYPE must be postgres, sqlite or memory")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" && cfg.DatabaseType != "memory" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.StaticDir == "" {
		cfg.StaticDir = os.Getenv("STATIC_DIR")
	}

	if cfg.VerifyURL == "" {
		cfg.VerifyURL = os.Getenv("AUTH_VERIFY_URL")
	}

	// Salt is the local verifier's secret - only required when no remote
	// verifier is configured
	if cfg.TokenSalt == "" {
		cfg.TokenSalt = os.Getenv("TOKEN_SALT")
	}
	if cfg.TokenSalt == "" && cfg.VerifyURL == "" {
		return Config{}, errors.New("TOKEN_SALT required (or set AUTH_VERIFY_URL)")
	}

	return cfg, nil
}
