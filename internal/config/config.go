// Package config reads the configuration of fintrack from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	BackendSQLite = "sqlite"
	BackendMongo  = "mongo"
)

// Config is the configuration of fintrack.
type Config struct {
	Port   string
	APIURL *url.URL

	DBBackend    string
	SQLitePath   string
	MongoURI     string
	MongoDBName  string
	MongoTimeout time.Duration

	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	AllowOrigins      []string
	EnablePprof       bool
	RecurringInterval time.Duration // 0 disables the recurring expense job
}

// Load reads the configuration from the environment.
//
// Variables from the given files are loaded into the environment first,
// without overriding variables that are already set. Files that do
// not exist are ignored.
func Load(files ...string) (Config, error) {
	for _, file := range files {
		err := godotenv.Load(file)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("could not load %s: %w", file, err)
		}
	}

	cfg := Config{
		Port:        getenv("PORT", "8080"),
		DBBackend:   strings.ToLower(getenv("DB_BACKEND", BackendSQLite)),
		SQLitePath:  getenv("SQLITE_PATH", "data/fintrack.db"),
		MongoURI:    os.Getenv("MONGO_URI"),
		MongoDBName: getenv("MONGO_DB_NAME", "fintrack"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}

	var errs []error

	apiURL, ok := os.LookupEnv("API_URL")
	if ok {
		u, err := url.Parse(apiURL)
		if err != nil {
			errs = append(errs, fmt.Errorf("API_URL must be a valid URL: %w", err))
		}
		cfg.APIURL = u
	}

	timeout, err := strconv.Atoi(getenv("MONGO_TIMEOUT_SECONDS", "10"))
	if err != nil {
		errs = append(errs, fmt.Errorf("failed to parse MONGO_TIMEOUT_SECONDS: %w", err))
	}
	cfg.MongoTimeout = time.Duration(timeout) * time.Second

	cfg.TokenTTL, err = time.ParseDuration(getenv("TOKEN_TTL", "168h"))
	if err != nil {
		errs = append(errs, fmt.Errorf("failed to parse TOKEN_TTL: %w", err))
	}

	cfg.BcryptCost, err = strconv.Atoi(getenv("BCRYPT_COST", strconv.Itoa(bcrypt.DefaultCost)))
	if err != nil {
		errs = append(errs, fmt.Errorf("failed to parse BCRYPT_COST: %w", err))
	}

	if origins := os.Getenv("CORS_ALLOW_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, " ") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
			}
		}
	}

	if pprof := os.Getenv("ENABLE_PPROF"); pprof != "" {
		cfg.EnablePprof, err = strconv.ParseBool(pprof)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to parse ENABLE_PPROF: %w", err))
		}
	}

	cfg.RecurringInterval, err = time.ParseDuration(getenv("RECURRING_INTERVAL", "1h"))
	if err != nil {
		errs = append(errs, fmt.Errorf("failed to parse RECURRING_INTERVAL: %w", err))
	}

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}

	return cfg, nil
}

// Validate returns all problems with the configuration.
func (c Config) Validate() error {
	var errs []error

	if c.APIURL == nil {
		errs = append(errs, errors.New("environment variable API_URL must be set"))
	} else if c.APIURL.Scheme == "" || c.APIURL.Host == "" {
		errs = append(errs, fmt.Errorf("API_URL must be an absolute URL, got %q", c.APIURL))
	}

	if c.JWTSecret == "" {
		errs = append(errs, errors.New("environment variable JWT_SECRET must be set"))
	}

	if c.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL))
	}

	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost))
	}

	if c.RecurringInterval < 0 {
		errs = append(errs, fmt.Errorf("RECURRING_INTERVAL must not be negative, got %s", c.RecurringInterval))
	}

	switch c.DBBackend {
	case BackendSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH must not be empty"))
		}
	case BackendMongo:
		if c.MongoURI == "" {
			errs = append(errs, errors.New("MONGO_URI must be set for the mongo backend"))
		}
		if c.MongoTimeout <= 0 {
			errs = append(errs, fmt.Errorf("MONGO_TIMEOUT_SECONDS must be positive, got %s", c.MongoTimeout))
		}
	default:
		errs = append(errs, fmt.Errorf("DB_BACKEND must be %q or %q, got %q", BackendSQLite, BackendMongo, c.DBBackend))
	}

	return errors.Join(errs...)
}

func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
