package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Search    SearchConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
	// TrustedProxies are CIDRs allowed to set X-Forwarded-For
	TrustedProxies []string
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	SQLitePath      string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

// SearchConfig holds paging limits and the locale used to read form text.
type SearchConfig struct {
	DefaultPageLimit int
	MaxPageLimit     int
	DateLayout       string
	DecimalSeparator string
	GroupSeparator   string
}

type RateLimitConfig struct {
	RequestsPerSecond int
	Burst             int
}

// Load reads configuration from the environment, applying a .env file from
// the working directory first when one exists. Unparseable values fall back
// to their defaults; use Validate to reject inconsistent settings.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Server:   loadServer(),
		Database: loadDatabase(),
		Search:   loadSearch(),
		RateLimit: RateLimitConfig{
			RequestsPerSecond: envOr("RATE_LIMIT_PER_SECOND", 20, strconv.Atoi),
			Burst:             envOr("RATE_LIMIT_BURST", 40, strconv.Atoi),
		},
	}

	if cfg.Search.MaxPageLimit < cfg.Search.DefaultPageLimit {
		slog.Warn("SEARCH_MAX_LIMIT below SEARCH_DEFAULT_LIMIT, raising it",
			"max", cfg.Search.MaxPageLimit, "default", cfg.Search.DefaultPageLimit)
		cfg.Search.MaxPageLimit = cfg.Search.DefaultPageLimit
	}
	if cfg.IsProduction() && len(cfg.Server.CORSAllowOrigins) == 1 && cfg.Server.CORSAllowOrigins[0] == "*" {
		slog.Warn("CORS_ALLOW_ORIGINS not set in production, allowing every origin")
	}
	return cfg
}

func loadServer() ServerConfig {
	return ServerConfig{
		Port:             envOr("SERVER_PORT", "8080", asString),
		Host:             envOr("SERVER_HOST", "localhost", asString),
		Environment:      envOr("APP_ENV", "development", asString),
		ReadTimeout:      envOr("SERVER_READ_TIMEOUT", 15*time.Second, time.ParseDuration),
		WriteTimeout:     envOr("SERVER_WRITE_TIMEOUT", 15*time.Second, time.ParseDuration),
		ShutdownTimeout:  envOr("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second, time.ParseDuration),
		CORSAllowOrigins: envOr("CORS_ALLOW_ORIGINS", []string{"*"}, splitList),
		TrustedProxies:   envOr("TRUSTED_PROXIES", nil, splitList),
	}
}

func loadDatabase() DatabaseConfig {
	return DatabaseConfig{
		Driver:          strings.ToLower(envOr("DB_DRIVER", DriverPostgres, asString)),
		Host:            envOr("DB_HOST", "localhost", asString),
		Port:            envOr("DB_PORT", "5432", asString),
		User:            envOr("DB_USER", "mmex", asString),
		Password:        envOr("DB_PASSWORD", "mmex", asString),
		Name:            envOr("DB_NAME", "mmex", asString),
		SSLMode:         envOr("DB_SSL_MODE", "disable", asString),
		SQLitePath:      envOr("DB_SQLITE_PATH", "mmex.db", asString),
		MaxConnections:  envOr("DB_MAX_CONNECTIONS", 25, strconv.Atoi),
		MaxIdleConns:    envOr("DB_MAX_IDLE_CONNS", 5, strconv.Atoi),
		ConnMaxLifetime: envOr("DB_CONN_MAX_LIFETIME", time.Hour, time.ParseDuration),
		AutoMigrate:     envOr("AUTO_MIGRATE", false, strconv.ParseBool),
	}
}

func loadSearch() SearchConfig {
	return SearchConfig{
		DefaultPageLimit: envOr("SEARCH_DEFAULT_LIMIT", 20, strconv.Atoi),
		MaxPageLimit:     envOr("SEARCH_MAX_LIMIT", 100, strconv.Atoi),
		DateLayout:       envOr("SEARCH_DATE_LAYOUT", "2006-01-02", asString),
		DecimalSeparator: envOr("SEARCH_DECIMAL_SEPARATOR", ".", asString),
		// blank is meaningful here: no grouping separator
		GroupSeparator: os.Getenv("SEARCH_GROUP_SEPARATOR"),
	}
}

// Validate reports every setting the service cannot run with
func (c *Config) Validate() error {
	var errs []error
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER %q is not one of %s, %s", c.Database.Driver, DriverPostgres, DriverSQLite))
	}
	if c.Search.DefaultPageLimit <= 0 {
		errs = append(errs, fmt.Errorf("SEARCH_DEFAULT_LIMIT must be positive, got %d", c.Search.DefaultPageLimit))
	}
	if c.Search.DecimalSeparator == "" {
		errs = append(errs, errors.New("SEARCH_DECIMAL_SEPARATOR must not be empty"))
	}
	if c.Search.DecimalSeparator == c.Search.GroupSeparator {
		errs = append(errs, fmt.Errorf("SEARCH_GROUP_SEPARATOR must differ from the decimal separator %q", c.Search.DecimalSeparator))
	}
	sample := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	if parsed, err := time.Parse(c.Search.DateLayout, sample.Format(c.Search.DateLayout)); err != nil || !parsed.Equal(sample) {
		errs = append(errs, fmt.Errorf("SEARCH_DATE_LAYOUT %q must carry day, month and year", c.Search.DateLayout))
	}
	for _, cidr := range c.Server.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			errs = append(errs, fmt.Errorf("TRUSTED_PROXIES entry %q is not a CIDR", cidr))
		}
	}
	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_SECOND and RATE_LIMIT_BURST must be positive"))
	}
	return errors.Join(errs...)
}

// DSN returns the postgres keyword/value connection string used by gorm
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL returns the postgres connection URL used by the migration tool
func (c *DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// envOr parses key with parse, returning def when it is unset or invalid
func envOr[T any](key string, def T, parse func(string) (T, error)) T {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := parse(raw)
	if err != nil {
		slog.Warn("ignoring invalid environment value", "key", key, "error", err)
		return def
	}
	return v
}

func asString(s string) (string, error) { return s, nil }

func splitList(s string) ([]string, error) {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil, errors.New("empty list")
	}
	return items, nil
}
