package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the console service.
type Config struct {
	Port        string
	DatabaseURL string
	LogLevel    string
	GinMode     string

	// TrustedProxies lists the proxy CIDRs whose X-Forwarded-For is believed.
	// Empty means the peer address is the client.
	TrustedProxies []string

	Upstream struct {
		BaseURL string
		Timeout time.Duration
	}

	// DemoMode substitutes sample data when upstream endpoints are not implemented yet.
	DemoMode bool

	Login struct {
		MaxAttempts int
		Lockout     time.Duration
		SessionTTL  time.Duration

		// SessionPurge is how often expired sessions are deleted.
		SessionPurge time.Duration
	}

	KYCSearchDebounce time.Duration

	Audit struct {
		AMQPURL  string
		Exchange string
	}
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok && strings.TrimSpace(val) != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return def
}

func getEnvList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return def
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.DatabaseURL = getEnv("DATABASE_URL", "host=localhost user=console password=console dbname=console port=5432 sslmode=disable")
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.GinMode = getEnv("GIN_MODE", "release")
	cfg.TrustedProxies = getEnvList("TRUSTED_PROXIES")

	cfg.Upstream.BaseURL = strings.TrimRight(getEnv("UPSTREAM_BASE_URL", "http://localhost:9000"), "/")
	cfg.Upstream.Timeout = getEnvDuration("UPSTREAM_TIMEOUT", 15*time.Second)

	cfg.DemoMode = getEnvBool("CONSOLE_DEMO_MODE", false)

	cfg.Login.MaxAttempts = getEnvInt("LOGIN_MAX_ATTEMPTS", 5)
	cfg.Login.Lockout = getEnvDuration("LOGIN_LOCKOUT", 15*time.Minute)
	cfg.Login.SessionTTL = getEnvDuration("SESSION_TTL", 24*time.Hour)
	cfg.Login.SessionPurge = getEnvDuration("SESSION_PURGE_INTERVAL", time.Hour)

	cfg.KYCSearchDebounce = getEnvDuration("KYC_SEARCH_DEBOUNCE", 500*time.Millisecond)

	cfg.Audit.AMQPURL = getEnv("AMQP_URL", "")
	cfg.Audit.Exchange = getEnv("AUDIT_EXCHANGE", "console.audit")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the console cannot start with.
func (c *Config) Validate() error {
	if c.Upstream.BaseURL == "" {
		return errors.New("config: UPSTREAM_BASE_URL is required")
	}
	if c.Login.MaxAttempts <= 0 {
		return errors.New("config: LOGIN_MAX_ATTEMPTS must be positive")
	}
	if c.Login.Lockout <= 0 {
		return errors.New("config: LOGIN_LOCKOUT must be positive")
	}
	if c.Login.SessionPurge <= 0 {
		return errors.New("config: SESSION_PURGE_INTERVAL must be positive")
	}
	return nil
}
