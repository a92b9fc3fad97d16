package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// LoadConfig loads rate limiting configuration from the RATE_LIMIT_* environment variables.
func LoadConfig() *Config {
	return LoadConfigFrom(os.Getenv)
}

// LoadConfigFrom builds a Config from getenv. Unset or unparsable values fall
// back to the defaults.
func LoadConfigFrom(getenv func(string) string) *Config {
	env := envReader(getenv)
	if !env.boolOr("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    env.intOr("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   env.durationOr("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: env.durationOr("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		IdleTimeout:     env.durationOr("RATE_LIMIT_IDLE_TIMEOUT", time.Hour),
		Whitelist:       parseIPList(getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: Headless browser exports (strictest limits)
		{Path: "/api/resumes/*/export.pdf", Method: "GET", Limit: 20, Window: time.Hour, Burst: 3},
		{Path: "/builder/*/export.pdf", Method: "GET", Limit: 20, Window: time.Hour, Burst: 3},

		// Tier 2: Session creation and draft storage
		{Path: "/builder", Method: "POST", Limit: 60, Window: time.Hour, Burst: 10},
		{Path: "/api/resumes", Method: "POST", Limit: 60, Window: time.Hour, Burst: 10},
		{Path: "/api/resumes/*/draft", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/drafts/*/open", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/drafts/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},

		// Tier 3: Preview streams hold a connection open
		{Path: "/builder/*/preview/stream", Method: "GET", Limit: 30, Window: time.Minute, Burst: 5},

		// Tier 4: Edits and reads - handled by default limit
		// Tier 5: Health check (unlimited) - handled by special case in matcher
	}
}

type envReader func(string) string

func (e envReader) intOr(key string, def int) int {
	if n, err := strconv.Atoi(e(key)); err == nil {
		return n
	}
	return def
}

func (e envReader) boolOr(key string, def bool) bool {
	if b, err := strconv.ParseBool(e(key)); err == nil {
		return b
	}
	return def
}

func (e envReader) durationOr(key string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(e(key)); err == nil && d > 0 {
		return d
	}
	return def
}

// parseIPList turns "a, b,,c" into a set of addresses.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
