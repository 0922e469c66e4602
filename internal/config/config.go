// Package config loads and validates the Medium MCP server configuration.
//
// Configuration sources (highest to lowest priority):
//  1. Environment variables
//  2. .env file in the working directory (never overrides real env)
//  3. Default values
//
// Validation happens at load time: a process with an invalid configuration
// refuses to start instead of failing on the first tool call.
//
// Security: the RapidAPI key is never logged; String() and MarshalJSON mask it.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	// ErrMissingAPIKey indicates the RAPIDAPI_KEY environment variable is not set.
	ErrMissingAPIKey = errors.New("missing RAPIDAPI_KEY")

	// ErrInvalidAPIKey indicates the RapidAPI key is malformed.
	ErrInvalidAPIKey = errors.New("invalid RAPIDAPI_KEY")

	// ErrInvalidMaxArticles indicates MAX_ARTICLES_PER_REQUEST is out of range or not numeric.
	ErrInvalidMaxArticles = errors.New("invalid MAX_ARTICLES_PER_REQUEST")

	// ErrInvalidBaseURL indicates MEDIUM_BASE_URL is not a valid http(s) URL.
	ErrInvalidBaseURL = errors.New("invalid MEDIUM_BASE_URL")

	// ErrInvalidTimeout indicates REQUEST_TIMEOUT_SECONDS is out of range or not numeric.
	ErrInvalidTimeout = errors.New("invalid REQUEST_TIMEOUT_SECONDS")
)

const (
	// DefaultMaxArticles is the default cap on articles returned per tool call.
	DefaultMaxArticles = 3

	// MinMaxArticles and MaxMaxArticles bound MAX_ARTICLES_PER_REQUEST.
	MinMaxArticles = 1
	MaxMaxArticles = 100

	// DefaultBaseURL is the Medium API endpoint on RapidAPI.
	DefaultBaseURL = "https://medium2.p.rapidapi.com"

	// DefaultTimeoutSeconds bounds every upstream call.
	DefaultTimeoutSeconds = 30

	// MinTimeoutSeconds and MaxTimeoutSeconds bound REQUEST_TIMEOUT_SECONDS.
	MinTimeoutSeconds = 1
	MaxTimeoutSeconds = 300

	// minAPIKeyLength rejects obviously truncated keys before the first upstream call.
	minAPIKeyLength = 10
)

// Config stores the server configuration, read-only after Load.
// SECURITY: APIKey is masked in MarshalJSON; update it when adding secret fields.
type Config struct {
	APIKey         string `mapstructure:"rapidapi_key" json:"rapidapi_key"` // SENSITIVE: masked in MarshalJSON
	MaxArticles    int    `mapstructure:"max_articles_per_request" json:"max_articles_per_request"`
	BaseURL        string `mapstructure:"medium_base_url" json:"medium_base_url"`
	TimeoutSeconds int    `mapstructure:"request_timeout_seconds" json:"request_timeout_seconds"`
}

// Load reads configuration from the environment and validates it.
// Priority: environment variables > .env file > defaults.
func Load() (*Config, error) {
	// .env support for local development; a missing file is not an error,
	// and godotenv never overrides variables already set in the environment.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("max_articles_per_request", strconv.Itoa(DefaultMaxArticles))
	v.SetDefault("medium_base_url", DefaultBaseURL)
	v.SetDefault("request_timeout_seconds", strconv.Itoa(DefaultTimeoutSeconds))

	bindEnvVariables(v)

	cfg := &Config{
		APIKey:  strings.TrimSpace(v.GetString("rapidapi_key")),
		BaseURL: strings.TrimSpace(v.GetString("medium_base_url")),
	}

	// Numeric settings are parsed by hand so the error can name the offending
	// value and the accepted range; viper's GetInt silently returns 0 on garbage.
	maxArticles, err := parseBoundedInt(v.GetString("max_articles_per_request"),
		MinMaxArticles, MaxMaxArticles, ErrInvalidMaxArticles)
	if err != nil {
		return nil, err
	}
	cfg.MaxArticles = maxArticles

	timeout, err := parseBoundedInt(v.GetString("request_timeout_seconds"),
		MinTimeoutSeconds, MaxTimeoutSeconds, ErrInvalidTimeout)
	if err != nil {
		return nil, err
	}
	cfg.TimeoutSeconds = timeout

	// CRITICAL: validate immediately (fail-fast)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// bindEnvVariables binds the environment variables explicitly.
// Explicit binding keeps the full set of recognized variables in one place.
func bindEnvVariables(v *viper.Viper) {
	mustBind := func(key, envVar string) {
		if err := v.BindEnv(key, envVar); err != nil {
			panic(fmt.Sprintf("BUG: failed to bind %q to %q: %v", key, envVar, err))
		}
	}

	mustBind("rapidapi_key", "RAPIDAPI_KEY")
	mustBind("max_articles_per_request", "MAX_ARTICLES_PER_REQUEST")
	mustBind("medium_base_url", "MEDIUM_BASE_URL")
	mustBind("request_timeout_seconds", "REQUEST_TIMEOUT_SECONDS")
}

// parseBoundedInt parses raw as an integer within [minVal, maxVal].
func parseBoundedInt(raw string, minVal, maxVal int, sentinel error) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer (accepted range %d-%d)",
			sentinel, raw, minVal, maxVal)
	}
	if n < minVal || n > maxVal {
		return 0, fmt.Errorf("%w: %d is outside the accepted range %d-%d",
			sentinel, n, minVal, maxVal)
	}
	return n, nil
}

// Validate checks all non-numeric settings. Numeric bounds are enforced in Load.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%w: set the RAPIDAPI_KEY environment variable", ErrMissingAPIKey)
	}
	if len(c.APIKey) < minAPIKeyLength {
		return fmt.Errorf("%w: key must be at least %d characters", ErrInvalidAPIKey, minAPIKeyLength)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q is not an http(s) URL", ErrInvalidBaseURL, c.BaseURL)
	}

	return nil
}

// maskedValue is the placeholder for masked sensitive data.
const maskedValue = "********"

// maskSecret masks a secret for safe logging. Short secrets are fully masked
// to prevent substring matching; longer ones keep the first and last two
// characters for debug utility.
func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return maskedValue
	}
	return s[:2] + "<" + maskedValue + ">" + s[len(s)-2:]
}

// MarshalJSON implements json.Marshaler with the API key masked.
func (c Config) MarshalJSON() ([]byte, error) {
	type alias Config
	a := alias(c)
	a.APIKey = maskSecret(a.APIKey)
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// String implements Stringer to prevent accidental printing of the API key.
func (c Config) String() string {
	data, err := c.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("Config{error: %v}", err)
	}
	return string(data)
}
