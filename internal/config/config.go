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

	"finitefield.org/landing-web/internal/lang"
)

const (
	defaultEnvFile         = ".env"
	defaultPort            = "8080"
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 120 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultSite            = "brandai"
	defaultEnvironment     = "dev"
	defaultLogLevel        = "info"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig
	Sites     SiteConfig
	Analytics AnalyticsConfig
	Env       string
	Dev       bool
	LogLevel  string
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Addr returns the listen address for Port.
func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

// SiteConfig selects which landing site answers a request.
type SiteConfig struct {
	Default     string
	Hosts       map[string]string
	DefaultLang lang.Tag
	BaseURL     string
}

// SiteForHost returns the site mapped to host (port stripped, case-insensitive).
func (s SiteConfig) SiteForHost(host string) (string, bool) {
	host = strings.ToLower(strings.TrimSpace(host))
	if i := strings.LastIndex(host, ":"); i >= 0 && !strings.Contains(host[i:], "]") {
		host = host[:i]
	}
	site, ok := s.Hosts[host]
	return site, ok
}

// AnalyticsConfig holds optional tag manager ids rendered into the page head.
type AnalyticsConfig struct {
	GAMeasurementID string
	GTMContainerID  string
}

// Enabled reports whether any analytics tag is configured.
func (a AnalyticsConfig) Enabled() bool {
	return a.GAMeasurementID != "" || a.GTMContainerID != ""
}

// Production reports whether the server runs with production settings.
func (c Config) Production() bool { return c.Env == "prod" }

// ValidationError is returned when configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from os.LookupEnv, relying only on provided maps and .env files.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the configuration from defaults, the .env file, environment
// variables and explicit overrides, in increasing precedence.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if value, ok := dotEnvValues[key]; ok {
			return value, true
		}
		return "", false
	}

	var invalid []string
	defaultLang := lang.Default
	if raw := stringWithDefault(lookup, "LANDING_DEFAULT_LANG", ""); raw != "" {
		if t, ok := lang.Parse(raw); ok {
			defaultLang = t
		} else {
			invalid = append(invalid, "Sites.DefaultLang")
		}
	}

	cfg := Config{
		Server: ServerConfig{
			Port:            stringWithDefault(lookup, "LANDING_PORT", stringWithDefault(lookup, "PORT", defaultPort)),
			ReadTimeout:     durationWithDefault(lookup, "LANDING_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:    durationWithDefault(lookup, "LANDING_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:     durationWithDefault(lookup, "LANDING_IDLE_TIMEOUT", defaultIdleTimeout),
			ShutdownTimeout: durationWithDefault(lookup, "LANDING_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		},
		Sites: SiteConfig{
			Default:     stringWithDefault(lookup, "LANDING_DEFAULT_SITE", defaultSite),
			Hosts:       mapWithDefault(lookup, "LANDING_SITE_HOSTS"),
			DefaultLang: defaultLang,
			BaseURL:     strings.TrimRight(stringWithDefault(lookup, "LANDING_BASE_URL", ""), "/"),
		},
		Analytics: AnalyticsConfig{
			GAMeasurementID: stringWithDefault(lookup, "LANDING_GA_MEASUREMENT_ID", ""),
			GTMContainerID:  stringWithDefault(lookup, "LANDING_GTM_CONTAINER_ID", ""),
		},
		Env:      strings.ToLower(stringWithDefault(lookup, "LANDING_ENV", defaultEnvironment)),
		Dev:      boolWithDefault(lookup, "LANDING_DEV", false),
		LogLevel: stringWithDefault(lookup, "LOG_LEVEL", defaultLogLevel),
	}

	if err := validateConfig(cfg, invalid); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config, invalid []string) error {
	if port, err := strconv.Atoi(cfg.Server.Port); err != nil || port <= 0 || port > 65535 {
		invalid = append(invalid, "Server.Port")
	}
	if cfg.Server.ReadTimeout <= 0 {
		invalid = append(invalid, "Server.ReadTimeout")
	}
	if cfg.Server.WriteTimeout <= 0 {
		invalid = append(invalid, "Server.WriteTimeout")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		invalid = append(invalid, "Server.ShutdownTimeout")
	}
	if strings.TrimSpace(cfg.Sites.Default) == "" {
		invalid = append(invalid, "Sites.Default")
	}
	if cfg.Env != "dev" && cfg.Env != "prod" {
		invalid = append(invalid, "Env")
	}
	if cfg.Sites.BaseURL != "" {
		if u, err := url.Parse(cfg.Sites.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			invalid = append(invalid, "Sites.BaseURL")
		}
	}
	if len(invalid) > 0 {
		return &ValidationError{fields: invalid}
	}
	return nil
}

// loadDotEnv reads path with godotenv; a missing file is not an error.
func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", path, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}

// mapWithDefault parses "host=site,host2=site2".
func mapWithDefault(lookup func(string) (string, bool), key string) map[string]string {
	values := make(map[string]string)
	raw, ok := lookup(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return values
	}
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])
		if name == "" || value == "" {
			continue
		}
		values[name] = value
	}
	return values
}
