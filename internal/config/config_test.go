package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"finitefield.org/landing-web/internal/lang"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Server.Addr() != ":8080" {
		t.Errorf("unexpected addr: %s", cfg.Server.Addr())
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.ShutdownTimeout != defaultShutdownTimeout {
		t.Errorf("unexpected shutdown timeout: %s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Sites.Default != "brandai" {
		t.Errorf("expected default site brandai, got %s", cfg.Sites.Default)
	}
	if cfg.Sites.DefaultLang != lang.ZH {
		t.Errorf("expected default lang zh, got %s", cfg.Sites.DefaultLang)
	}
	if len(cfg.Sites.Hosts) != 0 {
		t.Errorf("expected no host mapping, got %v", cfg.Sites.Hosts)
	}
	if cfg.Production() {
		t.Error("expected dev environment by default")
	}
	if cfg.Analytics.Enabled() {
		t.Error("expected analytics disabled by default")
	}
}

func TestLoadWithOverrides(t *testing.T) {
	env := map[string]string{
		"PORT":                      "9000",
		"LANDING_PORT":              "7000",
		"LANDING_READ_TIMEOUT":      "5s",
		"LANDING_DEFAULT_SITE":      "gbox",
		"LANDING_SITE_HOSTS":        "GBox.example.com=gbox, agri.example.com=agri,broken",
		"LANDING_DEFAULT_LANG":      "en-US",
		"LANDING_ENV":               "PROD",
		"LANDING_DEV":               "yes",
		"LANDING_BASE_URL":          "https://landing.example.com/",
		"LANDING_GA_MEASUREMENT_ID": "G-TEST",
	}
	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "7000" {
		t.Errorf("expected LANDING_PORT to win, got %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Sites.Default != "gbox" {
		t.Errorf("unexpected default site: %s", cfg.Sites.Default)
	}
	if len(cfg.Sites.Hosts) != 2 {
		t.Errorf("expected two host mappings, got %v", cfg.Sites.Hosts)
	}
	if site, ok := cfg.Sites.SiteForHost("gbox.example.com:8443"); !ok || site != "gbox" {
		t.Errorf("expected gbox for mapped host, got %q %v", site, ok)
	}
	if _, ok := cfg.Sites.SiteForHost("other.example.com"); ok {
		t.Error("expected unmapped host to miss")
	}
	if cfg.Sites.DefaultLang != lang.EN {
		t.Errorf("expected en, got %s", cfg.Sites.DefaultLang)
	}
	if !cfg.Production() || !cfg.Dev {
		t.Errorf("expected prod env with dev flag, got env=%s dev=%v", cfg.Env, cfg.Dev)
	}
	if cfg.Sites.BaseURL != "https://landing.example.com" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.Sites.BaseURL)
	}
	if !cfg.Analytics.Enabled() {
		t.Error("expected analytics enabled")
	}
}

func TestLoadFallsBackToPlatformPort(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{"PORT": "9000"}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("expected PORT fallback, got %s", cfg.Server.Port)
	}
}

func TestLoadDotEnvFallback(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env.test")
	content := "LANDING_PORT=7070\nLANDING_DEFAULT_SITE=agri\n"
	if err := os.WriteFile(envPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write dotenv file: %v", err)
	}

	cfg, err := Load(WithEnvFile(envPath), WithoutSystemEnv(), WithEnvMap(map[string]string{"LANDING_DEFAULT_SITE": "gbox"}))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("expected port from dotenv 7070, got %s", cfg.Server.Port)
	}
	if cfg.Sites.Default != "gbox" {
		t.Errorf("expected explicit map to override dotenv, got %s", cfg.Sites.Default)
	}
}

func TestLoadMissingDotEnvIsIgnored(t *testing.T) {
	_, err := Load(WithEnvFile(filepath.Join(t.TempDir(), "missing.env")), WithoutSystemEnv())
	if err != nil {
		t.Fatalf("expected missing dotenv to be ignored, got %v", err)
	}
}

func TestLoadReportsAllInvalidFields(t *testing.T) {
	env := map[string]string{
		"LANDING_PORT":         "http",
		"LANDING_ENV":          "staging",
		"LANDING_DEFAULT_LANG": "fr",
		"LANDING_BASE_URL":     "not a url",
	}
	_, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	want := map[string]bool{"Sites.DefaultLang": true, "Server.Port": true, "Env": true, "Sites.BaseURL": true}
	fields := verr.Fields()
	if len(fields) != len(want) {
		t.Fatalf("unexpected fields: %v", fields)
	}
	for _, f := range fields {
		if !want[f] {
			t.Errorf("unexpected invalid field %s", f)
		}
	}
}
