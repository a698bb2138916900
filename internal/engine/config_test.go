package engine

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	c := DefaultConfig()
	c.ProviderAPIKey = "test-key"
	return c
}

func TestConfigValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name  string
		edit  func(*Config)
		field string
	}{
		{"missing key", func(c *Config) { c.ProviderAPIKey = "" }, "ProviderAPIKey"},
		{"missing url", func(c *Config) { c.ProviderURL = "" }, "ProviderURL"},
		{"bad url", func(c *Config) { c.ProviderURL = "not a url" }, "ProviderURL"},
		{"zero timeout", func(c *Config) { c.ProviderTimeout = 0 }, "ProviderTimeout"},
		{"negative rps", func(c *Config) { c.ProviderRPS = -1 }, "ProviderRPS"},
		{"too much concurrency", func(c *Config) { c.MaxConcurrency = 64 }, "MaxConcurrency"},
		{"zero results", func(c *Config) { c.MaxResults = 0 }, "MaxResults"},
		{"too many results", func(c *Config) { c.MaxResults = 500 }, "MaxResults"},
		{"bad redis url", func(c *Config) { c.RedisURL = "::" }, "RedisURL"},
		{"negative ttl", func(c *Config) { c.CacheTTL = -time.Second }, "CacheTTL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.edit(&c)
			err := c.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name %s", err, tt.field)
			}
		})
	}
}

func TestConfigValidateReportsAll(t *testing.T) {
	c := validConfig()
	c.ProviderAPIKey = ""
	c.MaxResults = 0
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, f := range []string{"ProviderAPIKey", "MaxResults"} {
		if !strings.Contains(err.Error(), f) {
			t.Errorf("error %q missing %s", err, f)
		}
	}
}

func TestConfigOptionalRedis(t *testing.T) {
	c := validConfig()
	c.RedisURL = ""
	c.CacheTTL = 0
	if err := c.Validate(); err != nil {
		t.Errorf("empty redis and disabled cache should be valid: %v", err)
	}
}

func TestDefaultConfigNeedsOnlyKey(t *testing.T) {
	if err := DefaultConfig().Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("defaults without a key should be invalid, got %v", err)
	}
	if validConfig().HTTPClient == nil {
		t.Error("defaults should carry an HTTP client")
	}
}
