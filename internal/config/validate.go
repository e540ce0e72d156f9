package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Sources.validate(); err != nil {
		return fmt.Errorf("sources: %w", err)
	}
	if c.Server.WriteTimeout > 0 && c.Sources.LookupTimeout >= c.Server.WriteTimeout {
		return fmt.Errorf("sources.lookup_timeout (%v) must be below server.write_timeout (%v)",
			c.Sources.LookupTimeout, c.Server.WriteTimeout)
	}

	if c.Session.Size <= 0 {
		return fmt.Errorf("session.size must be > 0 (got %d)", c.Session.Size)
	}
	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (s *SourcesConfig) validate() error {
	for name, raw := range map[string]string{
		"dictionary_url": s.DictionaryURL,
		"translate_url":  s.TranslateURL,
		"examples_url":   s.ExamplesURL,
		"reference_url":  s.ReferenceURL,
	} {
		if err := validateBaseURL(raw); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", s.Timeout)
	}
	if s.RatePerSecond < 0 {
		return fmt.Errorf("rate_per_second must be >= 0 (got %v)", s.RatePerSecond)
	}
	if s.RetryAttempts < 1 {
		return fmt.Errorf("retry_attempts must be >= 1 (got %d)", s.RetryAttempts)
	}
	if s.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must be >= 0 (got %v)", s.RetryDelay)
	}
	if s.LookupTimeout <= 0 {
		return fmt.Errorf("lookup_timeout must be > 0 (got %v)", s.LookupTimeout)
	}
	if s.TranslationEnabled && (s.TranslationSource == "" || s.TranslationTarget == "") {
		return fmt.Errorf("translation_source and translation_target are required when translation is enabled")
	}
	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", raw)
	}
	return nil
}
