package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Sources   SourcesConfig   `yaml:"sources"`
	Session   SessionConfig   `yaml:"session"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AuthConfig holds the settings for tokens presented by front-ends.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"wordbot"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
}

// SourcesConfig holds settings shared by the external lexical sources.
type SourcesConfig struct {
	DictionaryURL string `yaml:"dictionary_url" env:"SOURCES_DICTIONARY_URL" env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	TranslateURL  string `yaml:"translate_url"  env:"SOURCES_TRANSLATE_URL"  env-default:"https://translate.googleapis.com"`
	ExamplesURL   string `yaml:"examples_url"   env:"SOURCES_EXAMPLES_URL"   env-default:"https://tatoeba.org"`
	ReferenceURL  string `yaml:"reference_url"  env:"SOURCES_REFERENCE_URL"  env-default:"https://en.wikipedia.org"`

	Timeout       time.Duration `yaml:"timeout"         env:"SOURCES_TIMEOUT"         env-default:"5s"`
	RatePerSecond float64       `yaml:"rate_per_second" env:"SOURCES_RATE_PER_SECOND" env-default:"5"`
	UserAgent     string        `yaml:"user_agent"      env:"SOURCES_USER_AGENT"      env-default:"wordbot/1.0 (+https://github.com/heartmarshall/wordbot-backend)"`
	RetryAttempts uint          `yaml:"retry_attempts"  env:"SOURCES_RETRY_ATTEMPTS"  env-default:"3"`
	RetryDelay    time.Duration `yaml:"retry_delay"     env:"SOURCES_RETRY_DELAY"     env-default:"200ms"`
	LookupTimeout time.Duration `yaml:"lookup_timeout"  env:"SOURCES_LOOKUP_TIMEOUT"  env-default:"20s"`

	TranslationEnabled bool   `yaml:"translation_enabled" env:"SOURCES_TRANSLATION_ENABLED" env-default:"true"`
	TranslationSource  string `yaml:"translation_source"  env:"SOURCES_TRANSLATION_SOURCE"  env-default:"en"`
	TranslationTarget  string `yaml:"translation_target"  env:"SOURCES_TRANSLATION_TARGET"  env-default:"ru"`
}

// SessionConfig bounds the per-owner pending lookups.
type SessionConfig struct {
	Size int           `yaml:"size" env:"SESSION_SIZE" env-default:"10000"`
	TTL  time.Duration `yaml:"ttl"  env:"SESSION_TTL"  env-default:"30m"`
}

// RateLimitConfig holds per-client request throttling settings.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"60"`
	MaxClients        int           `yaml:"max_clients"         env:"RATE_LIMIT_MAX_CLIENTS"         env-default:"10000"`
	IdleTTL           time.Duration `yaml:"idle_ttl"            env:"RATE_LIMIT_IDLE_TTL"            env-default:"10m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
