package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	MetricsPort int    `toml:"metrics_port"`

	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`
	SentryDSN   string `toml:"sentry_dsn"`

	// postgres
	PostgresHost     string `toml:"postgres_host"`
	PostgresPort     string `toml:"postgres_port"`
	PostgresDBName   string `toml:"postgres_db_name"`
	PostgresMaxConns int    `toml:"postgres_max_conns"`

	// redis, used for rate limiting
	RedisHost string `toml:"redis_host"`
	RedisPort int    `toml:"redis_port"`

	// engine knobs
	EvaluatorVariant  string `toml:"evaluator_variant"`
	DebounceWindowMs  int    `toml:"debounce_window_ms"`
	GenerateRateLimit int    `toml:"generate_rate_limit"`

	TracingEnabled bool `toml:"tracing_enabled"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML config file and returns the section for env.
func Load(env, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Toml
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	section, err := cfg.Get(env)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, fmt.Errorf("config section for %s missing", env)
	}
	return section, nil
}
