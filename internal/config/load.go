package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix namespaces this application's environment variables, e.g.
// CONSTRUCT_DATABASE_URL or CONSTRUCT_AUTH_JWT_SECRET.
const envPrefix = "CONSTRUCT"

// Load reads configuration from environment variables and, if present, a
// config.yaml file in the working directory. Environment variables take
// precedence over file values. Returns a populated Config or an error if
// loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.rate_limit_per_minute", 60)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("auth.token_lifetime_hours", 24)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; env vars alone can configure everything.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv does not register keys for Unmarshal, so bind the
	// ones we expect explicitly.
	for _, key := range []string{
		"server.port", "server.log_level", "server.environment",
		"server.rate_limit_per_minute", "server.cors_allowed_origins",
		"database.url",
		"auth.jwt_secret", "auth.token_lifetime_hours", "auth.admin_user_ids",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate applies the struct-level validation tags and reports every
// failing field in one error.
func validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var invalid []validator.ValidationErrors
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		invalid = append(invalid, ve)
	} else {
		return fmt.Errorf("validate config: %w", err)
	}

	var fields []string
	for _, errs := range invalid {
		for _, fe := range errs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
}
