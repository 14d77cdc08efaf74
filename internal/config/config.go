package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port        int    `mapstructure:"port"         validate:"required,gt=0,lt=65536"`
	LogLevel    string `mapstructure:"log_level"    validate:"required,oneof=debug info warn error"`
	Environment string `mapstructure:"environment"  validate:"required,oneof=development testing production"`

	// RateLimitPerMinute caps requests per client IP per minute on all
	// /api routes, before the auth gate. Zero disables the limiter.
	RateLimitPerMinute int `mapstructure:"rate_limit_per_minute" validate:"gte=0"`

	// CORSAllowedOrigins lists origins allowed to call /api routes.
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	// JWTSecret signs session tokens; it must be long enough that
	// HMAC-SHA256 keys are not trivially brute-forceable.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeHours is how long an issued token stays valid.
	TokenLifetimeHours int `mapstructure:"token_lifetime_hours" validate:"required,gt=0"`

	// AdminUserIDs is the allow-list of user IDs admitted to admin-only
	// operations. Authorization failure against this list is a 403,
	// distinct from the 401 authentication failures.
	AdminUserIDs []string `mapstructure:"admin_user_ids"`
}

// IsAdmin reports whether the given user ID is on the admin allow-list.
func (c AuthConfig) IsAdmin(userID string) bool {
	for _, id := range c.AdminUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
