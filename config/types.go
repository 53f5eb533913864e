package config

// Config represents the complete configuration structure
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Logging LoggingConfig `mapstructure:"logging"`
	Filters FilterConfig  `mapstructure:"filters"`
}

// ServerConfig holds Grimnir Radio connection details
type ServerConfig struct {
	URL     string `mapstructure:"url"`
	Timeout int    `mapstructure:"timeout"` // seconds
}

// AuthConfig holds one of the two authentication variants. Exactly one
// may be configured: a static API key, or an email/password session.
type AuthConfig struct {
	APIKey   string `mapstructure:"api_key"`
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

// FilterConfig contains named filter expression presets
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
