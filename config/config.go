package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load loads the configuration. Values come from a yaml file when one
// is found, overridden by GRIMNIR_* environment variables (a local
// .env file is honored), so the demo harness works with nothing but
// GRIMNIR_URL and GRIMNIR_API_KEY exported.
func Load(configPath string) (*Config, error) {
	// Best effort; a missing .env file is fine.
	_ = godotenv.Load()

	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("GRIMNIR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Map the documented flat env names onto the config tree.
	_ = v.BindEnv("server.url", "GRIMNIR_URL")
	_ = v.BindEnv("server.timeout", "GRIMNIR_TIMEOUT")
	_ = v.BindEnv("auth.api_key", "GRIMNIR_API_KEY")
	_ = v.BindEnv("auth.email", "GRIMNIR_EMAIL")
	_ = v.BindEnv("auth.password", "GRIMNIR_PASSWORD")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".grimnirctl"))
		}
		v.AddConfigPath("/etc/grimnirctl/")
	}

	if err := v.ReadInConfig(); err != nil {
		// A config file is optional when the environment carries
		// everything; only a broken file is fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.url", "http://localhost:8080")
	v.SetDefault("server.timeout", 30)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Server.URL == "" {
		return fmt.Errorf("server.url is required (GRIMNIR_URL)")
	}

	if cfg.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive")
	}

	hasKey := cfg.Auth.APIKey != ""
	hasSession := cfg.Auth.Email != "" || cfg.Auth.Password != ""
	if hasKey && hasSession {
		return fmt.Errorf("auth.api_key and auth.email/password are mutually exclusive")
	}
	if cfg.Auth.Email != "" && cfg.Auth.Password == "" {
		return fmt.Errorf("auth.password is required with auth.email (GRIMNIR_PASSWORD)")
	}
	if cfg.Auth.Password != "" && cfg.Auth.Email == "" {
		return fmt.Errorf("auth.email is required with auth.password (GRIMNIR_EMAIL)")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
