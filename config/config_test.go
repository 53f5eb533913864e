package config

import (
	"testing"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			URL:     "http://localhost:8080",
			Timeout: 30,
		},
		Auth: AuthConfig{
			APIKey: "gr_test-key",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidateAuthVariants(t *testing.T) {
	tests := []struct {
		name    string
		auth    AuthConfig
		wantErr bool
	}{
		{
			name: "api key only",
			auth: AuthConfig{APIKey: "gr_key"},
		},
		{
			name: "email and password only",
			auth: AuthConfig{Email: "dj@example.com", Password: "secret"},
		},
		{
			name: "no auth at all (public endpoints)",
			auth: AuthConfig{},
		},
		{
			name:    "api key and session are mutually exclusive",
			auth:    AuthConfig{APIKey: "gr_key", Email: "dj@example.com", Password: "secret"},
			wantErr: true,
		},
		{
			name:    "email without password",
			auth:    AuthConfig{Email: "dj@example.com"},
			wantErr: true,
		},
		{
			name:    "password without email",
			auth:    AuthConfig{Password: "secret"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Auth = tt.auth

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateServer(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing URL",
			mutate:  func(c *Config) { c.Server.URL = "" },
			wantErr: true,
		},
		{
			name:    "non-positive timeout",
			mutate:  func(c *Config) { c.Server.Timeout = 0 },
			wantErr: true,
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("GRIMNIR_URL", "https://radio.example.com")
	t.Setenv("GRIMNIR_API_KEY", "gr_env-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.URL != "https://radio.example.com" {
		t.Errorf("server.url = %q, want env value", cfg.Server.URL)
	}
	if cfg.Auth.APIKey != "gr_env-key" {
		t.Errorf("auth.api_key = %q, want env value", cfg.Auth.APIKey)
	}
	if cfg.Server.Timeout != 30 {
		t.Errorf("server.timeout = %d, want default 30", cfg.Server.Timeout)
	}
}
