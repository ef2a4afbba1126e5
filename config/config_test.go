package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected bool
	}{
		{
			name: "development environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "development"},
			},
			expected: true,
		},
		{
			name: "debug gin mode",
			config: &Config{
				Server: ServerConfig{GinMode: "debug"},
			},
			expected: true,
		},
		{
			name: "production environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "production"},
			},
			expected: false,
		},
		{
			name: "release mode",
			config: &Config{
				Server: ServerConfig{GinMode: "release", AppEnv: "production"},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.IsDevelopment()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_CORSOrigins(t *testing.T) {
	origins := make([]string, 1, 4)
	origins[0] = "https://forms.example.com"
	cfg := &Config{Server: ServerConfig{AppEnv: "development", AllowedOrigins: origins}}

	got := cfg.CORSOrigins()
	assert.Equal(t, []string{"https://forms.example.com", "http://localhost:8080", "http://127.0.0.1:8080"}, got)

	// spare capacity in the configured slice is never written to
	got[0] = "changed"
	assert.Equal(t, []string{"https://forms.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, []string{"https://forms.example.com"}, origins[:1])
	assert.Empty(t, origins[1:2][0])

	cfg.Server.AppEnv = "production"
	assert.Equal(t, []string{"https://forms.example.com"}, cfg.CORSOrigins())
}

func TestConfig_IsProduction(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected bool
	}{
		{
			name: "production environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "production"},
			},
			expected: true,
		},
		{
			name: "development environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "development"},
			},
			expected: false,
		},
		{
			name: "staging environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "staging"},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.IsProduction()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			BaseURL:        "http://localhost:8080",
			AllowedOrigins: []string{"http://localhost:8080"},
		},
		Pictures: PicturesConfig{
			MaxBytes:          1024,
			PreviewTTLSeconds: 60,
		},
		RateLimit: RateLimitConfig{
			SubmitPerSecond: 1,
			SubmitBurst:     5,
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Config)
		errorMsg string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:     "missing port",
			mutate:   func(c *Config) { c.Server.Port = "" },
			errorMsg: "PORT is required",
		},
		{
			name:     "missing CORS origins",
			mutate:   func(c *Config) { c.Server.AllowedOrigins = nil },
			errorMsg: "ALLOWED_CORS_ORIGINS is required",
		},
		{
			name:     "zero picture limit",
			mutate:   func(c *Config) { c.Pictures.MaxBytes = 0 },
			errorMsg: "PICTURE_MAX_BYTES must be positive",
		},
		{
			name:     "zero preview TTL",
			mutate:   func(c *Config) { c.Pictures.PreviewTTLSeconds = 0 },
			errorMsg: "PREVIEW_TTL_SECONDS must be positive",
		},
		{
			name:     "zero burst",
			mutate:   func(c *Config) { c.RateLimit.SubmitBurst = 0 },
			errorMsg: "SUBMIT_BURST must be positive",
		},
		{
			name: "profiling without endpoint",
			mutate: func(c *Config) {
				c.Profiling.Enabled = true
			},
			errorMsg: "O11Y_PROFILING_ENDPOINT is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.errorMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	// No .env file in a fresh directory
	chdir(t, t.TempDir())

	cfg, err := Load()

	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, "production", cfg.Server.AppEnv)
	assert.Equal(t, []string{"http://localhost:8080"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "/app/logs", cfg.Logging.Dir)
	assert.Equal(t, int64(5<<20), cfg.Pictures.MaxBytes)
	assert.Equal(t, time.Hour, cfg.Pictures.PreviewTTL())
	assert.Empty(t, cfg.Observability.ExporterEndpoint)
	assert.False(t, cfg.Profiling.Enabled)
}

func TestLoad_WithEnvironmentVariables(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("PORT", "9000")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("APP_ENV", "development")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ALLOWED_CORS_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("PICTURE_MAX_BYTES", "2048")
	t.Setenv("PREVIEW_TTL_SECONDS", "90")
	t.Setenv("SUBMIT_RATE_PER_SEC", "0.5")
	t.Setenv("SUBMIT_BURST", "3")
	t.Setenv("O11Y_EXPORTER_ENDPOINT", "alloy:4318")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.GinMode)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, int64(2048), cfg.Pictures.MaxBytes)
	assert.Equal(t, 90*time.Second, cfg.Pictures.PreviewTTL())
	assert.Equal(t, 0.5, cfg.RateLimit.SubmitPerSecond)
	assert.Equal(t, 3, cfg.RateLimit.SubmitBurst)
	assert.Equal(t, "alloy:4318", cfg.Observability.ExporterEndpoint)
}

func TestLoad_ValidationFailure(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PICTURE_MAX_BYTES", "0")

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
