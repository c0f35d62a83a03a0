package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"ENV", "SERVER_HTTP_PORT", "SERVER_GRPC_PORT", "SERVER_READ_TIMEOUT",
		"SERVER_WRITE_TIMEOUT", "SERVER_IDLE_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT",
		"LOG_LEVEL", "LOG_MODE", "LOG_ENCODING", "DATETIME_LOCALE",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 50057, cfg.Server.GRpcPort)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, language.English, cfg.DateTime.LocaleTag())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_HTTP_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "2s")
	t.Setenv("SERVER_IDLE_TIMEOUT", "not-a-duration")
	t.Setenv("DATETIME_LOCALE", "de-AT")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, language.MustParse("de-AT"), cfg.DateTime.LocaleTag())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{
				HTTPPort:        8080,
				GRpcPort:        50057,
				ReadTimeout:     time.Second,
				WriteTimeout:    time.Second,
				IdleTimeout:     time.Second,
				ShutdownTimeout: time.Second,
			},
			DateTime: DateTimeConfig{Locale: "fr"},
		}
	}
	require.NoError(t, valid().Validate())

	for name, mutate := range map[string]func(*Config){
		"http port":    func(c *Config) { c.Server.HTTPPort = 0 },
		"grpc port":    func(c *Config) { c.Server.GRpcPort = 70000 },
		"shared port":  func(c *Config) { c.Server.GRpcPort = c.Server.HTTPPort },
		"read timeout": func(c *Config) { c.Server.ReadTimeout = 0 },
		"shutdown":     func(c *Config) { c.Server.ShutdownTimeout = -time.Second },
		"locale":       func(c *Config) { c.DateTime.Locale = "not a locale!" },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
