package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Database:   DatabaseConfig{Driver: "sqlite", SQLitePath: "./test.db"},
		JWT:        JWTConfig{Secret: "secret", AccessExpiration: "1h", RefreshExpiration: "24h"},
		App:        AppConfig{Timezone: "UTC", LogLevel: "info"},
		Attendance: AttendanceConfig{LateCutoff: "16:00:00", HalfDayHours: 4},
	}
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	cfg := validConfig()
	cfg.Database.Driver = "postgres"
	assert.EqualError(t, cfg.Validate(), "DB_PASSWORD is required")

	cfg = validConfig()
	cfg.Database.Driver = "mysql"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.JWT.Secret = ""
	assert.EqualError(t, cfg.Validate(), "JWT_SECRET_KEY is required")

	cfg = validConfig()
	cfg.Attendance.LateCutoff = "4pm"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.App.Timezone = "Mars/Olympus"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.OAuth2Google = OAuth2GoogleConfig{ClientID: "id", ClientSecret: "secret"}
	assert.EqualError(t, cfg.Validate(), "REDIRECT_URL is required")
}

func TestConfig_PolicyAccessors(t *testing.T) {
	cfg := validConfig()
	cfg.Attendance.LateCutoff = "09:30:15"
	cfg.Attendance.HalfDayHours = 4.5

	assert.Equal(t, 9*time.Hour+30*time.Minute+15*time.Second, cfg.LateCutoff())
	assert.Equal(t, 4*time.Hour+30*time.Minute, cfg.HalfDayThreshold())
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestConfig_SlogLevel(t *testing.T) {
	cfg := validConfig()
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}
	for in, want := range cases {
		cfg.App.LogLevel = in
		assert.Equal(t, want, cfg.SlogLevel(), in)
	}
}

func TestGetEnvSlice(t *testing.T) {
	t.Setenv("TEST_ORIGINS", "http://a.test, http://b.test,,")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, getEnvSlice("TEST_ORIGINS"))
	assert.Empty(t, getEnvSlice("TEST_ORIGINS_UNSET"))
}

func TestLoad_AllowManagerSignup(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("JWT_SECRET_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.App.AllowManagerSignup)

	t.Setenv("AUTH_ALLOW_MANAGER_SIGNUP", "true")
	cfg, err = Load()
	require.NoError(t, err)
	assert.True(t, cfg.App.AllowManagerSignup)

	t.Setenv("AUTH_ALLOW_MANAGER_SIGNUP", "maybe")
	_, err = Load()
	assert.Error(t, err)
}
