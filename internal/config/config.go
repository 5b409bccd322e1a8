package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database     DatabaseConfig
	JWT          JWTConfig
	App          AppConfig
	Attendance   AttendanceConfig
	OAuth2Google OAuth2GoogleConfig
}

type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port               int
	Env                string
	LogLevel           string
	Timezone           string
	FrontendURL        string
	CORSAllowedOrigins []string
	AllowManagerSignup bool
}

// AttendanceConfig holds the status classification policy.
type AttendanceConfig struct {
	LateCutoff   string
	HalfDayHours float64
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// Enabled reports whether Google sign-in is configured.
func (o OAuth2GoogleConfig) Enabled() bool {
	return o.ClientID != "" && o.ClientSecret != ""
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, reading configuration from environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Driver:     getEnv("DB_DRIVER", "postgres"),
		Host:       getEnv("DB_HOST", "localhost"),
		Port:       dbPort,
		User:       getEnv("DB_USER", "postgres"),
		Password:   getEnv("DB_PASSWORD", ""),
		Name:       getEnv("DB_NAME", "attendance"),
		SSLMode:    getEnv("DB_SSL_MODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "./data/attendance.db"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	allowManagerSignup, err := strconv.ParseBool(getEnv("AUTH_ALLOW_MANAGER_SIGNUP", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_ALLOW_MANAGER_SIGNUP: %w", err)
	}

	config.App = AppConfig{
		Port:               appPort,
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Timezone:           getEnv("APP_TIMEZONE", "UTC"),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3000"),
		CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
		AllowManagerSignup: allowManagerSignup,
	}
	if len(config.App.CORSAllowedOrigins) == 0 {
		config.App.CORSAllowedOrigins = []string{config.App.FrontendURL}
	}

	// Attendance policy
	halfDayHours, err := strconv.ParseFloat(getEnv("ATTENDANCE_HALF_DAY_HOURS", "4"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_HALF_DAY_HOURS: %w", err)
	}

	config.Attendance = AttendanceConfig{
		LateCutoff:   getEnv("ATTENDANCE_LATE_CUTOFF", "16:00:00"),
		HalfDayHours: halfDayHours,
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// OAuth2 Google Configuration
	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("CLIENT_ID", ""),
		ClientSecret: getEnv("CLIENT_SECRET", ""),
		RedirectURL:  getEnv("REDIRECT_URL", ""),
		Scopes:       getEnvSlice("SCOPES"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres":
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	case "sqlite":
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if _, err := time.ParseDuration(c.JWT.RefreshExpiration); err != nil {
		return fmt.Errorf("invalid JWT_REFRESH_EXPIRATION_TIME: %w", err)
	}

	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	if _, err := time.Parse("15:04:05", c.Attendance.LateCutoff); err != nil {
		return fmt.Errorf("invalid ATTENDANCE_LATE_CUTOFF: %w", err)
	}
	if c.Attendance.HalfDayHours <= 0 {
		return fmt.Errorf("ATTENDANCE_HALF_DAY_HOURS must be positive")
	}

	// Google sign-in is optional, but a half-configured client is a mistake.
	if c.OAuth2Google.Enabled() {
		if c.OAuth2Google.RedirectURL == "" {
			return fmt.Errorf("REDIRECT_URL is required")
		}
		if len(c.OAuth2Google.Scopes) == 0 {
			return fmt.Errorf("SCOPES is required")
		}
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Location returns the organizational timezone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LateCutoff returns the cutoff as an offset from midnight.
func (c *Config) LateCutoff() time.Duration {
	t, err := time.Parse("15:04:05", c.Attendance.LateCutoff)
	if err != nil {
		return 16 * time.Hour
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute + time.Duration(t.Second())*time.Second
}

// HalfDayThreshold returns the minimum worked duration for a full day.
func (c *Config) HalfDayThreshold() time.Duration {
	return time.Duration(c.Attendance.HalfDayHours * float64(time.Hour))
}

// SlogLevel maps LOG_LEVEL onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
