package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"studentportal/internal/metrics"
)

// App holds the runtime configuration.
type App struct {
	Env        string           `mapstructure:"env"`
	Locale     string           `mapstructure:"locale"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	Log        LogConfig        `mapstructure:"log"`
	Attendance AttendanceConfig `mapstructure:"attendance"`
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Port            int `mapstructure:"port"`
	RateLimitPerMin int `mapstructure:"rate_limit_per_min"`
}

// LogConfig selects zap's level and encoder.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AttendanceConfig holds the health band lower bounds, in percent.
type AttendanceConfig struct {
	GoodThreshold    int `mapstructure:"good_threshold"`
	WarningThreshold int `mapstructure:"warning_threshold"`
}

// Thresholds converts the config into the classifier used by metrics.
func (a AttendanceConfig) Thresholds() metrics.Thresholds {
	return metrics.Thresholds{Good: a.GoodThreshold, Warning: a.WarningThreshold}
}

// Production reports whether gin should run in release mode.
func (c App) Production() bool {
	return c.Env == "production" || c.Env == "prod"
}

// Load reads defaults, then the optional config file, then PORTAL_* env vars.
// An empty path searches ./config.yaml and ./config/config.yaml.
func Load(path string) (App, error) {
	v := viper.New()

	v.SetDefault("env", "dev")
	v.SetDefault("locale", string(metrics.DefaultLocale))
	v.SetDefault("http.port", 8081)
	v.SetDefault("http.rate_limit_per_min", 120)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("attendance.good_threshold", metrics.DefaultThresholds.Good)
	v.SetDefault("attendance.warning_threshold", metrics.DefaultThresholds.Warning)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("PORTAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return App{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg App
	if err := v.Unmarshal(&cfg); err != nil {
		return App{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return App{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c App) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("config: http.port must be within 1-65535, got %d", c.HTTP.Port)
	}
	if c.HTTP.RateLimitPerMin < 0 {
		return fmt.Errorf("config: http.rate_limit_per_min must not be negative")
	}
	a := c.Attendance
	if a.GoodThreshold < 0 || a.GoodThreshold > 100 || a.WarningThreshold < 0 || a.WarningThreshold > 100 {
		return fmt.Errorf("config: attendance thresholds must be within 0-100")
	}
	if a.WarningThreshold >= a.GoodThreshold {
		return fmt.Errorf("config: attendance.warning_threshold (%d) must be below attendance.good_threshold (%d)",
			a.WarningThreshold, a.GoodThreshold)
	}
	if _, err := metrics.ParseLocale(c.Locale); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
