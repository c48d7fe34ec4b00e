package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port              string
	LogLevel          string
	LogPretty         bool
	DefaultPeriodDays int
	ChartWidth        int
	ChartHeight       int
	ShutdownTimeout   time.Duration
}

// Load читает конфигурацию из переменных окружения
func Load() *Config {
	viper.AutomaticEnv()

	viper.SetDefault("LOG_PRETTY", false)
	viper.SetDefault("DEFAULT_PERIOD_DAYS", 7)
	viper.SetDefault("CHART_WIDTH", 640)
	viper.SetDefault("CHART_HEIGHT", 360)
	viper.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogPretty:         viper.GetBool("LOG_PRETTY"),
		DefaultPeriodDays: viper.GetInt("DEFAULT_PERIOD_DAYS"),
		ChartWidth:        viper.GetInt("CHART_WIDTH"),
		ChartHeight:       viper.GetInt("CHART_HEIGHT"),
		ShutdownTimeout:   viper.GetDuration("SHUTDOWN_TIMEOUT"),
	}

	// Некорректные значения заменяем дефолтами
	if cfg.DefaultPeriodDays <= 0 {
		cfg.DefaultPeriodDays = 7
	}
	if cfg.ChartWidth <= 0 {
		cfg.ChartWidth = 640
	}
	if cfg.ChartHeight <= 0 {
		cfg.ChartHeight = 360
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := viper.GetString(key); value != "" {
		return value
	}
	return defaultValue
}
