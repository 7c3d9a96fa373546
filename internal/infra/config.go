package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	Port             string
	DatabaseURL      string
	AutoMigrate      bool
	DBMaxConns       int
	AllowedOrigins   []string
	RecentNamesLimit int
	WeatherBaseURL   string
	WeatherCity      string
	WeatherLatitude  float64
	WeatherLongitude float64
	WeatherTimeout   time.Duration
	GeoIPDBPath      string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	RateLimitPerMin  int
	NameSourceSeed   uint64
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "4000"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		AutoMigrate:      getEnvBool("AUTO_MIGRATE", true),
		DBMaxConns:       getEnvInt("DB_MAX_CONNS", 10),
		AllowedOrigins:   splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		RecentNamesLimit: getEnvInt("RECENT_NAMES_LIMIT", 10),
		WeatherBaseURL:   getEnv("WEATHER_BASE_URL", "https://api.open-meteo.com/v1"),
		WeatherCity:      getEnv("WEATHER_CITY", "Copenhagen"),
		WeatherLatitude:  getEnvFloat("WEATHER_LATITUDE", 55.6761),
		WeatherLongitude: getEnvFloat("WEATHER_LONGITUDE", 12.5683),
		WeatherTimeout:   time.Second * time.Duration(getEnvInt("WEATHER_TIMEOUT_SECONDS", 10)),
		GeoIPDBPath:      os.Getenv("GEOIP_DB_PATH"),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.RecentNamesLimit <= 0 {
		return nil, fmt.Errorf("RECENT_NAMES_LIMIT must be positive, got %d", cfg.RecentNamesLimit)
	}
	seed := getEnvInt("NAME_SOURCE_SEED", 0)
	if seed < 0 {
		return nil, fmt.Errorf("NAME_SOURCE_SEED must not be negative, got %d", seed)
	}
	cfg.NameSourceSeed = uint64(seed)

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
