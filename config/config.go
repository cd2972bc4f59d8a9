package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSOrigins       string `mapstructure:"CORS_ORIGINS"`

	// MongoDB (optional plan archive). Empty disables archiving.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis configuration (exchange-rate cache). Empty addr disables Redis.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Generation backend: "gemini", "openai" or "mock".
	PlannerBackend string `mapstructure:"PLANNER_BACKEND"`
	PlannerModel   string `mapstructure:"PLANNER_MODEL"`
	GeminiAPIKey   string `mapstructure:"GEMINI_API_KEY"`
	OpenAIAPIKey   string `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL  string `mapstructure:"OPENAI_BASE_URL"`

	// Data provider keys.
	GeoapifyAPIKey string `mapstructure:"GEOAPIFY_API_KEY"`
	TequilaAPIKey  string `mapstructure:"TEQUILA_API_KEY"`
	FlightCurrency string `mapstructure:"FLIGHT_CURRENCY"`

	// Cache TTLs in seconds.
	GeoCacheTTL   int `mapstructure:"GEO_CACHE_TTL"`
	QuoteCacheTTL int `mapstructure:"QUOTE_CACHE_TTL"`
	RateCacheTTL  int `mapstructure:"RATE_CACHE_TTL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5000")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("PLANNER_BACKEND", "gemini")
	viper.SetDefault("PLANNER_MODEL", "")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_BASE_URL", "")
	viper.SetDefault("GEOAPIFY_API_KEY", "")
	viper.SetDefault("TEQUILA_API_KEY", "")
	viper.SetDefault("FLIGHT_CURRENCY", "USD")
	viper.SetDefault("GEO_CACHE_TTL", 3600)
	viper.SetDefault("QUOTE_CACHE_TTL", 21600)
	viper.SetDefault("RATE_CACHE_TTL", 3600)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// CORSOriginList splits the configured CORS origins into a slice.
func CORSOriginList() []string {
	parts := strings.Split(AppConfig.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
