// Package config handles configuration loading for the catalog service.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the catalog service.
type Config struct {
	MongoURI       string
	MongoDB        string
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	SessionTTL     time.Duration
	AllowedOrigins []string
	Port           string
	Environment    string
}

// Load reads configuration from environment variables, with defaults suited
// to local development.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "catalog")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("SESSION_TTL", "60s")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("PORT", "3000")
	v.SetDefault("ENVIRONMENT", "development")

	return &Config{
		MongoURI:       v.GetString("MONGO_URI"),
		MongoDB:        v.GetString("MONGO_DB"),
		RedisHost:      v.GetString("REDIS_HOST"),
		RedisPort:      v.GetString("REDIS_PORT"),
		RedisPassword:  v.GetString("REDIS_PASSWORD"),
		SessionTTL:     parseDuration(v.GetString("SESSION_TTL"), time.Minute),
		AllowedOrigins: splitOrigins(v.GetString("ALLOWED_ORIGINS")),
		Port:           v.GetString("PORT"),
		Environment:    v.GetString("ENVIRONMENT"),
	}
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func splitOrigins(value string) []string {
	var origins []string
	for _, origin := range strings.Split(value, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
