package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppURI         string
	AllowedOrigins string

	MongoURI string
	MongoDB  string

	JWTSecret  []byte
	JWTTTL     time.Duration
	BcryptCost int

	RedisURI        string
	RateLimit       int
	RateLimitWindow time.Duration
}

// Load อ่านค่าจาก .env (ถ้ามี) แล้วตามด้วย environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found, relying on environment variables")
	}

	cfg := &Config{
		AppURI:          getEnv("APP_URI", "8888"),
		AllowedOrigins:  getEnv("ALLOWED_ORIGINS", "*"),
		MongoURI:        getEnv("MONGO_URI", ""),
		MongoDB:         getEnv("MONGO_DB", "courses"),
		JWTSecret:       []byte(getEnv("JWT_SECRET", "")),
		JWTTTL:          getEnvAsDuration("JWT_TTL", time.Hour),
		BcryptCost:      getEnvAsInt("BCRYPT_COST", 10),
		RedisURI:        getEnv("REDIS_URI", ""),
		RateLimit:       getEnvAsInt("RATE_LIMIT", 20),
		RateLimitWindow: getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI environment variable not set")
	}
	if len(cfg.JWTSecret) == 0 {
		return nil, errors.New("JWT_SECRET environment variable not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil && value > 0 {
		return value
	}
	return fallback
}
