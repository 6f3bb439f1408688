package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string // empty means the cloud store is not configured
	LocalStorePath         string
	UserID                 string
	RateLimit              int
	RedisAddr              string // empty means no redis, in-memory rate limiting
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", ""),
		LocalStorePath:         getEnv("LOCAL_STORE_PATH", "taskflow.json"),
		UserID:                 getEnv("TASK_USER_ID", ""),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		RedisAddr:              redisAddr(),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

// RemoteConfigured reports whether the cloud store should be the
// authoritative backend.
func (c Config) RemoteConfigured() bool {
	return c.DatabaseDSN != ""
}

func redisAddr() string {
	host := getEnv("REDIS_HOST", "")
	if host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", host, getEnv("REDIS_PORT", "6379"))
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.DatabaseDSN == "" && cfg.LocalStorePath == "" {
		log.Fatal("LOCAL_STORE_PATH must not be empty when DATABASE_DSN is unset")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		log.Fatal("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}
