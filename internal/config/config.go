package config

import (
	"log"
	"os"
)

type Config struct {
	DBPath       string
	Port         string
	RedisAddr    string
	AdminAccount string
	BaseToken    string
	USDTToken    string
}

func Load() *Config {
	cfg := &Config{
		DBPath:       getEnv("DB_PATH", "db.sqlite"),
		Port:         getEnv("PORT", "8080"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		AdminAccount: os.Getenv("ADMIN_ACCOUNT"),
		BaseToken:    getEnv("BASE_TOKEN_REF", "base-token"),
		USDTToken:    getEnv("USDT_TOKEN_REF", "usdt-token"),
	}

	if os.Getenv("API_KEY") == "" || os.Getenv("ADMIN_TOKEN") == "" || cfg.AdminAccount == "" {
		log.Fatal("Missing critical environment variables")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
