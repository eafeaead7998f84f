package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port        string
	BindAddress string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	RedisHost   string
	RedisPort   string
	Debug       bool
}

func Load() *Config {
	// Best effort; deployments without a .env file use the environment as-is.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		BindAddress: getEnv("BIND_ADDRESS", "localhost"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "qaforum"),
		DBPassword:  getEnv("DB_PASSWORD", "qaforum123"),
		DBName:      getEnv("DB_NAME", "qaforum"),
		RedisHost:   getEnv("REDIS_HOST", ""),
		RedisPort:   getEnv("REDIS_PORT", "6379"),
		Debug:       getEnv("DEBUG", "") != "",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// InitRedis returns nil when no Redis host is configured; the question list
// cache is simply disabled in that case.
func InitRedis(cfg *Config) *redis.Client {
	if cfg.RedisHost == "" {
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
	})
}
