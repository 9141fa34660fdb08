package config

import (
	"fmt"
	"os"
	"strconv"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPass     string
	DBName     string
	Port       string
	BcryptCost int
}

func Load() Config {
	cfg := Config{
		DBHost:     getenv("DB_HOST", "127.0.0.1"),
		DBPort:     getenv("DB_PORT", "3306"),
		DBUser:     getenv("DB_USER", "root"),
		DBPass:     os.Getenv("DB_PASS"),
		DBName:     getenv("DB_NAME", "restaurant_order"),
		Port:       getenv("PORT", "8080"),
		BcryptCost: 10,
	}

	if v, err := strconv.Atoi(os.Getenv("BCRYPT_ROUNDS")); err == nil && v > 0 {
		cfg.BcryptCost = v
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the MySQL connection pool.
func InitDB(cfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}
