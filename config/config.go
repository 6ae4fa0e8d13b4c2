package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server Server
	Logger Logger
	SQLite SQLite
	Admin  Admin
	Cart   Cart
}

type Server struct {
	AppEnv         string
	StorefrontAddr string
	AdminAddr      string
	SessionSecret  string
}

type Logger struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type SQLite struct {
	Path         string
	BusyTimeout  int
	MaxOpenConns int
}

type Admin struct {
	Username     string
	Password     string
	PasswordHash string
}

type Cart struct {
	FreeShippingThreshold float64
	ShippingFee           float64
}

func LoadEnv() *Config {
	return &Config{
		Server: Server{
			AppEnv:         getEnv("APP_ENV", "dev"),
			StorefrontAddr: getEnv("STOREFRONT_ADDR", ":5000"),
			AdminAddr:      getEnv("ADMIN_ADDR", ":5001"),
			SessionSecret:  getEnv("SESSION_SECRET", "change-me-in-production"),
		},
		Logger: Logger{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		SQLite: SQLite{
			Path:         getEnv("SQLITE_PATH", "food_ordering.db"),
			BusyTimeout:  getEnvInt("SQLITE_BUSY_TIMEOUT_MS", 5000),
			MaxOpenConns: getEnvInt("SQLITE_MAX_OPEN_CONNS", 1),
		},
		Admin: Admin{
			Username:     getEnv("ADMIN_USERNAME", "admin"),
			Password:     getEnv("ADMIN_PASSWORD", "admin123"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Cart: Cart{
			FreeShippingThreshold: getEnvFloat("CART_FREE_SHIPPING_THRESHOLD", 100000),
			ShippingFee:           getEnvFloat("CART_SHIPPING_FEE", 20000),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
