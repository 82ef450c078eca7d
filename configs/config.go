package configs

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver    string
	DBSource    string
	Port        string
	GinMode     string
	JWTSecret   string
	JWTTTL      time.Duration
	CORSOrigins []string

	AdminUsername string
	AdminPassword string

	RazorpayKeySecret string

	RabbitMQURL   string
	OrderExchange string

	LogLevel  string
	LogFormat string
}

// LoadConfig reads the environment once at startup. A missing .env is fine.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	return &Config{
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DBSource:    getEnvFromFile("DB_SOURCE_FILE", "DB_SOURCE", "tiffin.db"),
		Port:        getEnv("PORT", "5000"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		JWTSecret:   getEnvFromFile("JWT_SECRET_FILE", "JWT_SECRET", "changeme"),
		JWTTTL:      getDuration("JWT_TTL", 7*24*time.Hour),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")),

		AdminUsername: getEnv("ADMIN_USERNAME", ""),
		AdminPassword: getEnvFromFile("ADMIN_PASSWORD_FILE", "ADMIN_PASSWORD", ""),

		RazorpayKeySecret: getEnvFromFile("RAZORPAY_KEY_SECRET_FILE", "RAZORPAY_KEY_SECRET", ""),

		RabbitMQURL:   getEnv("RABBITMQ_URL", ""),
		OrderExchange: getEnv("ORDER_EXCHANGE", "tiffin_orders"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// getEnvFromFile prefers a mounted secret file (docker/k8s secrets) over the plain variable.
func getEnvFromFile(fileKey, envKey, fallback string) string {
	if path := os.Getenv(fileKey); path != "" {
		if content, err := os.ReadFile(path); err == nil {
			return strings.TrimSpace(string(content))
		}
	}
	return getEnv(envKey, fallback)
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func splitList(v string) []string {
	out := make([]string, 0)
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
