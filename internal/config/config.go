package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Firebase token verification
	FirebaseProjectID string

	// Payments
	StripeSecretKey string

	// Break-glass admin override (bcrypt hash of the token, empty disables it)
	AdminTokenHash string

	// Uploads
	S3UploadBucket string
	AWSRegion      string

	// Server
	Port        string
	CORSOrigins string

	// Logging
	LogLevel         string
	LogRetentionDays int
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "bloodlink_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		FirebaseProjectID: getEnv("FIREBASE_PROJECT_ID", ""),

		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),

		AdminTokenHash: getEnv("ADMIN_TOKEN_HASH", ""),

		S3UploadBucket: getEnv("S3_UPLOAD_BUCKET", "bloodlink-uploads"),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),

		Port:        getEnv("PORT", "5000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogRetentionDays: getEnvInt("LOG_RETENTION_DAYS", 30),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
