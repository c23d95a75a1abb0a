package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	MongoURI     string
	DatabaseName string
	JWTSecret    string
	CorsOrigin   string
	LogFile      string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		fmt.Println("no .env file found, reading configuration from environment")
	}
	return &Config{
		Port:         getEnv("PORT", "8080"),
		MongoURI:     getEnv("MONGO_DB_URI", "mongodb://localhost:27017"),
		DatabaseName: getEnv("DB_NAME", "sample_airbnb"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		CorsOrigin:   getEnv("CORS_ORIGIN", "http://localhost:3000"),
		LogFile:      os.Getenv("LOG_FILE"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
