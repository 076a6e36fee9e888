package config

import (
	"os"
	"strconv"
)

// Helper ambil environment variable dengan fallback default
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func JWTSecret() string {
	return GetEnv("JWT_SECRET", "rahasia_sertifikasi")
}
