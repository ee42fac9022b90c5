package util

import "os"

// GetEnvironmentVariable returns the value of key or fallback when it is unset or empty
func GetEnvironmentVariable(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
