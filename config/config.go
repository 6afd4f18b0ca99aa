package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultOutputWidth  = 1024
	defaultOutputHeight = 1024
	defaultItemCount    = 1
)

// Config carries the environment-backed settings for the picker demo
type Config struct {
	// cost estimator endpoint; empty disables estimation entirely
	EstimatorURL string

	// output dimensions sent with every estimate request
	OutputWidth  int
	OutputHeight int

	// number of source images in the batch being edited
	ItemCount int
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

// Load reads configuration from the environment, with an optional .env
// file overlay. A missing .env file is not an error
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	return Config{
		EstimatorURL: getEnvOrDefault("ESTIMATOR_URL", ""),
		OutputWidth:  getEnvIntOrDefault("OUTPUT_WIDTH", defaultOutputWidth),
		OutputHeight: getEnvIntOrDefault("OUTPUT_HEIGHT", defaultOutputHeight),
		ItemCount:    getEnvIntOrDefault("ITEM_COUNT", defaultItemCount),
	}
}
