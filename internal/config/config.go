package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration
type Config struct {
	Port          string
	DBPath        string
	JWTSecret     string
	LeadSeed      int64 // Seed for the synthetic lead generator
	LeadBatchSize int   // Leads per generated batch
}

// Load reads configuration from the environment, with development defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/leads.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	seed := int64(1)
	if v := os.Getenv("LEAD_SEED"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			seed = parsed
		}
	}

	batchSize := 200
	if v := os.Getenv("LEAD_BATCH_SIZE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			batchSize = parsed
		}
	}

	return &Config{
		Port:          port,
		DBPath:        dbPath,
		JWTSecret:     jwtSecret,
		LeadSeed:      seed,
		LeadBatchSize: batchSize,
	}
}
