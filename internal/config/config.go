package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string
	Storage  StorageConfig
	Database DatabaseConfig
	Backup   BackupConfig
	SeedDemo bool
}

type StorageConfig struct {
	// Driver: postgres, sqlite или memory.
	Driver     string
	SQLitePath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type BackupConfig struct {
	Enabled bool
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		Storage: StorageConfig{
			Driver:     getEnv("STORAGE_DRIVER", "postgres"),
			SQLitePath: getEnv("SQLITE_PATH", "team-calendar.db"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "calendar"),
			Password: getEnv("DB_PASSWORD", "calendar"),
			DBName:   getEnv("DB_NAME", "team_calendar"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Backup: BackupConfig{
			Enabled: getEnv("BACKUP_ENABLED", "true") == "true",
		},
		SeedDemo: getEnv("SEED_DEMO", "true") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
