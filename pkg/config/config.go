package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server Server
	Remote Database // identity-keyed remote store
	Cache  Cache    // embedded local cache
	Auth   Auth
}

type Server struct {
	Host string
	Port string
	Env  string
}

type Database struct {
	Type string // "sqlite" or "postgres"
	DSN  string
}

type Cache struct {
	Path string // sqlite file path for the local cache
}

type Auth struct {
	JWTSecret     string
	TokenTTLHours int
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dbType := getEnv("DB_TYPE", "sqlite") // SQLite keeps development self-contained
	dsn := buildDSN(dbType)

	return &Config{
		Server: Server{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Remote: Database{
			Type: dbType,
			DSN:  dsn,
		},
		Cache: Cache{
			Path: getEnv("CACHE_PATH", "./data/scripture_cache.db"),
		},
		Auth: Auth{
			JWTSecret:     getEnv("JWT_SECRET", "change-me-in-prod"),
			TokenTTLHours: 72,
		},
	}, nil
}

func buildDSN(dbType string) string {
	if dbType == "postgres" {
		dbHost := getEnv("DB_HOST", "localhost")
		dbPort := getEnv("DB_PORT", "5432")
		dbUser := getEnv("DB_USER", "postgres")
		dbPassword := getEnv("DB_PASSWORD", "postgres")
		dbName := getEnv("DB_NAME", "scripture_memory")
		sslMode := getEnv("DB_SSLMODE", "disable")

		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			dbHost, dbPort, dbUser, dbPassword, dbName, sslMode,
		)
	}

	// SQLite (default for development)
	dbPath := getEnv("SQLITE_PATH", "./data/scripture_memory.db")
	return dbPath + "?mode=rwc&cache=shared&timeout=5000"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
