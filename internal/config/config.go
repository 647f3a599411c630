package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"
)

type Config struct {
	ServerPort int
	LogLevel   string

	// StoreBackend selects the persistence layer: postgres, sqlite or
	// memory. DatabaseURL is the postgres DSN; SQLitePath the sqlite
	// file.
	StoreBackend string
	DatabaseURL  string
	SQLitePath   string

	JWTSecret []byte

	KafkaBrokers []string

	ESURL      string
	ESUser     string
	ESPassword string
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("notice: .env not found, using system environment: %v", err)
	}

	cfg := &Config{
		ServerPort:   EnvIntDefault("SERVER_PORT", 5000),
		LogLevel:     EnvDefault("LOG_LEVEL", "info"),
		StoreBackend: EnvDefault("STORE_BACKEND", BackendSQLite),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		SQLitePath:   EnvDefault("SQLITE_PATH", "trendyfy.db"),
		JWTSecret:    []byte(EnvDefault("JWT_SECRET", "trendyfy-secret-key-change-in-production")),
		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),
		ESURL:        os.Getenv("ES_URL"),
		ESUser:       os.Getenv("ES_USER"),
		ESPassword:   os.Getenv("ES_PASSWORD"),
	}

	if cfg.StoreBackend == BackendPostgres {
		MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	}

	return cfg
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("missing required env %s", envName)
	}
}
