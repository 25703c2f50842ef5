package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yuichi-nagakura/diet-app-prototype/storage"
)

type Config struct {
	Addr string
	// DatabaseDSN is empty when no DB_HOST is configured; the app then runs
	// on the in-memory store.
	DatabaseDSN string
}

// Load reads .env (if present) and the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment as is")
	}

	cfg := Config{Addr: ":8080"}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.DatabaseDSN = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			host,
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
	}
	return cfg
}

// NewStore builds the persistence collaborator: Postgres-backed when a DSN
// is configured, in-memory otherwise. The store handle is passed to every
// service constructor; there is no package-global database.
func NewStore(cfg Config) (storage.Store, error) {
	if cfg.DatabaseDSN == "" {
		log.Println("DB_HOST not set, state is kept in memory only")
		return storage.NewMemory(), nil
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := storage.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return storage.NewGorm(db), nil
}
