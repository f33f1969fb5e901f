package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config carries everything the server needs from the environment.
type Config struct {
	Port            string
	DataDir         string
	Storage         string // "file" or "sqlite"
	SQLitePath      string
	PrivateKeyPath  string
	PublicKeyPath   string
	CORSOrigin      string
	TokenTTLSeconds int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment as-is")
	}

	return &Config{
		Port:            getEnv("PORT", "3000"),
		DataDir:         getEnv("DATA_DIR", "./data"),
		Storage:         getEnv("STORAGE", "file"),
		SQLitePath:      getEnv("SQLITE_PATH", "./data/mealmaster.db"),
		PrivateKeyPath:  getEnv("JWT_PRIVATE_KEY", "./keys/private.pem"),
		PublicKeyPath:   getEnv("JWT_PUBLIC_KEY", "./keys/public.pem"),
		CORSOrigin:      getEnv("CORS_ORIGIN", "http://localhost:4200"),
		TokenTTLSeconds: getEnvInt("TOKEN_TTL_SECONDS", 1200),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid integer in environment, using default")
		return fallback
	}
	return n
}
