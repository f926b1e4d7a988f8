package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	JWT    JWTConfig
	Gemini GeminiConfig
	Store  StoreConfig
	Auth   AuthConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// GeminiConfig holds the external CID lookup credential
type GeminiConfig struct {
	APIKey string
	Model  string
}

// StoreConfig points at the durable data file and the roster reference file
type StoreConfig struct {
	DataFile   string
	RosterFile string
}

// AuthConfig holds the shared operator credential (bcrypt hash)
type AuthConfig struct {
	OperatorPasswordHash string
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	config.Gemini = GeminiConfig{
		APIKey: getEnv("GEMINI_API_KEY", ""),
		Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
	}

	config.Store = StoreConfig{
		DataFile:   getEnv("DATA_FILE", "atestados_registrados.csv"),
		RosterFile: getEnv("COLABORADORES_FILE", "colaboradores.xlsx"),
	}

	config.Auth = AuthConfig{
		OperatorPasswordHash: getEnv("OPERATOR_PASSWORD_HASH", ""),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration. A missing Gemini credential is fatal
// for the whole system: without it every Atestado record would be saved with
// a degraded description.
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Auth.OperatorPasswordHash == "" {
		return fmt.Errorf("OPERATOR_PASSWORD_HASH is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
