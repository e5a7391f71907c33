package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// GeneralConfig holds process-wide settings.
type GeneralConfig struct {
	Env      string
	LogLevel string
	Port     int
	// Storage selects the campaign store: "memory" (seeded demo data)
	// or "postgres".
	Storage string
	// DemoSeeding pre-populates demo content submissions on new talent
	// rosters. Only meaningful with the memory store. Defaults to on in
	// dev and off everywhere else.
	DemoSeeding bool
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
	MigrationsDir   string
}

type appConfig struct {
	GeneralConfig  GeneralConfig
	DatabaseConfig DatabaseConfig
}

// AppConfigInstance is the loaded application configuration.
var AppConfigInstance appConfig

// LoadConfigs loads the configurations from the environment variables
func LoadConfigs() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env files: %v", err)
	}

	loadGeneralConfigs()
	loadDatabaseConfigs()
}

// loadGeneralConfigs loads the general configurations from the environment variables
func loadGeneralConfigs() {
	AppConfigInstance.GeneralConfig.Env = getEnv("APP_ENV", "dev")
	AppConfigInstance.GeneralConfig.LogLevel = getEnv("LOG_LEVEL", "info")
	AppConfigInstance.GeneralConfig.Port = getEnvInt("PORT", 8080)
	AppConfigInstance.GeneralConfig.Storage = getEnv("STORAGE", "memory")
	AppConfigInstance.GeneralConfig.DemoSeeding = getEnvBool("DEMO_SEEDING", AppConfigInstance.GeneralConfig.Env == "dev")
}

// loadDatabaseConfigs loads the PostgreSQL configurations from the environment variables
func loadDatabaseConfigs() {
	AppConfigInstance.DatabaseConfig.Host = getEnv("DB_HOST", "localhost")
	AppConfigInstance.DatabaseConfig.Port = getEnvInt("DB_PORT", 5432)
	AppConfigInstance.DatabaseConfig.User = getEnv("DB_USER", "brandportal")
	AppConfigInstance.DatabaseConfig.Password = getEnv("DB_PASSWORD", "")
	AppConfigInstance.DatabaseConfig.DBName = getEnv("DB_NAME", "brandportal")
	AppConfigInstance.DatabaseConfig.SSLMode = getEnv("DB_SSLMODE", "disable")
	AppConfigInstance.DatabaseConfig.MaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 25)
	AppConfigInstance.DatabaseConfig.MaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 5)
	AppConfigInstance.DatabaseConfig.ConnMaxLifetime = getEnvInt("DB_CONN_MAX_LIFETIME", 30)
	AppConfigInstance.DatabaseConfig.ConnMaxIdleTime = getEnvInt("DB_CONN_MAX_IDLE_TIME", 5)
	AppConfigInstance.DatabaseConfig.MigrationsDir = getEnv("DB_MIGRATIONS_DIR", "migrations")
}

// getEnv returns the environment variable value if it exists, otherwise returns the fallback value
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns the environment variable value as int if it exists, otherwise returns the fallback value
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns the environment variable value as bool if it exists, otherwise returns the fallback value
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
