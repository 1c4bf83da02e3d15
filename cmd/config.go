package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config carries everything the application needs at startup.
type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	JWTSecret           string
	TokenTTL            time.Duration
	MaintenanceSchedule string
}

// LoadConfig builds the configuration from, in increasing precedence:
// built-in defaults, a .env file, environment variables, and command-line
// flags. A missing .env file is not an error.
func LoadConfig(args []string) (Config, error) {
	_ = godotenv.Load(".env")

	flags := pflag.NewFlagSet("logistrans", pflag.ContinueOnError)

	httpPort := flags.String("http-port", envOr("HTTP_PORT", "8080"), "HTTP listen port")
	dbHost := flags.String("db-host", envOr("DB_HOST", "localhost"), "PostgreSQL host")
	dbPort := flags.String("db-port", envOr("DB_PORT", "5432"), "PostgreSQL port")
	dbUser := flags.String("db-user", envOr("DB_USER", "postgres"), "PostgreSQL user")
	dbPassword := flags.String("db-password", envOr("DB_PASSWORD", ""), "PostgreSQL password")
	dbName := flags.String("db-name", envOr("DB_NAME", "logistrans"), "PostgreSQL database")
	dbSslMode := flags.String("db-sslmode", envOr("DB_SSLMODE", "disable"), "PostgreSQL SSL mode")
	jwtSecret := flags.String("jwt-secret", envOr("JWT_SECRET", ""), "JWT signing secret")
	tokenTTL := flags.Duration("token-ttl", 24*time.Hour, "issued token lifetime")
	maintenanceSchedule := flags.String("maintenance-schedule",
		envOr("MAINTENANCE_SCHEDULE", "0 * * * *"), "cron schedule of the maintenance sweep")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	config := Config{
		HTTPPort:            *httpPort,
		DBHost:              *dbHost,
		DBPort:              *dbPort,
		DBUser:              *dbUser,
		DBPassword:          *dbPassword,
		DBName:              *dbName,
		DBSslMode:           *dbSslMode,
		JWTSecret:           *jwtSecret,
		TokenTTL:            *tokenTTL,
		MaintenanceSchedule: *maintenanceSchedule,
	}

	if config.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET must be set")
	}

	return config, nil
}

// PostgresDSN renders the connection string for gorm's postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
