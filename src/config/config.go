package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type GlobalConfig struct {
	Host       string
	Port       string
	Origin     string
	JWTSecret  string
	AMQPURL    string
	UploadDir  string
	BaseURL    string
	LogLevel   string
	dbHost     string
	dbPort     int
	dbUser     string
	dbPassword string
	dbName     string
}

// NewConfig loads configuration from the environment. A .env file in the
// working directory is read first when present. JWT_SECRET has no default
// and must be set.
func NewConfig() (GlobalConfig, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return GlobalConfig{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return GlobalConfig{}, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	dbPortStr := getEnv("DB_PORT", "5432")
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return GlobalConfig{}, fmt.Errorf("DB_PORT must be a valid integer: %w", err)
	}

	port := getEnv("PORT", "8000")

	return GlobalConfig{
		Host:       getEnv("HOST", "0.0.0.0"),
		Port:       port,
		Origin:     getEnv("CLIENT_URL", "http://localhost:3000"),
		JWTSecret:  jwtSecret,
		AMQPURL:    os.Getenv("AMQP_URL"),
		UploadDir:  getEnv("UPLOAD_DIR", "./uploads"),
		BaseURL:    getEnv("API_URL", fmt.Sprintf("http://localhost:%s", port)),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		dbHost:     getEnv("DB_HOST", "localhost"),
		dbPort:     dbPort,
		dbUser:     getEnv("DB_USER", "postgres"),
		dbPassword: getEnv("DB_PASS", "postgres"),
		dbName:     getEnv("DB_NAME", "mentorship"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *GlobalConfig) GetDBHost() string     { return c.dbHost }
func (c *GlobalConfig) GetDBPort() int        { return c.dbPort }
func (c *GlobalConfig) GetDBUser() string     { return c.dbUser }
func (c *GlobalConfig) GetDBPassword() string { return c.dbPassword }
func (c *GlobalConfig) GetDBName() string     { return c.dbName }
