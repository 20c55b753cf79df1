package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP           string // Host IP for the server
	RESTPort         int    // Port for the REST API
	GinMode          string // Mode for the Gin framework (e.g., release, debug, test)
	RedisAddr        string // Redis address; empty keeps mazes in memory
	RedisPassword    string // Password for Redis
	RedisDB          int    // Redis database index
	MazeTTLSeconds   int    // How long a generated maze stays retrievable
	MaxMazeDimension int    // Upper bound for rows and columns accepted by the API
	DefaultAlgorithm string // Algorithm used when a request names none
	JWTSecret        string // Secret key for share token signing; empty generates one per process
	JWTIssuer        string // Issuer claim for share tokens
	LogLevel         string // Minimum log level (debug, info, warning, error)
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:           getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:         getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:          getEnvWithDefault("GIN_MODE", "release"),
		RedisAddr:        getEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword:    getEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:          getEnvAsIntWithDefault("REDIS_DB", 0),
		MazeTTLSeconds:   getEnvAsIntWithDefault("MAZE_TTL_SECONDS", 3600),
		MaxMazeDimension: getEnvAsIntWithDefault("MAX_MAZE_DIMENSION", 100),
		DefaultAlgorithm: getEnvWithDefault("DEFAULT_ALGORITHM", "binary_tree"),
		JWTSecret:        getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:        getEnvWithDefault("JWT_ISSUER", "vinom-maze"),
		LogLevel:         getEnvWithDefault("LOG_LEVEL", "info"),
	}
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer,
// returning defaultValue when unset and logging a fatal error when it cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
