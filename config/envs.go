package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	MazeWidth      uint32 // Width of the maze in cells
	MazeHeight     uint32 // Height of the maze in cells
	MazeTileSize   uint32 // Edge length of the tile grid
	AssemblyStrict bool   // Reject tiles that do not connect to a placed neighbour
	OTELEnabled    bool   // Export traces through OTLP
	MazeLayout     string // Tile layout: "wilson" or "serpentine"
	MazeSeed       int64  // Seed for the layout generator, 0 picks one from the clock
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		MazeWidth:      getEnvAsUint32WithDefault("MAZE_WIDTH", 9),
		MazeHeight:     getEnvAsUint32WithDefault("MAZE_HEIGHT", 9),
		MazeTileSize:   getEnvAsUint32WithDefault("MAZE_TILE_SIZE", 3),
		AssemblyStrict: getEnvAsBoolWithDefault("ASSEMBLY_STRICT", true),
		OTELEnabled:    getEnvAsBoolWithDefault("OTEL_ENABLED", false),
		MazeLayout:     getEnvWithDefault("MAZE_LAYOUT", "wilson"),
		MazeSeed:       getEnvAsInt64WithDefault("MAZE_SEED", 0),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsUint32WithDefault retrieves the value of an environment variable as an unsigned integer or logs a fatal error if it cannot be parsed.
func getEnvAsUint32WithDefault(key string, defaultValue uint32) uint32 {
	valueStr := getEnvWithDefault(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseUint(valueStr, 10, 32)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an unsigned integer: %v", key, err)
	}
	return uint32(value)
}

// getEnvAsInt64WithDefault retrieves the value of an environment variable as an integer or logs a fatal error if it cannot be parsed.
func getEnvAsInt64WithDefault(key string, defaultValue int64) int64 {
	valueStr := getEnvWithDefault(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsBoolWithDefault retrieves the value of an environment variable as a boolean or logs a fatal error if it cannot be parsed.
func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr := getEnvWithDefault(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a boolean: %v", key, err)
	}
	return value
}
