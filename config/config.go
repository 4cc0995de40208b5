package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Venues Refresher config
const VENUES_REFRESHER_SCHEDULE_MINUTES = 60

// Places API
const PLACES_ENDPOINT_BASE_V1 = "https://api.stillopen-places.dev/api/v1"
const PLACES_API_KEY_ENV = "PLACES_API_KEY"

// Planner defaults
const DEFAULT_SEARCH_RADIUS_KM = 3.0

// HTTP server
const SERVER_ADDRESS = ":8080"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const VENUE_SEARCH_RESPONSE_RESOURCE = "venue_search_response.json"

// LoadEnv loads a .env file when present; env vars already set win.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[Config] No .env file loaded: %v", err)
	}
}

// PlacesAPIKey returns the provider key from the environment.
func PlacesAPIKey() string {
	return os.Getenv(PLACES_API_KEY_ENV)
}

// Env returns the runtime environment name, defaulting to "dev".
func Env() string {
	if env := os.Getenv("PLANNER_ENV"); env != "" {
		return env
	}
	return "dev"
}

// RedisAddress returns the redis address, overridable via env.
func RedisAddress() string {
	if addr := os.Getenv("REDIS_ADDRESS"); addr != "" {
		return addr
	}
	return REDIS_DB_ADDRESS
}

// BaseDir returns the absolute path of the project root directory.
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
