package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"bucket-list-client/apperrors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage backends
const STORAGE_BACKEND_REDIS = "redis"
const STORAGE_BACKEND_MEMORY = "memory"

// Places API defaults
const PLACES_API_ENDPOINT_BASE_V3 = "https://api.foursquare.com/v3"

// Places API modes: live requests or canned responses from resources/
const PLACES_MODE_LIVE = "live"
const PLACES_MODE_FIXTURE = "fixture"

// Development identity used until real auth exists.
const MOCK_USER_ID = "mock-user-1"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const SEARCH_RESPONSE_RESOURCE = "places_search_response.json"
const PLACE_DETAILS_RESOURCE = "place_details_response.json"

// Config is loaded from the environment (and an optional .env file) at process start.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`

	PlacesBaseURL   string        `env:"PLACES_API_BASE_URL" envDefault:"https://api.foursquare.com/v3"`
	PlacesAPIKey    Secret        `env:"PLACES_API_KEY"`
	PlacesTimeout   time.Duration `env:"PLACES_API_TIMEOUT" envDefault:"10s"`
	PlacesRateLimit float64       `env:"PLACES_API_RATE_LIMIT" envDefault:"5"`
	PlacesRateBurst int           `env:"PLACES_API_RATE_BURST" envDefault:"10"`
	PlacesMode      string        `env:"PLACES_API_MODE" envDefault:"live"`

	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"redis"`
	RedisAddr      string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword  Secret `env:"REDIS_PASSWORD"`
	RedisDB        int    `env:"REDIS_DB" envDefault:"0"`

	HTTPAddr  string `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	DeviceLat             float64       `env:"DEVICE_LAT" envDefault:"30.2672"`
	DeviceLng             float64       `env:"DEVICE_LNG" envDefault:"-97.7431"`
	DeviceLocationAllowed bool          `env:"DEVICE_LOCATION_PERMISSION" envDefault:"true"`
	LocationWatch         bool          `env:"LOCATION_WATCH" envDefault:"true"`
	LocationWatchInterval time.Duration `env:"LOCATION_WATCH_INTERVAL" envDefault:"5s"`
	LocationWatchCeiling  time.Duration `env:"LOCATION_WATCH_CEILING" envDefault:"30m"`

	UserID                    string        `env:"USER_ID" envDefault:"mock-user-1"`
	BucketListRefreshInterval time.Duration `env:"BUCKET_LIST_REFRESH_INTERVAL" envDefault:"0s"`
}

// Load reads .env (if present) and the process environment, then validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the client cannot start with.
func (c *Config) Validate() error {
	if !c.PlacesAPIKey.IsSet() {
		return fmt.Errorf("PLACES_API_KEY: %w", apperrors.ErrMissingAPIKey)
	}
	if c.PlacesBaseURL == "" {
		return errors.New("PLACES_API_BASE_URL must not be empty")
	}
	switch c.StorageBackend {
	case STORAGE_BACKEND_REDIS, STORAGE_BACKEND_MEMORY:
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	switch c.PlacesMode {
	case PLACES_MODE_LIVE, PLACES_MODE_FIXTURE:
	default:
		return fmt.Errorf("unknown PLACES_API_MODE %q", c.PlacesMode)
	}
	if c.LocationWatchCeiling <= 0 {
		return errors.New("LOCATION_WATCH_CEILING must be positive")
	}
	return nil
}

// IsDevelopment reports whether the mock identity should survive logout.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
