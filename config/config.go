package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Uber Eats API
const UBER_EATS_ORIGIN = "https://www.ubereats.com"
const UBER_EATS_REFERER = "https://www.ubereats.com/ca/"
const FEED_API_PATH = "/_p/api/getFeedV1"
const FEED_LOCALE_CODE = "ca"
const FEED_REQUEST_TIMEOUT_SECONDS = 30

// Session cookies
const COOKIES_ENV_VAR = "UBER_EATS_COOKIES"
const LOCATION_COOKIE_NAME = "uev2.loc"

// Output files
const DEFAULT_OUTPUT_FILE = "final_result.json"
const DEBUG_RESPONSE_FILE = "debug_response.json"
const RATINGS_CHART_FILE = "ratings_chart.html"

// Results server
const SERVER_ADDRESS = ":8080"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const FEED_RESPONSE_RESOURCE = "feed_response.json"

// EnvConfig holds the optional runtime settings read from the environment.
// Redis and MinIO stay disabled unless their endpoints are set.
type EnvConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	ArchiveBucket  string

	// InsecureTLS disables certificate and hostname verification on the
	// feed request. Known security defect carried over from the original
	// tooling; verification stays enabled unless explicitly opted out.
	InsecureTLS bool
}

// LoadEnvConfig reads the optional settings from environment variables.
func LoadEnvConfig() EnvConfig {
	cfg := EnvConfig{
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioUseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		ArchiveBucket:  os.Getenv("FEED_ARCHIVE_BUCKET"),
		InsecureTLS:    parseBool(os.Getenv("UBER_EATS_INSECURE_TLS")),
	}
	if v := strings.TrimSpace(os.Getenv("REDIS_DB")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RedisDB = n
		}
	}
	return cfg
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
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

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
