package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Checker   CheckerConfig
	Form      FormConfig
	Storage   StorageConfig
	Preflight PreflightConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type CheckerConfig struct {
	BaseURL string
	Timeout time.Duration
}

// DegreeMode controls whether the submission form carries a degree field.
type DegreeMode string

const (
	DegreeOff      DegreeMode = "off"
	DegreeOptional DegreeMode = "optional"
	DegreeRequired DegreeMode = "required"
)

// Enabled reports whether the degree is sent to the checker at all.
func (m DegreeMode) Enabled() bool {
	return m == DegreeOptional || m == DegreeRequired
}

type FormConfig struct {
	Degree DegreeMode
}

type StorageConfig struct {
	MaxFileSize int64
}

type PreflightConfig struct {
	Enabled  bool
	MinPages int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Checker: CheckerConfig{
			BaseURL: strings.TrimRight(getEnv("CHECKER_BASE_URL", "http://localhost:5000"), "/"),
			Timeout: getEnvAsDuration("CHECKER_TIMEOUT", "120s"),
		},
		Form: FormConfig{
			Degree: ParseDegreeMode(getEnv("DEGREE_FIELD", string(DegreeOff))),
		},
		Storage: StorageConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Preflight: PreflightConfig{
			Enabled:  getEnvAsBool("PREFLIGHT_PDF", true),
			MinPages: getEnvAsInt("PREFLIGHT_MIN_PAGES", 50),
		},
	}
}

// ParseDegreeMode maps a configuration value onto a DegreeMode.
// Unknown values disable the field.
func ParseDegreeMode(value string) DegreeMode {
	switch DegreeMode(strings.ToLower(strings.TrimSpace(value))) {
	case DegreeOptional:
		return DegreeOptional
	case DegreeRequired:
		return DegreeRequired
	default:
		return DegreeOff
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
