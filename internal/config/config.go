package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Dataset source kinds.
const (
	SourceCSV      = "csv"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
	SourceS3       = "s3"
)

type Config struct {
	Port     string
	LogLevel string
	Dataset  DatasetConfig
	HTTP     HTTPConfig
}

// DatasetConfig selects where the launch records are read from at startup.
type DatasetConfig struct {
	Source      string
	Path        string
	SQLitePath  string
	DatabaseURL string
	S3          S3Config
}

type S3Config struct {
	Bucket    string
	Key       string
	Region    string
	Endpoint  string
	PathStyle bool
}

type HTTPConfig struct {
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

var defaults = map[string]any{
	"PORT":                     "8050",
	"LOG_LEVEL":                "info",
	"DATASET_SOURCE":           SourceCSV,
	"DATASET_PATH":             "data/spacex_launch_dash.csv",
	"SQLITE_PATH":              "data/launches.db",
	"DATABASE_URL":             "",
	"S3_BUCKET":                "",
	"S3_KEY":                   "spacex_launch_dash.csv",
	"S3_REGION":                "us-east-1",
	"S3_ENDPOINT":              "",
	"S3_PATH_STYLE":            false,
	"HTTP_READ_HEADER_TIMEOUT": 5 * time.Second,
	"HTTP_READ_TIMEOUT":        10 * time.Second,
	"HTTP_WRITE_TIMEOUT":       30 * time.Second,
	"HTTP_IDLE_TIMEOUT":        60 * time.Second,
	"HTTP_SHUTDOWN_TIMEOUT":    10 * time.Second,
}

// LoadDotEnv loads the given .env files (default ".env") into the process environment.
// It reports whether a file was found; a missing file is not an error.
func LoadDotEnv(files ...string) (bool, error) {
	if err := godotenv.Load(files...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("load dotenv: %w", err)
	}
	return true, nil
}

// Load resolves configuration from the environment on top of defaults.
func Load() (*Config, error) {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.AutomaticEnv()

	cfg := &Config{
		Port:     v.GetString("PORT"),
		LogLevel: v.GetString("LOG_LEVEL"),
		Dataset: DatasetConfig{
			Source:      strings.ToLower(strings.TrimSpace(v.GetString("DATASET_SOURCE"))),
			Path:        v.GetString("DATASET_PATH"),
			SQLitePath:  v.GetString("SQLITE_PATH"),
			DatabaseURL: v.GetString("DATABASE_URL"),
			S3: S3Config{
				Bucket:    v.GetString("S3_BUCKET"),
				Key:       v.GetString("S3_KEY"),
				Region:    v.GetString("S3_REGION"),
				Endpoint:  v.GetString("S3_ENDPOINT"),
				PathStyle: v.GetBool("S3_PATH_STYLE"),
			},
		},
		HTTP: HTTPConfig{
			ReadHeaderTimeout: v.GetDuration("HTTP_READ_HEADER_TIMEOUT"),
			ReadTimeout:       v.GetDuration("HTTP_READ_TIMEOUT"),
			WriteTimeout:      v.GetDuration("HTTP_WRITE_TIMEOUT"),
			IdleTimeout:       v.GetDuration("HTTP_IDLE_TIMEOUT"),
			ShutdownTimeout:   v.GetDuration("HTTP_SHUTDOWN_TIMEOUT"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("PORT must be non-empty")
	}

	switch c.Dataset.Source {
	case SourceCSV:
		if strings.TrimSpace(c.Dataset.Path) == "" {
			return errors.New("DATASET_PATH is required for the csv source")
		}
	case SourceSQLite:
		if strings.TrimSpace(c.Dataset.SQLitePath) == "" {
			return errors.New("SQLITE_PATH is required for the sqlite source")
		}
	case SourcePostgres:
		if strings.TrimSpace(c.Dataset.DatabaseURL) == "" {
			return errors.New("DATABASE_URL is required for the postgres source")
		}
	case SourceS3:
		if strings.TrimSpace(c.Dataset.S3.Bucket) == "" || strings.TrimSpace(c.Dataset.S3.Key) == "" {
			return errors.New("S3_BUCKET and S3_KEY are required for the s3 source")
		}
	default:
		return fmt.Errorf("unknown DATASET_SOURCE %q", c.Dataset.Source)
	}

	return nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
