package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// UploadMaxMB caps the request body size of uploads.
	UploadMaxMB int `mapstructure:"UPLOAD_MAX_MB" default:"10"`

	// Pipeline holds the normalization and aggregation settings.
	Pipeline PipelineConfig `mapstructure:",squash"`

	// Import holds the remote payload settings.
	Import ImportConfig `mapstructure:",squash"`

	// Redis holds the publication store settings.
	Redis RedisConfig `mapstructure:",squash"`
}

// PipelineConfig holds the settings of the record pipeline.
type PipelineConfig struct {
	// AssumedYear is the year ETA tokens without a year are placed in.
	AssumedYear int `mapstructure:"PIPELINE_ASSUMED_YEAR" default:"2025" required:"true"`
	// TopCustomers is the length of the top-customers list.
	TopCustomers int `mapstructure:"PIPELINE_TOP_CUSTOMERS" default:"5"`
	// Workers bounds the number of goroutines normalizing rows.
	Workers int `mapstructure:"PIPELINE_WORKERS" default:"4"`
	// ParallelThreshold is the row count from which normalization runs in parallel.
	ParallelThreshold int `mapstructure:"PIPELINE_PARALLEL_THRESHOLD" default:"500"`
	// Timezone names the location whose calendar day is "today".
	Timezone string `mapstructure:"PIPELINE_TIMEZONE" default:"Local"`
}

// ImportConfig holds the settings for downloading exports by URL.
type ImportConfig struct {
	// TimeoutSeconds bounds a single download.
	TimeoutSeconds int `mapstructure:"IMPORT_TIMEOUT_SECONDS" default:"10"`
	// AllowPrivateHosts permits imports from loopback, private and link-local addresses.
	AllowPrivateHosts bool `mapstructure:"IMPORT_ALLOW_PRIVATE_HOSTS" default:"false"`
}

// RedisConfig holds the publication store settings.
type RedisConfig struct {
	// URL is the Redis connection URL. Empty keeps snapshots in process.
	URL string `mapstructure:"REDIS_URL"`
	// Namespace prefixes every key.
	Namespace string `mapstructure:"REDIS_NAMESPACE" default:"recovery-dashboard"`
	// SnapshotTTLSeconds expires the published snapshot; 0 keeps it until replaced.
	SnapshotTTLSeconds int `mapstructure:"SNAPSHOT_TTL_SECONDS" default:"0"`
}

// Location resolves the configured timezone.
func (p PipelineConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid PIPELINE_TIMEZONE %q: %w", p.Timezone, err)
	}
	return loc, nil
}

// UploadLimit returns the maximum upload size in bytes.
func (c *AppConfig) UploadLimit() int {
	return c.UploadMaxMB * 1024 * 1024
}

// ImportTimeout returns the download timeout.
func (i ImportConfig) ImportTimeout() time.Duration {
	return time.Duration(i.TimeoutSeconds) * time.Second
}

// SnapshotTTL returns the snapshot expiry.
func (r RedisConfig) SnapshotTTL() time.Duration {
	return time.Duration(r.SnapshotTTLSeconds) * time.Second
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if _, err := config.Pipeline.Location(); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields, binds them to the environment
// and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}

		if defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
