package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"roll-checker/core/database"
	"roll-checker/core/logger"
	"roll-checker/core/middleware/auth"
	"roll-checker/core/server"
	"roll-checker/core/storage"
	"roll-checker/feature/audit"
	"roll-checker/feature/audit/sources"
	"roll-checker/feature/settings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for roll-checker, one section per package.
type Config struct {
	Server server.Config `mapstructure:"server"`
	// Storage is the bucket holding rolls, snapshots and reports.
	Storage  storage.Config  `mapstructure:"storage"`
	Log      logger.Config   `mapstructure:"log"`
	Database database.Config `mapstructure:"database"`
	// Audit holds the defaults applied when a request omits a field.
	Audit    audit.Config         `mapstructure:"audit"`
	Remote   sources.RemoteConfig `mapstructure:"remote"`
	Settings settings.Config      `mapstructure:"settings"`
}

// Auth returns the API key middleware configuration.
func (c *Config) Auth() auth.Config {
	return auth.Config{ApiKey: c.Server.ApiKey}
}

// LoadConfig loads configuration from environment variables and a .env file in path.
// A missing .env file is not an error.
func LoadConfig(path string) (*Config, error) {
	envPath := filepath.Join(path, ".env")
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// AUDIT_RANGE_END -> audit.range_end
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &config, nil
}

// bindValues registers every tagged leaf field with its 'default' tag value so
// AutomaticEnv can resolve it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Empty defaults still register the key.
		v.SetDefault(key, defaultValue)
	}
}
