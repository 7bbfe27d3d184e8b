package storage

import "time"

// Config holds configuration for the object storage provider.
type Config struct {
	// Enabled turns on bucket sources, snapshot objects and report uploads.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Endpoint is the host of the storage service, with or without scheme.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket holds submitted rolls and, under the report prefix, audit reports.
	Bucket string `mapstructure:"bucket" default:"rolls"`
	// Prefix narrows bucket audits to one folder of the bucket.
	Prefix string `mapstructure:"prefix" default:""`
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds connection setup and the first response byte.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Timeout returns the connection timeout, 30s when unset.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
