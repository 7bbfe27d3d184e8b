package audit

import (
	"time"

	"roll-checker/feature/settings"
)

// Config holds the audit defaults.
type Config struct {
	// RangeStart is the first expected identifier.
	RangeStart int `mapstructure:"range_start" default:"1"`
	// RangeEnd is the last expected identifier.
	RangeEnd int `mapstructure:"range_end" default:"140"`
	// MaxRange is the largest number of identifiers one audit may expect.
	MaxRange int `mapstructure:"max_range" default:"100000"`
	// Template is the identifier template, '_' marking each identifier digit.
	Template string `mapstructure:"template" default:"___"`
	// SizeCeilingMB flags larger files. Zero disables the check.
	SizeCeilingMB float64 `mapstructure:"size_ceiling_mb" default:"0"`
	// Ignore is a comma separated list of identifiers to skip.
	Ignore string `mapstructure:"ignore" default:""`
	// Extension keeps only files with this extension. Empty keeps all.
	Extension string `mapstructure:"extension" default:".pdf"`
	// CheckDuplicates renders the duplicates section of the report.
	CheckDuplicates bool `mapstructure:"check_duplicates" default:"true"`
	// SnapshotTimeoutSeconds bounds snapshot acquisition.
	SnapshotTimeoutSeconds int `mapstructure:"snapshot_timeout_seconds" default:"60"`
	// CacheTTLSeconds caches bucket and remote listings. Zero disables the cache.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0"`
	// ReportPrefix is where reports are uploaded in the bucket.
	ReportPrefix string `mapstructure:"report_prefix" default:"reports"`
}

// SnapshotTimeout returns the acquisition timeout.
func (c Config) SnapshotTimeout() time.Duration {
	return time.Duration(c.SnapshotTimeoutSeconds) * time.Second
}

// CacheTTL returns the listing cache lifetime.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// WithSettings overlays the saved settings on the defaults.
// Settings fields that do not parse are ignored.
func (c Config) WithSettings(s settings.Settings) Config {
	if start, end, err := s.Range(); err == nil {
		c.RangeStart, c.RangeEnd = start, end
	}
	if s.RollNumberPattern != "" {
		c.Template = s.RollNumberPattern
	}
	if mb, err := s.MaxSize(); err == nil {
		c.SizeCeilingMB = mb
	}
	c.Ignore = s.IgnoreRolls
	c.CheckDuplicates = s.CheckDuplicates
	return c
}
