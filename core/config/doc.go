// Package config loads roll-checker configuration.
//
// Values come from environment variables, optionally seeded from a .env file, and
// fall back to the 'default' struct tags of each section. Nested keys map to
// upper-case variables joined by underscores, so audit.range_end is read from
// AUDIT_RANGE_END.
//
// # Configuration Structure
//
//   - Server: port, API key, body limit
//   - Storage: S3/MinIO credentials and the rolls bucket
//   - Log: level and format
//   - Database: optional audit history store (sqlite or mysql)
//   - Audit: default range, template, ceiling, ignore list and extension
//   - Remote: shared folder fetch settings
//   - Settings: path of the persisted settings document
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Audit.RangeEnd)
package config
