// Package database manages the optional SQL connection used for audit history.
//
// It supports MySQL for shared deployments and SQLite for single-user installs,
// both through GORM.
//
// # Schema Inspection
//
// GetTableColumns reads a table's column definitions (SHOW COLUMNS on MySQL,
// PRAGMA table_info on SQLite) so integrity checks can verify the history schema.
package database
