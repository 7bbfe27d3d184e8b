// Package history records every audit run in the optional database.
//
// Each run, successful or not, becomes one row in the audit_runs table with its
// source, timing, counts and missing identifiers. The table is created with GORM
// AutoMigrate when the feature starts.
//
// # HTTP Endpoints
//
//   - GET /history : Lists recent runs (supports ?limit= and ?source=).
//   - GET /history/:id : Returns one run.
package history
