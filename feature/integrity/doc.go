// Package integrity checks the infrastructure roll-checker depends on.
//
// # Checks Provided
//
//   - Structure: the rolls bucket exists and the report prefix holds at least one object.
//     With fix, the bucket is created and a folder marker is written for each missing prefix.
//   - History: the audit_runs table has every column of the history model.
//
// Each check is skipped when its backend (storage or database) is not configured.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all configured checks.
//   - GET /integrity/structure : Runs the structure check (supports ?fix=true).
//   - GET /integrity/history : Runs the history schema check.
package integrity
