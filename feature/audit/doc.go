// Package audit runs roll audits end to end.
//
// A Request is the configuration bundle of one audit: where to look (source and
// location), which identifiers to expect (range, template, ignore list) and which
// files to flag (size ceiling, extension). Unset fields fall back to the configured
// defaults, which in turn may come from the saved settings.
//
// The Service resolves a Request into a reconcile.Spec, runs it, renders the text
// report, optionally saves the report, and records the run in the history when a
// Recorder is configured.
//
// # HTTP Endpoints
//
//   - POST /audit : Runs an audit and returns the outcome and report as JSON.
//   - POST /audit/report : Runs an audit and returns the text report only.
//   - POST /listing/extract : Extracts the file list from a captured snapshot.
//
// Invalid requests (range, template, source) answer 400, unavailable snapshots
// 502, anything else 500.
package audit
