// Package settings persists the user's audit preferences as a JSON file.
//
// The file keeps the key names used by earlier desktop releases so existing
// settings files load unchanged. Loading never fails: a missing or unreadable
// file yields the defaults.
//
// # HTTP Endpoints
//
//   - GET /settings : Returns the current settings.
//   - PUT /settings : Validates and saves new settings.
package settings
