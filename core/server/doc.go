// Package server holds the HTTP server configuration.
//
// The main entry point builds the Fiber application; this package only defines the
// port, API key, body limit and shutdown timeout, with helpers returning them in the
// units Fiber expects.
package server
