// Package logger provides structured logging based on Zap.
//
// It offers a configured logger that supports development and production settings
// and integrates with the Fiber web framework.
//
// # Context Awareness
//
// The WithRayID helper extracts the ray id set by the rayid middleware from a Fiber
// context and attaches it to the log entry, so every line of one audit request can
// be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Audit failed", zap.Error(err))
package logger
