// Package logger provides a structured logging facility based on Zap.
//
// It builds a logger for the configured level and encoding and integrates with
// the Fiber web framework through the request RayID.
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
//	l.Error("Upload failed", zap.Error(err))
package logger
