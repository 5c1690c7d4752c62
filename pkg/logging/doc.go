// Package logging configures log/slog for dashboard-audit binaries.
//
// All records are JSON written to stderr and carry "module" and "version"
// attributes. The level comes from the --log-level flag or the LOG_LEVEL
// environment variable (debug, info, warn/warning, error; default info).
// Debug level also records the source location.
//
// Set the default logger early in main:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("dashauditd", version)
//	    slog.Info("starting", "port", 8080)
//	}
//
// Log errors with the identifiers needed to reproduce the lookup:
//
//	slog.Error("component lookup failed",
//	    "error", err,
//	    "componentId", id,
//	    "requestID", requestID,
//	)
package logging
