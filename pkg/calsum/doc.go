// Package calsum defines the public contract of the calibration summing tool:
// the value types produced by scanning, the collaborator interfaces that feed
// lines in and render summaries out, sentinel errors and process exit codes.
//
// Implementations live under internal/. Consumers only need this package to
// plug in their own line sources, sinks or loggers.
package calsum
