// Command timerd runs the countdown timer HTTP service.
//
// Usage:
//
//   timerd -listen 127.0.0.1:5000 -config timerd.yaml -shutdown-secs 5
//
// Flags:
//   -listen          HTTP bind address (overrides the config file)
//   -config          path to an optional YAML config file
//   -shutdown-secs   graceful shutdown timeout in seconds (overrides the config file)
//
// Behavior:
//
// Builds the single timer engine, starts its one-second ticking loop and the
// API server, then blocks on SIGINT/SIGTERM for graceful shutdown. The binary
// intentionally avoids daemonizing itself; run it under a process supervisor
// for persistence.
package main
