// Package server manages the lifecycle of the application's transport
// servers: construction, startup, and signal-driven graceful shutdown.
package server
