// Package server runs the HTTP server with signal handling and graceful
// shutdown.
package server
