// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware for the JSON
// API under /api and the pre-built pages around it. Authentication, the
// session gate, request tracing, access logging and response compression
// are handled here before requests reach the service layer.
package http
