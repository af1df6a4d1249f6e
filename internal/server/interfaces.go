package server

// Server is the lifecycle of the HTTP server.
type Server interface {
	// RunServer blocks until a termination signal arrives or the listener
	// fails, then shuts down.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
