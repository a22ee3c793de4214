package server

// Server is the lifecycle contract for the transport servers this package
// manages: block in [RunServer] until shutdown is requested, release
// resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
