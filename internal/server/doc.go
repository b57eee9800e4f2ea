// Package server wires and runs the labels HTTP server.
//
// It owns the server lifecycle: startup, signal handling, graceful shutdown
// and the release of resources such as the database pool once the server
// has stopped accepting requests.
package server
