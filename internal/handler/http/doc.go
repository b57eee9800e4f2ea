// Package http implements the HTTP transport layer of the labels service.
//
// It exposes route wiring, the project label handlers, and the middleware
// chain used by the REST API. Request tracing, access logging, response
// compression and bearer authentication are handled in this package before
// requests are delegated to the service layer.
package http
