// Package server runs the HTTP transport of the application.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown once the process is asked to stop.
package server
