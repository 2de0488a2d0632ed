// Package main implements the entry point for the task API server: a CRUD
// service for task records backed by a configurable storage backend
// (in-memory, SQLite, PostgreSQL or MySQL).
package main

import (
	"context"
	"log"
)

// main loads configuration, wires the application and runs the HTTP server
// until interrupted.
func main() {
	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.startHTTPServer(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
