// Package store defines the TaskStore contract satisfied by every storage
// backend, along with the error types shared across backend implementations.
//
// Concrete backends live in subpackages (memory, sqlite, sqldb); the factory
// subpackage maps configuration strings to backend constructors. Nothing
// above the factory knows about concrete backend types.
package store
