// Package domain contains the core business entities of the application.
// Domain types carry no knowledge of storage or transport concerns.
package domain
