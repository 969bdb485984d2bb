// Package errors defines the error categories shared across the store,
// the API surface and the client.
package errors

import (
	"fmt"
)

var (
	// ErrInvalidInput indicates malformed or missing required input.
	ErrInvalidInput = fmt.Errorf("invalid input")
	// ErrNotFound indicates an operation targeted a record that does not exist.
	ErrNotFound = fmt.Errorf("not found")
	// ErrTransport indicates a client-to-server call failed to complete.
	ErrTransport = fmt.Errorf("transport failure")
	// ErrStorage indicates the underlying persistence failed unexpectedly.
	ErrStorage = fmt.Errorf("storage fault")
)
