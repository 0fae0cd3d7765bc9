// Package logging provides a unified structured logging interface for the
// arithmetic core and its supporting packages. It abstracts the underlying
// logging implementation, allowing consistent logging across components
// while supporting multiple backends (zerolog, or the bare standard
// library logger).
package logging
