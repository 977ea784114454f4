// Package backendtypes holds the configuration structures and wire-level
// response bodies shared between the server, its handlers, and the loader.
package backendtypes
