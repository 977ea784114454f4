// Package handlers contains the HTTP handlers for the fact server: the
// /fact endpoint with its status mapping, and the health check.
package handlers
