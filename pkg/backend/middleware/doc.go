// Package middleware provides the reusable HTTP middleware applied around
// every route: panic recovery, request logging, request IDs, inbound rate
// limiting, and CORS.
package middleware
