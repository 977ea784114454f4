// Package types defines the core interfaces and data structures for the Animal Fact Kit.
// It includes the animal kind tags, the canonical Fact, the FactProvider interface,
// and the classified error taxonomy shared by all provider implementations.
package types
