package types

import "context"

// FactProvider fetches and normalizes one animal kind's upstream fact.
// Each upstream returns a differently shaped payload; the provider owns the
// decoding rule for its shape and always produces the canonical Fact.
//
// Implementations are constructed once at startup, hold no per-request
// mutable state, and are safe for concurrent use.
type FactProvider interface {
	// Kind returns the concrete animal kind this provider serves.
	Kind() AnimalKind

	// Describe returns a short human-readable description of the provider.
	Describe() string

	// FetchFact issues exactly one upstream request and returns the
	// canonical fact. It does not retry; failures come back as a
	// *ProviderError classified by cause. The context bounds and cancels
	// the upstream call.
	FetchFact(ctx context.Context) (Fact, error)
}
