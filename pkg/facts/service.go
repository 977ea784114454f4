// Package facts implements the fact dispatch service: it resolves a
// requested animal kind (including the random "any" pseudo-kind) against the
// provider registry and invokes the matching provider.
package facts

import (
	"context"
	"log"
	"math/rand/v2"

	"github.com/cecil-the-coder/animal-fact-kit/pkg/registry"
	"github.com/cecil-the-coder/animal-fact-kit/pkg/types"
)

// Service is a stateless facade over the registry and its providers. It is
// safe to share across concurrent requests; randomness draws go through
// math/rand/v2's concurrency-safe top-level source.
type Service struct {
	registry *registry.Registry
}

// NewService creates a fact service over the given registry
func NewService(r *registry.Registry) *Service {
	return &Service{registry: r}
}

// GetFact resolves the requested kind and fetches one fact from its
// provider. "any" picks uniformly among all currently registered kinds, so
// the pool tracks registry additions automatically. Provider failures are
// wrapped with the resolved kind and surfaced once, without retrying.
func (s *Service) GetFact(ctx context.Context, requested types.AnimalKind) (types.Fact, error) {
	kind := requested
	if kind.IsAny() {
		kinds := s.registry.Kinds()
		if len(kinds) == 0 {
			return types.Fact{}, &types.UnsupportedKindError{Value: requested.String()}
		}
		kind = kinds[rand.IntN(len(kinds))]
	}

	provider, ok := s.registry.Get(kind)
	if !ok {
		return types.Fact{}, &types.UnsupportedKindError{Value: kind.String()}
	}

	fact, err := provider.FetchFact(ctx)
	if err != nil {
		log.Printf("facts: fetch failed (requested=%s, resolved=%s): %v", requested, kind, err)
		return types.Fact{}, &types.ProviderFailedError{Kind: kind, Err: err}
	}
	return fact, nil
}
