// Package registry maps animal kinds to their fact providers. It is the
// single extension point for adding animals: register a provider and the
// kind becomes requestable explicitly and joins the "any" selection pool,
// with no changes anywhere else.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/cecil-the-coder/animal-fact-kit/pkg/types"
)

// Registry is a thread-safe mapping of concrete animal kinds to providers.
// In normal operation it is populated once at startup and only read after
// that; the lock exists so tests and future dynamic setups stay correct.
type Registry struct {
	mu        sync.RWMutex
	providers map[types.AnimalKind]types.FactProvider
}

// New creates an empty provider registry
func New() *Registry {
	return &Registry{
		providers: make(map[types.AnimalKind]types.FactProvider),
	}
}

// Register adds a provider under its own kind. The pseudo-kind "any" and
// duplicate registrations are rejected: every concrete kind has exactly one
// provider.
func (r *Registry) Register(p types.FactProvider) error {
	if p == nil {
		return fmt.Errorf("cannot register a nil provider")
	}
	kind := p.Kind()
	if kind == "" {
		return fmt.Errorf("cannot register a provider with an empty kind")
	}
	if kind.IsAny() {
		return fmt.Errorf("%q is a pseudo-kind and cannot have a provider", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[kind]; exists {
		return fmt.Errorf("provider for kind %q already registered", kind)
	}
	r.providers[kind] = p
	return nil
}

// Get returns the provider registered for the given concrete kind
func (r *Registry) Get(kind types.AnimalKind) (types.FactProvider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[kind]
	return p, ok
}

// Kinds returns a sorted snapshot of all registered concrete kinds. The
// "any" selection pool is always derived from this, never hard-coded.
func (r *Registry) Kinds() []types.AnimalKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]types.AnimalKind, 0, len(r.providers))
	for kind := range r.providers {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Len returns the number of registered providers
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}

// ParseKind resolves a caller-supplied animal name, case-insensitively,
// into either a registered concrete kind or the "any" pseudo-kind. Unknown
// names yield an *types.UnsupportedKindError naming the bad value.
func (r *Registry) ParseKind(s string) (types.AnimalKind, error) {
	kind := types.NormalizeKind(s)
	if kind.IsAny() {
		return types.KindAny, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.providers[kind]; !ok {
		return "", &types.UnsupportedKindError{Value: s}
	}
	return kind, nil
}
