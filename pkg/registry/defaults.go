package registry

import (
	"github.com/cecil-the-coder/animal-fact-kit/internal/httpclient"
	"github.com/cecil-the-coder/animal-fact-kit/pkg/providers/cat"
	"github.com/cecil-the-coder/animal-fact-kit/pkg/providers/dog"
	"github.com/cecil-the-coder/animal-fact-kit/pkg/types"
)

// RegisterDefaultProviders registers all built-in fact providers, sharing
// one HTTP client between them. overrides maps a kind to an upstream URL
// replacing that provider's default endpoint; absent or empty entries keep
// the default.
func RegisterDefaultProviders(r *Registry, client *httpclient.Client, overrides map[types.AnimalKind]string) error {
	if err := r.Register(cat.New(client, overrides[types.KindCat])); err != nil {
		return err
	}
	return r.Register(dog.New(client, overrides[types.KindDog]))
}
