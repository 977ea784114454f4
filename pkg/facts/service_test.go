package facts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cecil-the-coder/animal-fact-kit/pkg/registry"
	"github.com/cecil-the-coder/animal-fact-kit/pkg/types"
)

// stubProvider counts its fetches so tests can assert dispatch exactness
type stubProvider struct {
	kind  types.AnimalKind
	err   error
	calls int
}

func (p *stubProvider) Kind() types.AnimalKind { return p.kind }
func (p *stubProvider) Describe() string       { return string(p.kind) + " stub" }
func (p *stubProvider) FetchFact(_ context.Context) (types.Fact, error) {
	p.calls++
	if p.err != nil {
		return types.Fact{}, p.err
	}
	return types.Fact{Text: "a " + string(p.kind) + " fact", Animal: p.kind}, nil
}

func newTestService(t *testing.T, providers ...*stubProvider) (*Service, *registry.Registry) {
	t.Helper()
	r := registry.New()
	for _, p := range providers {
		require.NoError(t, r.Register(p))
	}
	return NewService(r), r
}

func TestGetFact_DispatchesToExactProvider(t *testing.T) {
	catStub := &stubProvider{kind: types.KindCat}
	dogStub := &stubProvider{kind: types.KindDog}
	svc, _ := newTestService(t, catStub, dogStub)

	fact, err := svc.GetFact(context.Background(), types.KindCat)
	require.NoError(t, err)
	assert.Equal(t, types.KindCat, fact.Animal)
	assert.Equal(t, "a cat fact", fact.Text)

	assert.Equal(t, 1, catStub.calls)
	assert.Equal(t, 0, dogStub.calls, "only the requested kind's provider may be called")
}

func TestGetFact_UnsupportedKind(t *testing.T) {
	svc, _ := newTestService(t, &stubProvider{kind: types.KindCat})

	_, err := svc.GetFact(context.Background(), "giraffe")

	var unsupported *types.UnsupportedKindError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "giraffe", unsupported.Value)
}

func TestGetFact_AnyWithEmptyRegistry(t *testing.T) {
	svc := NewService(registry.New())

	_, err := svc.GetFact(context.Background(), types.KindAny)

	var unsupported *types.UnsupportedKindError
	require.ErrorAs(t, err, &unsupported)
}

func TestGetFact_WrapsProviderFailure(t *testing.T) {
	cause := types.NewUpstreamStatusError(types.KindDog, 500)
	svc, _ := newTestService(t,
		&stubProvider{kind: types.KindCat},
		&stubProvider{kind: types.KindDog, err: cause},
	)

	_, err := svc.GetFact(context.Background(), types.KindDog)

	var failed *types.ProviderFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, types.KindDog, failed.Kind)

	var provErr *types.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, types.ErrCodeUpstreamStatus, provErr.Code)
	assert.Equal(t, 500, provErr.StatusCode)
}

// A failed "any" resolution surfaces the single failure with the resolved
// kind; it never falls back to another provider.
func TestGetFact_AnyDoesNotFallBackOnFailure(t *testing.T) {
	cause := types.NewTimeoutError(types.KindCat, "upstream request timed out")
	catStub := &stubProvider{kind: types.KindCat, err: cause}
	svc, _ := newTestService(t, catStub)

	_, err := svc.GetFact(context.Background(), types.KindAny)

	var failed *types.ProviderFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, types.KindCat, failed.Kind)
	assert.Equal(t, 1, catStub.calls)
}

func TestGetFact_AnySelectsUniformly(t *testing.T) {
	const trials = 10000

	catStub := &stubProvider{kind: types.KindCat}
	dogStub := &stubProvider{kind: types.KindDog}
	svc, _ := newTestService(t, catStub, dogStub)

	counts := make(map[types.AnimalKind]int)
	for i := 0; i < trials; i++ {
		fact, err := svc.GetFact(context.Background(), types.KindAny)
		require.NoError(t, err)
		counts[fact.Animal]++
	}

	for _, kind := range []types.AnimalKind{types.KindCat, types.KindDog} {
		freq := float64(counts[kind]) / trials
		assert.InDelta(t, 0.5, freq, 0.05, "kind %s selected with frequency %.3f", kind, freq)
	}
}

// Registering a new kind must expand the "any" pool with no other changes.
func TestGetFact_AnyPoolTracksRegistry(t *testing.T) {
	const trials = 10000

	svc, reg := newTestService(t,
		&stubProvider{kind: types.KindCat},
		&stubProvider{kind: types.KindDog},
	)
	require.NoError(t, reg.Register(&stubProvider{kind: "bird"}))

	counts := make(map[types.AnimalKind]int)
	for i := 0; i < trials; i++ {
		fact, err := svc.GetFact(context.Background(), types.KindAny)
		require.NoError(t, err)
		counts[fact.Animal]++
	}

	assert.Len(t, counts, 3)
	for kind, count := range counts {
		freq := float64(count) / trials
		assert.InDelta(t, 1.0/3.0, freq, 0.05, "kind %s selected with frequency %.3f", kind, freq)
	}

	// The new kind is also fetchable explicitly.
	fact, err := svc.GetFact(context.Background(), "bird")
	require.NoError(t, err)
	assert.Equal(t, types.AnimalKind("bird"), fact.Animal)
}

func TestGetFact_FactShape(t *testing.T) {
	svc, _ := newTestService(t,
		&stubProvider{kind: types.KindCat},
		&stubProvider{kind: types.KindDog},
	)

	for _, kind := range []types.AnimalKind{types.KindCat, types.KindDog} {
		fact, err := svc.GetFact(context.Background(), kind)
		require.NoError(t, err)
		assert.NotEmpty(t, fact.Text)
		assert.Equal(t, kind, fact.Animal, "animal must match the kind actually fetched")
	}
}
