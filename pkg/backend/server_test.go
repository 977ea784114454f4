package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cecil-the-coder/animal-fact-kit/pkg/backendtypes"
	"github.com/cecil-the-coder/animal-fact-kit/pkg/facts"
	"github.com/cecil-the-coder/animal-fact-kit/pkg/registry"
	"github.com/cecil-the-coder/animal-fact-kit/pkg/types"
)

type stubProvider struct {
	kind types.AnimalKind
}

func (p *stubProvider) Kind() types.AnimalKind { return p.kind }
func (p *stubProvider) Describe() string       { return string(p.kind) + " stub" }
func (p *stubProvider) FetchFact(_ context.Context) (types.Fact, error) {
	return types.Fact{Text: "a " + string(p.kind) + " fact", Animal: p.kind}, nil
}

func newTestServer(t *testing.T, cfg backendtypes.BackendConfig) *Server {
	t.Helper()
	reg := registry.New()
	require.NoError(t, reg.Register(&stubProvider{kind: types.KindCat}))
	require.NoError(t, reg.Register(&stubProvider{kind: types.KindDog}))
	return NewServer(cfg, facts.NewService(reg), reg)
}

func TestServer_FactRoute(t *testing.T) {
	srv := newTestServer(t, backendtypes.BackendConfig{})

	req := httptest.NewRequest(http.MethodGet, "/fact?animal=cat", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"), "request ID middleware must run")

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "cat", body["animal"])
	assert.NotEmpty(t, body["fact"])
}

func TestServer_HealthCheckRoute(t *testing.T) {
	srv := newTestServer(t, backendtypes.BackendConfig{
		Server: backendtypes.ServerConfig{Version: "test"},
	})

	req := httptest.NewRequest(http.MethodGet, "/health-check", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body backendtypes.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
}

func TestServer_UnknownRoute(t *testing.T) {
	srv := newTestServer(t, backendtypes.BackendConfig{})

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_RateLimitApplied(t *testing.T) {
	srv := newTestServer(t, backendtypes.BackendConfig{
		RateLimit: backendtypes.RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 0.001,
			Burst:             1,
		},
	})
	h := srv.Handler()

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/health-check", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/health-check", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestServer_CORSApplied(t *testing.T) {
	srv := newTestServer(t, backendtypes.BackendConfig{
		CORS: backendtypes.CORSConfig{
			Enabled:        true,
			AllowedOrigins: []string{"http://localhost:8080"},
			AllowedMethods: []string{"GET"},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/fact?animal=dog", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:8080", w.Header().Get("Access-Control-Allow-Origin"))
}
