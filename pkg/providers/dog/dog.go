// Package dog provides the dog fact provider. The upstream returns a JSON
// object holding a list of fact strings; the first entry is the fact.
package dog

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/cecil-the-coder/animal-fact-kit/internal/httpclient"
	"github.com/cecil-the-coder/animal-fact-kit/pkg/types"
)

// DefaultFactURL is the upstream endpoint queried when no override is configured
const DefaultFactURL = "http://dog-api.kinduff.com/api/facts"

// Provider implements types.FactProvider for dog facts
type Provider struct {
	factURL string
	client  *httpclient.Client
}

// dogFactsResponse is the upstream's payload shape
type dogFactsResponse struct {
	Facts []string `json:"facts"`
}

// New creates a dog fact provider. An empty factURL selects the default
// upstream endpoint.
func New(client *httpclient.Client, factURL string) *Provider {
	if factURL == "" {
		factURL = DefaultFactURL
	}
	return &Provider{
		factURL: factURL,
		client:  client,
	}
}

// Kind returns the animal kind this provider serves
func (p *Provider) Kind() types.AnimalKind {
	return types.KindDog
}

// Describe returns the provider description
func (p *Provider) Describe() string {
	return "random dog facts from dog-api.kinduff.com"
}

// FetchFact issues one GET to the dog fact API and normalizes the response.
// An empty facts list counts as a decode failure; a missing fact is never
// papered over with a placeholder.
func (p *Provider) FetchFact(ctx context.Context) (types.Fact, error) {
	resp, err := p.client.Get(ctx, p.factURL)
	if err != nil {
		return types.Fact{}, types.ClassifyTransportError(types.KindDog, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return types.Fact{}, types.NewUpstreamStatusError(types.KindDog, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.Fact{}, types.NewTransportError(types.KindDog, "failed to read upstream response").
			WithOriginalErr(err)
	}

	var factsResp dogFactsResponse
	if err := json.Unmarshal(body, &factsResp); err != nil {
		log.Printf("dog: undecodable upstream body (%d bytes): %v", len(body), err)
		return types.Fact{}, types.NewDecodeError(types.KindDog, "unexpected upstream response shape").
			WithOriginalErr(err)
	}

	if len(factsResp.Facts) == 0 {
		return types.Fact{}, types.NewDecodeError(types.KindDog, "upstream returned no facts")
	}
	text := strings.TrimSpace(factsResp.Facts[0])
	if text == "" {
		return types.Fact{}, types.NewDecodeError(types.KindDog, "upstream returned an empty fact")
	}

	return types.Fact{Text: text, Animal: types.KindDog}, nil
}
