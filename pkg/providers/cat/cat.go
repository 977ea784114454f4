// Package cat provides the cat fact provider. The upstream returns a single
// JSON object with the fact in a "text" field.
package cat

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
const DefaultFactURL = "https://cat-fact.herokuapp.com/facts/random?animal_type=cat"

// Provider implements types.FactProvider for cat facts
type Provider struct {
	factURL string
	client  *httpclient.Client
}

// catFactResponse is the upstream's payload shape
type catFactResponse struct {
	Text string `json:"text"`
}

// New creates a cat fact provider. An empty factURL selects the default
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
	return types.KindCat
}

// Describe returns the provider description
func (p *Provider) Describe() string {
	return "random cat facts from cat-fact.herokuapp.com"
}

// FetchFact issues one GET to the cat fact API and normalizes the response
func (p *Provider) FetchFact(ctx context.Context) (types.Fact, error) {
	resp, err := p.client.Get(ctx, p.factURL)
	if err != nil {
		return types.Fact{}, types.ClassifyTransportError(types.KindCat, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return types.Fact{}, types.NewUpstreamStatusError(types.KindCat, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.Fact{}, types.NewTransportError(types.KindCat, "failed to read upstream response").
			WithOriginalErr(err)
	}

	var factResp catFactResponse
	if err := json.Unmarshal(body, &factResp); err != nil {
		log.Printf("cat: undecodable upstream body (%d bytes): %v", len(body), err)
		return types.Fact{}, types.NewDecodeError(types.KindCat, "unexpected upstream response shape").
			WithOriginalErr(err)
	}

	text := strings.TrimSpace(factResp.Text)
	if text == "" {
		return types.Fact{}, types.NewDecodeError(types.KindCat, "upstream returned an empty fact")
	}

	return types.Fact{Text: text, Animal: types.KindCat}, nil
}
