package types

// Fact is the canonical output of a provider fetch: one piece of trivia and
// the animal it is about. Facts are built fresh per request and never cached.
type Fact struct {
	Text   string     `json:"fact"`
	Animal AnimalKind `json:"animal"`
}
