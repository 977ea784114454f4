package types

import "strings"

// AnimalKind identifies a supported animal category.
// Kinds are compared and serialized in their lowercase form.
type AnimalKind string

const (
	KindCat AnimalKind = "cat"
	KindDog AnimalKind = "dog"

	// KindAny is a pseudo-kind meaning "pick uniformly at random among all
	// registered concrete kinds at call time". It never has a provider of
	// its own and is resolved to a concrete kind before dispatch.
	KindAny AnimalKind = "any"
)

// String returns the kind's wire name.
func (k AnimalKind) String() string {
	return string(k)
}

// IsAny reports whether k is the random-selection pseudo-kind.
func (k AnimalKind) IsAny() bool {
	return k == KindAny
}

// NormalizeKind lowercases and trims a caller-supplied animal name.
// Whether the result names a registered kind is decided by the registry,
// not here, so newly registered kinds become requestable without changes.
func NormalizeKind(s string) AnimalKind {
	return AnimalKind(strings.ToLower(strings.TrimSpace(s)))
}
