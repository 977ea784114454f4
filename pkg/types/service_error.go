package types

import "fmt"

// UnsupportedKindError is returned when a caller requests an animal kind
// with no registered provider, including misspelled or not-yet-supported
// names. It is a client error and is never retried.
type UnsupportedKindError struct {
	Value string // the caller-supplied name, echoed for diagnostics
}

// Error implements the error interface
func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("'%s' is not a supported animal", e.Value)
}

// ProviderFailedError wraps a provider failure together with the concrete
// kind that was resolved for the call, so "any" requests stay diagnosable.
type ProviderFailedError struct {
	Kind AnimalKind // the resolved concrete kind whose provider failed
	Err  error      // the underlying *ProviderError
}

// Error implements the error interface
func (e *ProviderFailedError) Error() string {
	return fmt.Sprintf("provider for %s failed: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying provider error for errors.Is/As
func (e *ProviderFailedError) Unwrap() error {
	return e.Err
}
