package backendtypes

// ErrorResponse is the stable error body returned by the HTTP boundary.
// It names the invalid value or failing animal and a generic cause category,
// never raw upstream payloads.
type ErrorResponse struct {
	Error    string `json:"error"`
	Animal   string `json:"animal,omitempty"`
	Category string `json:"category,omitempty"`
}

// HealthResponse is the health check body
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
