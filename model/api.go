// Package model - API types for component requests/responses
package model

// ComponentRequest is the body of POST /api/v1/component.
// Purl is left untyped so that non-string JSON values reach the extractor and are
// rejected there with the same error as an empty string.
type ComponentRequest struct {
	Purl any `json:"purl"`
}

// ComponentResponse returns the result of POST /api/v1/component
type ComponentResponse struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message"`
	ErrorKind string     `json:"error_kind,omitempty"`
	Result    *Component `json:"result,omitempty"`
}

// HealthResponse is returned by the health check endpoint
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
