// Package types holds the JSON shapes of the HTTP API.
package types

// ErrorResponse is the JSON body for every failed request.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
	Timestamp string `json:"timestamp"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ClearanceResponse is the clearance-date estimate for a submission made now.
type ClearanceResponse struct {
	// Today is the current facility-local time, display-formatted.
	Today string `json:"today"`
	// EffectiveDate is the working day the submission counts from.
	EffectiveDate string `json:"effective_date"`
	// EarliestClearance is the display-formatted clearance date.
	EarliestClearance string `json:"earliest_clearance"`
}
