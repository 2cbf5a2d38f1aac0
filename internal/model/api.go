package model

import "encoding/json"

// Envelope wraps every successful response.
type Envelope struct {
	Success  bool            `json:"success"`
	Response json.RawMessage `json:"response"`
}

// ErrorEnvelope is the body of every failed response.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// Health is the body of the status endpoint.
type Health struct {
	Healthy bool   `json:"healthy"`
	Status  string `json:"status"`
}
