package handler

import (
	dErrors "chrono/pkg/domain-errors"
)

// ParseRequest is the body of POST /v1/timestamps/parse.
type ParseRequest struct {
	// Value is the timestamp text in any accepted input form.
	Value string `json:"value"`
	// Zone optionally re-zones the result: a registry name or offset literal.
	Zone string `json:"zone,omitempty"`
}

// Validate enforces transport-level field presence.
func (r *ParseRequest) Validate() error {
	if r.Value == "" {
		return dErrors.New(dErrors.CodeBadRequest, "value is required")
	}
	return nil
}

// ConvertRequest is the body of POST /v1/timestamps/convert.
type ConvertRequest struct {
	Value string `json:"value"`
	Zone  string `json:"zone"`
}

func (r *ConvertRequest) Validate() error {
	if r.Value == "" {
		return dErrors.New(dErrors.CodeBadRequest, "value is required")
	}
	if r.Zone == "" {
		return dErrors.New(dErrors.CodeBadRequest, "zone is required")
	}
	return nil
}

// FormatRequest is the body of POST /v1/timestamps/format. An empty pattern
// is legal and yields an empty string.
type FormatRequest struct {
	Value   string `json:"value"`
	Pattern string `json:"pattern"`
}

func (r *FormatRequest) Validate() error {
	if r.Value == "" {
		return dErrors.New(dErrors.CodeBadRequest, "value is required")
	}
	return nil
}

// ParseBatchRequest is the body of POST /v1/timestamps/parse-batch.
type ParseBatchRequest struct {
	Values []string `json:"values"`
}

func (r *ParseBatchRequest) Validate() error {
	if len(r.Values) == 0 {
		return dErrors.New(dErrors.CodeBadRequest, "values must be non-empty")
	}
	return nil
}
