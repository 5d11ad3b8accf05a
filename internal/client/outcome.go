package client

import (
	"encoding/json"
	"fmt"
)

// Outcome is the uniform result of every API operation. Failures are values,
// not errors: callers branch on Success.
//
// A synchronous success carries the raw response text in Data. A failure
// carries a human-readable message in Response. Refresh stores the new access
// token in Response, and Download stores the decoded JSON document there.
type Outcome struct {
	Success    bool   `json:"success"`
	Code       int    `json:"code"`
	APIVersion string `json:"api_version,omitempty"`
	Data       string `json:"data,omitempty"`
	Response   any    `json:"response,omitempty"`
}

// APIError is the error form of a failed Outcome.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Code == 0 {
		return e.Message
	}
	return fmt.Sprintf("API error (HTTP %d): %s", e.Code, e.Message)
}

// failure builds an unsuccessful Outcome. An empty message is replaced so that
// a failure never goes out without a description.
func failure(code int, msg string) Outcome {
	if msg == "" {
		msg = "unknown error."
	}
	return Outcome{Success: false, Code: code, Response: msg}
}

// Err returns nil for a successful outcome and an *APIError otherwise.
func (o Outcome) Err() error {
	if o.Success {
		return nil
	}
	return &APIError{Code: o.Code, Message: o.Message()}
}

// Message returns the failure text, or "" for a successful outcome.
func (o Outcome) Message() string {
	if o.Success {
		return ""
	}
	if s, ok := o.Response.(string); ok {
		return s
	}
	return fmt.Sprint(o.Response)
}

// Decode unmarshals the outcome payload into v. For synchronous calls that is
// the raw Data text; for downloads it is the already decoded Response.
func (o Outcome) Decode(v any) error {
	if err := o.Err(); err != nil {
		return err
	}
	if o.Data != "" {
		return json.Unmarshal([]byte(o.Data), v)
	}
	if o.Response == nil {
		return fmt.Errorf("outcome has no payload")
	}
	b, err := json.Marshal(o.Response)
	if err != nil {
		return fmt.Errorf("re-encoding response: %w", err)
	}
	return json.Unmarshal(b, v)
}
