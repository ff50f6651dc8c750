package parseapi

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ValidationError is returned when a request has empty fields. No request is
// sent to the service in that case.
type ValidationError struct {
	// Missing lists the names of the empty fields in form order.
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// HTTPError is returned when the service responds with a non-2xx status.
type HTTPError struct {
	StatusCode int
	// Detail is the human-readable message supplied by the service, if any.
	Detail string
}

func (e *HTTPError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("HTTP error: %d", e.StatusCode)
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type validationDetail struct {
	Msg string `json:"msg"`
}

// parseDetail extracts the detail message from an error response body. It
// returns an empty string if the body carries no usable message.
func parseDetail(body []byte) string {
	var e errorBody
	if err := json.Unmarshal(body, &e); err != nil || len(e.Detail) == 0 {
		return ""
	}

	var detail string
	if err := json.Unmarshal(e.Detail, &detail); err == nil {
		return detail
	}

	var details []validationDetail
	if err := json.Unmarshal(e.Detail, &details); err == nil {
		msgs := make([]string, 0, len(details))
		for _, d := range details {
			if d.Msg != "" {
				msgs = append(msgs, d.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return ""
}
