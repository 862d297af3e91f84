package api

import "encoding/json"

// errorEnvelope mirrors the server's failure shape:
//
//	{"error": {"code": "...", "message": "...", "violations": {"field": "msg"}}}
type errorEnvelope struct {
	Error *errorDetail `json:"error"`
}

type errorDetail struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Violations map[string]string `json:"violations"`
}

// ParseErrorEnvelope decodes an error-envelope body into a user-facing
// message, optional per-field violations, and a machine error code.
//
// The function is total: malformed or non-JSON input, or a body without an
// "error" object, yields (fallback, nil, ""). It never panics and never
// returns an error.
func ParseErrorEnvelope(body, fallback string) (message string, violations map[string]string, code string) {
	var env errorEnvelope
	if err := json.Unmarshal([]byte(body), &env); err != nil || env.Error == nil {
		return fallback, nil, ""
	}
	message = env.Error.Message
	if message == "" {
		message = fallback
	}
	return message, env.Error.Violations, env.Error.Code
}
