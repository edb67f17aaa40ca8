package model

// ErrorKind classifies a tool failure for user-facing messaging.
type ErrorKind string

const (
	ErrKindAuth          ErrorKind = "auth"
	ErrKindRateLimited   ErrorKind = "rate_limited"
	ErrKindNetwork       ErrorKind = "network"
	ErrKindUpstream      ErrorKind = "upstream"
	ErrKindTimeout       ErrorKind = "timeout"
	ErrKindInvalidParams ErrorKind = "invalid_params"
	ErrKindInternal      ErrorKind = "internal"
)

// ToolError is the error half of the tool envelope.
type ToolError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Hint    string    `json:"hint,omitempty"`
}

// ToolResponse is the uniform envelope every tool returns. Exactly one of
// Data and Error is set; internal failures never escape as panics or raw
// errors past the tool boundary.
type ToolResponse struct {
	OK    bool       `json:"ok"`
	Tool  string     `json:"tool"`
	Data  any        `json:"data,omitempty"`
	Error *ToolError `json:"error,omitempty"`
}

// Success wraps data in a success envelope.
func Success(tool string, data any) *ToolResponse {
	return &ToolResponse{OK: true, Tool: tool, Data: data}
}

// Failure wraps a classified error in an error envelope.
func Failure(tool string, kind ErrorKind, message, hint string) *ToolResponse {
	return &ToolResponse{OK: false, Tool: tool, Error: &ToolError{Kind: kind, Message: message, Hint: hint}}
}
