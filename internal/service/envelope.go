package service

// Code classifies an expected failure. Codes are part of the wire contract:
// the mock services, the HTTP-backed services and the reference server all
// emit the same set.
type Code string

const (
	CodeValidation         Code = "validation_error"
	CodeAuth               Code = "auth_error"
	CodeNotFound           Code = "not_found"
	CodeConflict           Code = "conflict"
	CodeInvalidCredentials Code = "invalid_credentials"
	CodeAccountDisabled    Code = "account_disabled"
	CodeUnavailable        Code = "unavailable"
	CodeInsufficientStock  Code = "insufficient_stock"
	CodeEmptyCart          Code = "empty_cart"
	CodeTerminalState      Code = "terminal_state"
	CodeNetwork            Code = "network_error"
)

// Envelope is the uniform response shape of every service method. Callers
// branch on Success; Message is human-readable and always set on failure.
// Service methods never return Go errors for expected failure modes -- all
// faults are converted to envelopes at the service boundary.
type Envelope struct {
	Success bool   `json:"success"`
	Code    Code   `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK builds a success envelope.
func OK(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

// Fail builds a failure envelope.
func Fail(code Code, message string) Envelope {
	return Envelope{Success: false, Code: code, Message: message}
}
