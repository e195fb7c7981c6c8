package api

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies why a request was rejected
type ErrorKind int

const (
	KindBodyRequired ErrorKind = iota + 1
	KindMalformedBody
	KindInvalidInput
	KindBodyTooLarge
	KindUnavailable
)

var kindNames = map[ErrorKind]string{
	KindBodyRequired:  "body_required",
	KindMalformedBody: "malformed_body",
	KindInvalidInput:  "invalid_input",
	KindBodyTooLarge:  "body_too_large",
	KindUnavailable:   "unavailable",
}

// String returns the snake_case name used in logs
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Status returns the HTTP status code for the kind
func (k ErrorKind) Status() int {
	switch k {
	case KindBodyTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindUnavailable:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// Message is the client-facing text for the kind
func (k ErrorKind) Message() string {
	switch k {
	case KindBodyRequired:
		return "Request body is required."
	case KindMalformedBody:
		return "Request body must be valid JSON."
	case KindInvalidInput:
		return "Invalid input provided."
	case KindBodyTooLarge:
		return "Request body is too large."
	case KindUnavailable:
		return "Word list unavailable."
	}
	return http.StatusText(k.Status())
}

// RequestError is a rejected request. Detail and Err are for logs only.
type RequestError struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

func newRequestError(kind ErrorKind, detail string, err error) *RequestError {
	return &RequestError{Kind: kind, Detail: detail, Err: err}
}

func (e *RequestError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
