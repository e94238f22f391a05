package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a weather lookup failed
type ErrorKind int

const (
	// UnexpectedFailure covers network and decoding errors
	UnexpectedFailure ErrorKind = iota
	// InvalidInput means the caller sent a blank city or an out of range day count
	InvalidInput
	// UpstreamClientError means the provider answered with a 4xx status
	UpstreamClientError
	// UpstreamUnavailable means the provider answered with a 5xx status or no data
	UpstreamUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case UpstreamClientError:
		return "upstream_client_error"
	case UpstreamUnavailable:
		return "upstream_unavailable"
	default:
		return "unexpected_failure"
	}
}

// WeatherError carries the failure kind plus the upstream status and body when the
// provider answered.
type WeatherError struct {
	Kind    ErrorKind
	Message string
	Status  int
	Body    string
	Err     error
}

func (e *WeatherError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *WeatherError) Unwrap() error {
	return e.Err
}

func NewInvalidInputError(message string) *WeatherError {
	return &WeatherError{Kind: InvalidInput, Message: message}
}

func NewUpstreamClientError(message string, status int, body string, err error) *WeatherError {
	return &WeatherError{Kind: UpstreamClientError, Message: message, Status: status, Body: body, Err: err}
}

func NewUpstreamUnavailableError(message string, status int, err error) *WeatherError {
	return &WeatherError{Kind: UpstreamUnavailable, Message: message, Status: status, Err: err}
}

func NewUnexpectedFailure(message string, err error) *WeatherError {
	return &WeatherError{Kind: UnexpectedFailure, Message: message, Err: err}
}

// KindOf returns the kind of the first WeatherError in err's chain, or UnexpectedFailure.
func KindOf(err error) ErrorKind {
	var weatherErr *WeatherError
	if errors.As(err, &weatherErr) {
		return weatherErr.Kind
	}
	return UnexpectedFailure
}
