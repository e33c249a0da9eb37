package errors

import (
	"errors"
	"fmt"
)

const (
	TYPE_UNKNOWN      = "unknown"
	TYPE_JSON_PARSE   = "json"
	TYPE_REQUEST_PREP = "request-prep"
	TYPE_TRANSPORT    = "transport"
	TYPE_HTTP_STATUS  = "not-ok-http-status"

	// Discord numeric error codes surfaced on ApiError.DiscordCode.
	DISCORD_UnknownChannel = 10003
	DISCORD_UnknownMessage = 10008
	DISCORD_Unauthorized   = 40001
)

// ApiError is the error value returned by every safe operation.
// HttpStatusCode is 0 when the request never produced an HTTP response
// (TYPE_TRANSPORT); otherwise it carries the remote status. Body holds
// the raw response payload uninterpreted; see the parsers package for
// turning it into a structured form.
type ApiError struct {
	Type           string
	SourceErr      error
	Body           []byte
	HttpStatusCode int

	DiscordCode int
}

var _ error = &ApiError{}

func (e *ApiError) Error() string {
	var err string
	if e.SourceErr != nil {
		err = e.SourceErr.Error()
	} else {
		err = string(e.Body)
	}
	if e.HttpStatusCode == 0 {
		return fmt.Sprintf(
			"discord request failed before a response was received, type '%s': %v",
			e.Type, err,
		)
	}
	return fmt.Sprintf(
		"discord request failed with type '%s', httpStatus: '%d': %v",
		e.Type, e.HttpStatusCode, err,
	)
}

// Is method is required by errors.Is() to properly distinguish between
// different types -vs- same pointer to the same type.
// Without it, errors.Is(err, &ApiError{}) returns false:
// ok := errors.Is(errors.Join(&nostrum_errors.ApiError{}), &nostrum_errors.ApiError{})
// ^ would be false
func (e *ApiError) Is(other error) bool {
	var err *ApiError
	return errors.As(other, &err) && err != nil
}

// Unwrap exposes the transport-level cause so callers can reach
// net timeout errors through errors.As.
func (e *ApiError) Unwrap() error {
	return e.SourceErr
}

// DecodeFault reports a success response whose body does not match the
// expected shape. It is not part of the ordinary error surface: a 200
// with an undecodable body means the remote contract is broken and the
// client cannot recover locally, so the pipeline panics with this value.
type DecodeFault struct {
	Route     string
	Body      []byte
	SourceErr error
}

var _ error = &DecodeFault{}

func (e *DecodeFault) Error() string {
	return fmt.Sprintf(
		"discord returned a success response for '%s' that could not be decoded: %v",
		e.Route, e.SourceErr,
	)
}

func (e *DecodeFault) Unwrap() error {
	return e.SourceErr
}
