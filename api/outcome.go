package api

import "net/http"

// outcomeKind partitions every raw transport result into exactly one of
// three cases. The pipeline switches on it exhaustively; nothing else
// inspects status codes.
type outcomeKind int

const (
	outcomeTransportFailure outcomeKind = iota
	outcomeSuccess
	outcomeApplicationError
)

type outcome struct {
	kind   outcomeKind
	status int
	body   []byte
	reason error
}

// classify maps a raw exchange to its outcome. err non-nil means no HTTP
// response was obtained at all. 200 is a success with a body, 204 a
// success without one; every other status is an application-level
// rejection carrying the raw body as its message. Total, deterministic,
// no retry decisions of its own.
func classify(status int, body []byte, err error) outcome {
	switch {
	case err != nil:
		return outcome{kind: outcomeTransportFailure, reason: err}
	case status == http.StatusOK:
		return outcome{kind: outcomeSuccess, status: status, body: body}
	case status == http.StatusNoContent:
		return outcome{kind: outcomeSuccess, status: status}
	default:
		return outcome{kind: outcomeApplicationError, status: status, body: body}
	}
}
