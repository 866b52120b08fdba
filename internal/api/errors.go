package api

import (
	"errors"
	"fmt"
)

// ErrBlankInput is returned when a request would be sent with an empty
// required field after trimming.
var ErrBlankInput = errors.New("required input is blank")

// AppError is an application-level failure: the backend produced a parsed
// response with success=false and an error message of its own.
type AppError struct {
	Message string
}

func (e *AppError) Error() string {
	if e.Message == "" {
		return "request failed"
	}
	return e.Message
}

// Is allows errors.Is comparison against another *AppError.
func (e *AppError) Is(target error) bool {
	_, ok := target.(*AppError)
	return ok
}

// TransportError is a transport-level failure: the call failed before or
// instead of producing a parsed response (network failure, non-2xx status,
// non-JSON body).
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is comparison against another *TransportError.
func (e *TransportError) Is(target error) bool {
	_, ok := target.(*TransportError)
	return ok
}

// IsAppError reports whether err carries a backend-supplied error message.
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// IsTransportError reports whether err is a network/decode failure.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
