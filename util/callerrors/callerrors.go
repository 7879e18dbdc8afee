// Package callerrors defines the error taxonomy for microgrid API calls.
//
// A call resolves to exactly one of three kinds of failure:
//   - a TimeoutError, raised locally when the call deadline elapses,
//   - a remote gRPC status error, passed through verbatim,
//   - a configuration/state error from the client itself (sentinel errors).
package callerrors

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TimeoutError reports that a call did not resolve before its deadline.
// It wraps the underlying gRPC status error, so status.Code still reports
// codes.DeadlineExceeded for callers that classify by status.
type TimeoutError struct {
	// Operation is the name of the API call that timed out.
	Operation string

	// Deadline is the effective deadline that was applied to the call.
	Deadline time.Duration

	// Elapsed is how long the call ran before it was given up on.
	Elapsed time.Duration

	// Err is the underlying error, normally a gRPC DeadlineExceeded status.
	Err error
}

// Error returns a human-readable error message.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout: %s exceeded deadline %v after %v: %v",
		e.Operation, e.Deadline, e.Elapsed.Round(time.Millisecond), e.Err)
}

// Unwrap returns the underlying error.
func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// GRPCStatus exposes the underlying gRPC status so status.FromError and
// status.Code see through the wrapper.
func (e *TimeoutError) GRPCStatus() *status.Status {
	if s, ok := status.FromError(e.Err); ok {
		return s
	}
	return status.New(codes.DeadlineExceeded, e.Error())
}

// NewTimeoutError creates a new TimeoutError.
func NewTimeoutError(operation string, deadline, elapsed time.Duration, err error) *TimeoutError {
	return &TimeoutError{
		Operation: operation,
		Deadline:  deadline,
		Elapsed:   elapsed,
		Err:       err,
	}
}

// IsTimeout reports whether err is a timeout. It checks for TimeoutError,
// context.DeadlineExceeded, and gRPC DeadlineExceeded status codes.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}

	var te *TimeoutError
	if errors.As(err, &te) {
		return true
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	if s, ok := status.FromError(err); ok {
		return s.Code() == codes.DeadlineExceeded
	}

	return false
}

// Code returns the gRPC status code carried by err. Local timeouts report
// codes.DeadlineExceeded, nil reports codes.OK, and errors without a status
// report codes.Unknown.
func Code(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return codes.DeadlineExceeded
	}
	return status.Code(err)
}
