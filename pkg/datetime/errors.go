package datetime

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the only error kind returned by this package.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes which argument of which operation was rejected.
type ArgumentError struct {
	Op     string
	Arg    string
	Reason string
	Err    error
}

func (e *ArgumentError) Error() string {
	msg := fmt.Sprintf("datetime: %s: %s: %s", e.Op, e.Arg, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func invalidArg(op, arg, reason string) error {
	return &ArgumentError{Op: op, Arg: arg, Reason: reason}
}

// withOp stamps the calling operation onto errors raised by the pattern
// compiler and parser, which do not know which operation invoked them.
func withOp(op string, err error) error {
	var ae *ArgumentError
	if errors.As(err, &ae) {
		cp := *ae
		cp.Op = op
		return &cp
	}
	return &ArgumentError{Op: op, Arg: "value", Reason: "rejected", Err: err}
}

func patternError(format string, args ...any) error {
	return &ArgumentError{Arg: "pattern", Reason: fmt.Sprintf(format, args...)}
}

func parseError(format string, args ...any) error {
	return &ArgumentError{Arg: "value", Reason: fmt.Sprintf(format, args...)}
}
