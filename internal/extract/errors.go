package extract

import (
	"errors"
	"fmt"
)

// Kind refines an ExtractionError. Callers that only care about failure can ignore it.
type Kind string

const (
	KindMalformed   Kind = "malformed"
	KindNotFound    Kind = "not_found"
	KindInvalidSide Kind = "invalid_side"
	KindUpstream    Kind = "upstream"
)

// ExtractionError is the single error type returned by every feed operation.
type ExtractionError struct {
	Op      string
	Kind    Kind
	Message string
	Err     error
}

func (e *ExtractionError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Op == "" {
		return msg
	}
	return e.Op + ": " + msg
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// AsExtractionError attempts to unwrap an error into an ExtractionError.
func AsExtractionError(err error) (*ExtractionError, bool) {
	var exErr *ExtractionError
	if errors.As(err, &exErr) {
		return exErr, true
	}
	return nil, false
}

// KindOf returns the kind of an ExtractionError, or "" for any other error.
func KindOf(err error) Kind {
	if exErr, ok := AsExtractionError(err); ok {
		return exErr.Kind
	}
	return ""
}

// Upstream wraps a transport failure so callers see one error type.
func Upstream(op string, err error) error {
	if err == nil {
		return nil
	}
	if exErr, ok := AsExtractionError(err); ok {
		return exErr
	}
	return &ExtractionError{Op: op, Kind: KindUpstream, Message: "fetching feed", Err: err}
}

func malformed(op, format string, args ...any) error {
	return &ExtractionError{Op: op, Kind: KindMalformed, Message: fmt.Sprintf(format, args...)}
}

func notFound(op, format string, args ...any) error {
	return &ExtractionError{Op: op, Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func invalidSide(op, raw string) error {
	if raw == "" {
		return &ExtractionError{Op: op, Kind: KindInvalidSide, Message: "side is required"}
	}
	return &ExtractionError{Op: op, Kind: KindInvalidSide, Message: fmt.Sprintf("unrecognized side %q", raw)}
}
