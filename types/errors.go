package types

import (
	"fmt"

	"github.com/pkg/errors"
)

// InputError reports a malformed client-supplied encoding.
type InputError struct {
	Field string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %s: %v", e.Field, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// DecodeError reports data from the native chain that cannot be mapped to the
// expected schema. Field names the offending value.
type DecodeError struct {
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode %s: %v", e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// SubmissionError reports that the native chain rejected or failed a submit call.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("native submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// ProtocolInconsistencyError reports a block whose event stream does not carry
// exactly one terminal event for an extrinsic.
type ProtocolInconsistencyError struct {
	BlockHash      string
	BlockNumber    uint64
	ExtrinsicIndex uint32
	TerminalEvents int
}

func (e *ProtocolInconsistencyError) Error() string {
	return fmt.Sprintf(
		"block %d (%s) has %d terminal events for extrinsic %d, expected exactly 1",
		e.BlockNumber, e.BlockHash, e.TerminalEvents, e.ExtrinsicIndex,
	)
}

func NewInputError(field string, err error) error {
	return &InputError{Field: field, Err: err}
}

func NewDecodeError(field string, err error) error {
	return &DecodeError{Field: field, Err: err}
}

func NewDecodeErrorf(field string, format string, args ...interface{}) error {
	return &DecodeError{Field: field, Err: errors.Errorf(format, args...)}
}

func NewSubmissionError(err error) error {
	return &SubmissionError{Err: err}
}

func IsInputError(err error) bool {
	var target *InputError
	return errors.As(err, &target)
}

func IsDecodeError(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}

func IsSubmissionError(err error) bool {
	var target *SubmissionError
	return errors.As(err, &target)
}

func IsProtocolInconsistencyError(err error) bool {
	var target *ProtocolInconsistencyError
	return errors.As(err, &target)
}
