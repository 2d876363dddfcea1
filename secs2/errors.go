package secs2

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for nil buffers, offsets outside the buffer,
	// out-of-range list indices and values an item can't hold.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrZeroLengthBytes is returned when a header declares zero length bytes.
	ErrZeroLengthBytes = errors.New("number of length bytes may not be zero")

	// ErrTruncated is returned when the buffer ends before the header or payload does.
	ErrTruncated = errors.New("unexpected end of data")

	// ErrLengthRange is returned when a payload length is outside [0, MaxByteSize].
	ErrLengthRange = errors.New("length out of range")

	// ErrFixedWidth is returned when a scalar's payload length differs from its element width.
	ErrFixedWidth = errors.New("illegal data length")

	// ErrAlignment is returned when an array's payload length isn't a multiple of its element width.
	ErrAlignment = errors.New("data length not aligned to element size")

	// ErrDepthLimit is returned when lists are nested deeper than MaxListDepth.
	ErrDepthLimit = errors.New("list nesting depth exceeds limit")
)

// DecodeError records a failure to decode an item from a buffer.
//
// Offset is the position of the item's header byte in the buffer and Length is the
// payload length (element count for lists) declared by the header, or -1 when the
// header could not be read.
type DecodeError struct {
	Offset     int
	Length     int
	FormatCode FormatCode
	Err        error
}

func newDecodeError(offset, length int, fc FormatCode, err error) *DecodeError {
	var decErr *DecodeError
	if errors.As(err, &decErr) {
		return decErr
	}

	return &DecodeError{Offset: offset, Length: length, FormatCode: fc, Err: err}
}

func (e *DecodeError) Error() string {
	if e.Length < 0 {
		return fmt.Sprintf("secs2: decode at offset %d: %v", e.Offset, e.Err)
	}

	return fmt.Sprintf("secs2: decode %s item at offset %d, length %d: %v", e.FormatCode, e.Offset, e.Length, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// A ItemError records a failed item creation.
type ItemError struct {
	err error
}

func newItemError(err error) *ItemError {
	itemErr := &ItemError{}
	if errors.As(err, &itemErr) {
		return itemErr
	}

	return &ItemError{err: err}
}

func newItemErrorf(format string, args ...any) *ItemError {
	return &ItemError{err: fmt.Errorf(format, args...)}
}

func (e *ItemError) Error() string {
	return e.err.Error()
}

func (e *ItemError) Unwrap() error {
	return e.err
}
