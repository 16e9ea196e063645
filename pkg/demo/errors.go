package demo

import (
	"errors"
	"fmt"

	dio "github.com/cfoust/sourdemo/pkg/demo/io"
	"github.com/cfoust/sourdemo/pkg/demo/protocol"
)

var (
	ErrTruncated          = dio.ErrTruncated
	ErrInvalidVarint      = dio.ErrInvalidVarint
	ErrInvalidEncoding    = dio.ErrInvalidEncoding
	ErrFrameMismatch      = dio.ErrFrameMismatch
	ErrUnknownMessageKind = protocol.ErrUnknownMessageKind
	ErrCodec              = protocol.ErrCodec

	ErrUnsupportedCommand = errors.New("unsupported command")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrObserver           = errors.New("handler failed")
)

// ParseError locates a failure within the demo.
type ParseError struct {
	// The region being parsed, e.g. "packet" or "datatables"
	Region string
	// Absolute byte offset of the failure
	Offset int64
	// Index of the command being parsed, starting from 0. -1 for the file
	// header.
	Command int
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("demo: %s at offset %d (command %d): %s", e.Region, e.Offset, e.Command, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type ObserverError struct {
	Event string
	Err   error
}

func (e *ObserverError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrObserver, e.Event, e.Err)
}

func (e *ObserverError) Is(target error) bool {
	return target == ErrObserver
}

func (e *ObserverError) Unwrap() error {
	return e.Err
}

// overrun turns a read past the end of a region into a frame mismatch. The
// stream itself was long enough; the declared size was wrong.
func overrun(err error) error {
	if errors.Is(err, dio.ErrTruncated) {
		return fmt.Errorf("%w: read past end of region: %v", ErrFrameMismatch, err)
	}
	return err
}
