package io

import (
	"errors"
	"fmt"
	"io"
)

// Reader pulls regions off an underlying stream and keeps track of the
// absolute byte offset so errors can point at where they happened.
type Reader struct {
	reader io.Reader
	offset int64
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{reader: reader}
}

func (r *Reader) Offset() int64 {
	return r.offset
}

// ReadFull reads exactly n bytes from the stream into a new Buffer.
func (r *Reader) ReadFull(n int) (Buffer, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrFrameMismatch, n)
	}

	buffer := make(Buffer, n)
	read, err := io.ReadFull(r.reader, buffer)
	r.offset += int64(read)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("%w: need %d bytes, stream had %d", ErrTruncated, n, read)
	}
	if err != nil {
		return nil, err
	}

	return buffer, nil
}

// Get decodes fixed-width little-endian records directly off the stream.
func (r *Reader) Get(pieces ...interface{}) error {
	for _, piece := range pieces {
		size := sizeOf(piece)
		if size < 0 {
			return fmt.Errorf("unsupported fixed value %T", piece)
		}

		buffer, err := r.ReadFull(size)
		if err != nil {
			return err
		}

		err = buffer.Get(piece)
		if err != nil {
			return err
		}
	}

	return nil
}

// AtEOF consumes a single byte to check whether the stream is exhausted.
func (r *Reader) AtEOF() (bool, error) {
	var b [1]byte
	n, err := io.ReadFull(r.reader, b[:])
	r.offset += int64(n)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}
