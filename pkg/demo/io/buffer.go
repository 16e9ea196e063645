package io

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	ErrTruncated       = errors.New("truncated")
	ErrInvalidVarint   = errors.New("invalid varint")
	ErrInvalidEncoding = errors.New("invalid encoding")
	ErrFrameMismatch   = errors.New("frame mismatch")
)

// Maximum number of 7-bit groups in a 32-bit varint.
const MaxVarintLen = 5

// Buffer is a cursor over an in-memory region. Reads consume bytes from the
// front of the slice.
type Buffer []byte

func (p Buffer) Len() int {
	return len(p)
}

func (p *Buffer) unmarshalRawValue(value interface{}) error {
	size := binary.Size(value)
	if size < 0 {
		return fmt.Errorf("unsupported fixed value %T", value)
	}

	if size > len(*p) {
		return fmt.Errorf("%w: need %d bytes for %T, have %d", ErrTruncated, size, value, len(*p))
	}

	err := binary.Read(bytes.NewReader((*p)[:size]), binary.LittleEndian, value)
	if err != nil {
		return err
	}

	*p = (*p)[size:]
	return nil
}

// Get decodes fixed-width little-endian records in order. Nothing is consumed
// for a piece that does not fit.
func (p *Buffer) Get(pieces ...interface{}) error {
	for _, piece := range pieces {
		err := p.unmarshalRawValue(piece)
		if err != nil {
			return err
		}
	}

	return nil
}

func (p *Buffer) Put(pieces ...interface{}) error {
	for _, piece := range pieces {
		var buffer bytes.Buffer
		err := binary.Write(&buffer, binary.LittleEndian, piece)
		if err != nil {
			return err
		}

		*p = append(*p, buffer.Bytes()...)
	}

	return nil
}

func (p *Buffer) GetByte() (byte, error) {
	if len(*p) == 0 {
		return 0, fmt.Errorf("%w: need 1 byte", ErrTruncated)
	}

	value := (*p)[0]
	*p = (*p)[1:]
	return value, nil
}

func (p *Buffer) GetU16() (uint16, error) {
	var value uint16
	err := p.Get(&value)
	return value, err
}

func (p *Buffer) GetI32() (int32, error) {
	var value int32
	err := p.Get(&value)
	return value, err
}

// GetBytes returns a copy of the next n bytes.
func (p *Buffer) GetBytes(n int) ([]byte, error) {
	region, err := p.Take(n)
	if err != nil {
		return nil, err
	}

	b := make([]byte, n)
	copy(b, region)
	return b, nil
}

// Take carves the next n bytes off as their own region. The returned Buffer
// shares memory with p.
func (p *Buffer) Take(n int) (Buffer, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrFrameMismatch, n)
	}

	if n > len(*p) {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, n, len(*p))
	}

	region := (*p)[:n:n]
	*p = (*p)[n:]
	return region, nil
}

func (p *Buffer) Skip(n int) error {
	_, err := p.Take(n)
	return err
}

// GetVarUint reads a base-128 varint of at most five groups and reports how
// many bytes it occupied.
func (p *Buffer) GetVarUint() (uint32, int, error) {
	var value uint32
	for i := 0; i < MaxVarintLen; i++ {
		if i >= len(*p) {
			return 0, 0, fmt.Errorf("%w: varint ends after %d bytes", ErrTruncated, i)
		}

		b := (*p)[i]
		value |= uint32(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			*p = (*p)[i+1:]
			return value, i + 1, nil
		}
	}

	return 0, 0, ErrInvalidVarint
}

func (p *Buffer) PutVarUint(value uint32) {
	for value >= 0x80 {
		*p = append(*p, byte(value)|0x80)
		value >>= 7
	}
	*p = append(*p, byte(value))
}

// GetCString reads bytes up to a NUL terminator, which is consumed but not
// returned.
func (p *Buffer) GetCString() (string, error) {
	end := bytes.IndexByte(*p, 0)
	if end < 0 {
		return "", fmt.Errorf("%w: string has no terminator", ErrTruncated)
	}

	raw := (*p)[:end]
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: string is not UTF-8", ErrInvalidEncoding)
	}

	*p = (*p)[end+1:]
	return string(raw), nil
}

func (p *Buffer) PutCString(value string) {
	*p = append(*p, value...)
	*p = append(*p, 0)
}

// Drained reports an error if any bytes remain in the region.
func (p Buffer) Drained() error {
	if len(p) != 0 {
		return fmt.Errorf("%w: %d bytes left in region", ErrFrameMismatch, len(p))
	}

	return nil
}

func sizeOf(value interface{}) int {
	return binary.Size(value)
}
