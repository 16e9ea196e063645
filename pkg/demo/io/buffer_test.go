package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarintRoundTrip(t *testing.T) {
	values := []uint32{
		0, 1, 0x7f, 0x80, 0x3fff, 0x4000,
		0x1fffff, 0x200000, 0xfffffff, 0x10000000,
		0xffffffff,
	}

	for _, value := range values {
		p := Buffer{}
		p.PutVarUint(value)
		length := p.Len()

		got, n, err := p.GetVarUint()
		require.NoError(t, err)
		assert.Equal(t, value, got)
		assert.Equal(t, length, n, "should report bytes consumed")
		assert.Equal(t, 0, p.Len())
		assert.LessOrEqual(t, n, MaxVarintLen)
	}
}

func TestVarintLengths(t *testing.T) {
	for value, expected := range map[uint32]int{
		0:          1,
		0x7f:       1,
		0x80:       2,
		0x3fff:     2,
		0x4000:     3,
		0xffffffff: 5,
	} {
		p := Buffer{}
		p.PutVarUint(value)
		assert.Equal(t, expected, p.Len(), "length of %#x", value)
	}
}

func TestVarintTooLong(t *testing.T) {
	p := Buffer{0xff, 0xff, 0xff, 0xff, 0xff}
	_, _, err := p.GetVarUint()
	assert.ErrorIs(t, err, ErrInvalidVarint)

	p = Buffer{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	_, _, err = p.GetVarUint()
	assert.ErrorIs(t, err, ErrInvalidVarint)
}

func TestVarintTruncated(t *testing.T) {
	p := Buffer{0x80, 0x80}
	_, _, err := p.GetVarUint()
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestFixedRecords(t *testing.T) {
	type Record struct {
		A uint8
		B int32
		C float32
		D [3]byte
	}

	before := Record{A: 7, B: -2, C: 1.5, D: [3]byte{'a', 'b', 'c'}}

	p := Buffer{}
	require.NoError(t, p.Put(before))
	assert.Equal(t, 1+4+4+3, p.Len(), "records should not be padded")

	var after Record
	require.NoError(t, p.Get(&after))
	assert.Equal(t, before, after)
	assert.NoError(t, p.Drained())
}

func TestFixedTruncated(t *testing.T) {
	p := Buffer{1, 2, 3}

	var value int32
	err := p.Get(&value)
	assert.ErrorIs(t, err, ErrTruncated)
	assert.Equal(t, 3, p.Len(), "short read should not consume")
}

func TestCString(t *testing.T) {
	p := Buffer{}
	p.PutCString("CCSPlayer")
	p.PutCString("")

	value, err := p.GetCString()
	require.NoError(t, err)
	assert.Equal(t, "CCSPlayer", value)

	value, err = p.GetCString()
	require.NoError(t, err)
	assert.Equal(t, "", value)
	assert.NoError(t, p.Drained())
}

func TestCStringErrors(t *testing.T) {
	p := Buffer("no terminator")
	_, err := p.GetCString()
	assert.ErrorIs(t, err, ErrTruncated)

	p = Buffer{0xff, 0xfe, 0x00}
	_, err = p.GetCString()
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestTakeAndDrain(t *testing.T) {
	p := Buffer{1, 2, 3, 4, 5}

	region, err := p.Take(3)
	require.NoError(t, err)
	assert.Equal(t, Buffer{1, 2, 3}, region)
	assert.Equal(t, 2, p.Len())

	_, err = region.GetU16()
	require.NoError(t, err)
	assert.ErrorIs(t, region.Drained(), ErrFrameMismatch)

	_, err = p.Take(3)
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = p.Take(-1)
	assert.ErrorIs(t, err, ErrFrameMismatch)
}

func TestTakeDoesNotGrowIntoParent(t *testing.T) {
	p := Buffer{1, 2, 3, 4}
	region, err := p.Take(2)
	require.NoError(t, err)

	region = append(region, 9)
	assert.Equal(t, Buffer{3, 4}, p, "appending to a region should not clobber its parent")
}

func TestReader(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{1, 0, 0, 0, 9, 8, 7}))

	var value int32
	require.NoError(t, r.Get(&value))
	assert.Equal(t, int32(1), value)
	assert.Equal(t, int64(4), r.Offset())

	region, err := r.ReadFull(2)
	require.NoError(t, err)
	assert.Equal(t, Buffer{9, 8}, region)

	_, err = r.ReadFull(2)
	assert.ErrorIs(t, err, ErrTruncated)

	done, err := r.AtEOF()
	require.NoError(t, err)
	assert.True(t, done)
}
