package lbytes

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_ReadInt32(t *testing.T) {
	reader := NewReader(
		[]byte{
			3, 4, 1, 3,
			78, 56, 34, 12,
		},
	)

	resultInt1, err := reader.ReadInt32()
	assert.NoError(t, err)
	assert.Equal(t, int32(50594051), resultInt1)

	resultInt2, err := reader.ReadInt32()
	assert.NoError(t, err)
	assert.Equal(t, int32(1312301580), resultInt2)
	assert.Equal(t, 0, reader.Remaining())
}

func TestReader_FixedWidths(t *testing.T) {
	reader := NewReader(
		[]byte{
			0xFF,
			0xFF,
			0x12, 0x34,
			0xFF, 0xFE,
			0x01, 0x02, 0x03,
		},
	)

	u8, err := reader.ReadUInt8()
	require.NoError(t, err)
	assert.Equal(t, uint8(255), u8)

	i8, err := reader.ReadInt8()
	require.NoError(t, err)
	assert.Equal(t, int8(-1), i8)

	u16, err := reader.ReadUInt16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), u16)

	i16, err := reader.ReadInt16()
	require.NoError(t, err)
	assert.Equal(t, int16(-2), i16)

	u24, err := reader.ReadUInt24()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x010203), u24)
}

func TestReader_BufferUnderrun(t *testing.T) {
	reader := NewReader([]byte{0x01})

	_, err := reader.ReadUInt16()
	assert.True(t, errors.Is(err, ErrBufferUnderrun))
	// a failed read does not move the cursor
	assert.Equal(t, 0, reader.Position())

	_, err = reader.ReadInt32()
	assert.True(t, errors.Is(err, ErrBufferUnderrun))

	_, err = reader.ReadBytes(2)
	assert.True(t, errors.Is(err, ErrBufferUnderrun))

	b, err := reader.ReadUInt8()
	require.NoError(t, err)
	assert.Equal(t, uint8(1), b)

	_, err = reader.ReadSmart()
	assert.True(t, errors.Is(err, ErrBufferUnderrun))
}

func TestReader_ReadSmart(t *testing.T) {
	tests := map[string]struct {
		in  []byte
		out uint16
	}{
		"zero":          {in: []byte{0x00}, out: 0},
		"one byte max":  {in: []byte{0x7F}, out: 127},
		"two byte min":  {in: []byte{0x80, 0x80}, out: 128},
		"two byte 300":  {in: []byte{0x81, 0x2C}, out: 300},
		"two byte max":  {in: []byte{0xFF, 0xFF}, out: SmartMax},
		"two byte zero": {in: []byte{0x80, 0x00}, out: 0},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			reader := NewReader(test.in)
			v, err := reader.ReadSmart()
			require.NoError(t, err)
			assert.Equal(t, test.out, v)
			assert.Equal(t, 0, reader.Remaining())
		})
	}
}

func TestReader_ReadString(t *testing.T) {
	reader := NewReader([]byte{'a', 'b', 'c', 0, 'c', 'a', 'f', 0xE9, 0, 'e', 'n', 'd'})

	s1, err := reader.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "abc", s1)

	s2, err := reader.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "café", s2)

	// no terminator: stops at the end of the buffer
	s3, err := reader.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "end", s3)
	assert.Equal(t, 0, reader.Remaining())
}

func TestReader_ReadInt_Nullable(t *testing.T) {
	reader := NewReader([]byte{0xFF, 0xFF, 0x00, 0x2A})

	v, err := reader.ReadInt(EncodingU16Nullable)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), v)

	v, err = reader.ReadInt(EncodingU16Nullable)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	_, err = reader.ReadInt(IntEncoding(0))
	assert.True(t, errors.Is(err, ErrUnknownEncoding))
}
