package lbytes

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteSmart(t *testing.T) {
	tests := map[string]struct {
		in  uint16
		out []byte
	}{
		"zero":         {in: 0, out: []byte{0x00}},
		"one byte max": {in: 127, out: []byte{0x7F}},
		"two byte min": {in: 128, out: []byte{0x80, 0x80}},
		"two byte max": {in: SmartMax, out: []byte{0xFF, 0xFF}},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			writer := NewWriter(0)
			writer.WriteSmart(test.in)
			require.NoError(t, writer.Err())
			assert.Equal(t, test.out, writer.Bytes())
		})
	}
}

func TestWriter_WriteSmart_OutOfRange(t *testing.T) {
	writer := NewWriter(0)
	writer.WriteSmart(SmartMax + 1)
	assert.True(t, errors.Is(writer.Err(), ErrSmartOutOfRange))

	writer = NewWriter(0)
	writer.WriteInt(EncodingSmart, -1)
	assert.True(t, errors.Is(writer.Err(), ErrSmartOutOfRange))
}

func TestWriter_SmartFullRange(t *testing.T) {
	writer := NewWriter(DefaultWriterCapacity)
	for v := 0; v <= SmartMax; v++ {
		writer.WriteSmart(uint16(v))
	}
	require.NoError(t, writer.Err())

	reader := NewReader(writer.Bytes())
	for v := 0; v <= SmartMax; v++ {
		got, err := reader.ReadSmart()
		require.NoError(t, err)
		require.Equal(t, uint16(v), got)
	}
	assert.Equal(t, 0, reader.Remaining())
}

func TestWriter_WriteString(t *testing.T) {
	writer := NewWriter(0)
	writer.WriteString("abc")
	writer.WriteString("")
	writer.WriteString("café")
	require.NoError(t, writer.Err())
	assert.Equal(
		t,
		[]byte{'a', 'b', 'c', 0, 0, 'c', 'a', 'f', 0xE9, 0},
		writer.Bytes(),
	)
}

func TestWriter_WriteIntThenRead(t *testing.T) {
	tests := []struct {
		encoding IntEncoding
		value    int64
		width    int
	}{
		{EncodingU8, 200, 1},
		{EncodingI8, -100, 1},
		{EncodingU16, 65000, 2},
		{EncodingI16, -32000, 2},
		{EncodingU24, 0xABCDEF, 3},
		{EncodingI32, -123456789, 4},
		{EncodingSmart, 5, 1},
		{EncodingSmart, 4000, 2},
		{EncodingU16Nullable, -1, 2},
		{EncodingU16Nullable, 1234, 2},
	}
	for _, test := range tests {
		t.Run(test.encoding.String(), func(t *testing.T) {
			writer := NewWriter(0)
			writer.WriteInt(test.encoding, test.value)
			require.NoError(t, writer.Err())
			assert.Equal(t, test.width, writer.Len())

			reader := NewReader(writer.Bytes())
			v, err := reader.ReadInt(test.encoding)
			require.NoError(t, err)
			assert.Equal(t, test.value, v)
		})
	}
}

func TestWriter_GrowsPastCapacity(t *testing.T) {
	writer := NewWriter(1)
	writer.WriteInt32(1)
	writer.WriteBytes([]byte{1, 2, 3})
	assert.Equal(t, 7, writer.Len())
}

func TestWriter_WriteInt_OutOfRange(t *testing.T) {
	tests := []struct {
		encoding IntEncoding
		value    int64
	}{
		{EncodingU8, -1},
		{EncodingU8, 256},
		{EncodingI8, -129},
		{EncodingI8, 128},
		{EncodingU16, -1},
		{EncodingU16, 0x10000},
		{EncodingI16, -0x8001},
		{EncodingI16, 0x8000},
		{EncodingU24, -1},
		{EncodingU24, 0x1000000},
		{EncodingI32, -0x80000001},
		{EncodingI32, 0x80000000},
		{EncodingU16Nullable, -2},
		{EncodingU16Nullable, NullableShort},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%s %d", test.encoding, test.value), func(t *testing.T) {
			writer := NewWriter(0)
			writer.WriteInt(test.encoding, test.value)
			assert.True(t, errors.Is(writer.Err(), ErrValueOutOfRange), writer.Err())
			assert.Equal(t, 0, writer.Len())
		})
	}
}

func TestWriter_WriteInt_Bounds(t *testing.T) {
	for _, encoding := range []IntEncoding{
		EncodingU8, EncodingI8, EncodingU16, EncodingI16, EncodingU24, EncodingI32, EncodingU16Nullable,
	} {
		t.Run(encoding.String(), func(t *testing.T) {
			writer := NewWriter(0)
			writer.WriteInt(encoding, encoding.Min())
			writer.WriteInt(encoding, encoding.Max())
			require.NoError(t, writer.Err())

			reader := NewReader(writer.Bytes())
			low, err := reader.ReadInt(encoding)
			require.NoError(t, err)
			high, err := reader.ReadInt(encoding)
			require.NoError(t, err)
			assert.Equal(t, encoding.Min(), low)
			assert.Equal(t, encoding.Max(), high)
		})
	}
}

func TestWriter_WriteString_NUL(t *testing.T) {
	writer := NewWriter(0)
	writer.WriteString("a\x00b")
	assert.True(t, errors.Is(writer.Err(), ErrStringHasNUL))
	assert.Equal(t, 0, writer.Len())
}
