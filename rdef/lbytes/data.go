package lbytes

import (
	"github.com/pkg/errors"
)

type (
	// Reader is a cursor over a fixed byte slice. Reads never go past the
	// original extent of the slice.
	Reader struct {
		bs  []byte
		pos int
	}
	// Writer is a growable buffer mirroring every Reader operation.
	Writer struct {
		bs  []byte
		err error
	}
	// IntEncoding names the wire width of an integer field.
	IntEncoding uint8
)

const (
	EncodingU8 IntEncoding = iota + 1
	EncodingI8
	EncodingU16
	EncodingI16
	EncodingU24
	EncodingI32
	EncodingSmart
	// EncodingU16Nullable is an unsigned short where 0xFFFF stands for -1.
	EncodingU16Nullable
)

const (
	// SmartBias is subtracted from the big-endian short of a two byte smart.
	SmartBias = 0x8000
	// SmartMax is the largest value a smart can hold.
	SmartMax = 0x7FFF
	// SmartOneByteMax is the largest value encoded in a single byte.
	SmartOneByteMax = 0x7F

	StringTerminator = byte(0)
	NullableShort    = 0xFFFF

	DefaultWriterCapacity = 4096
)

var (
	ErrBufferUnderrun  = errors.New("buffer underrun")
	ErrSmartOutOfRange = errors.New("smart value out of range")
	ErrUnknownEncoding = errors.New("unknown integer encoding")
	ErrValueOutOfRange = errors.New("value out of range for encoding")
	ErrStringHasNUL    = errors.New("string contains the terminator byte")
)

func (e IntEncoding) String() string {
	switch e {
	case EncodingU8:
		return "u8"
	case EncodingI8:
		return "i8"
	case EncodingU16:
		return "u16"
	case EncodingI16:
		return "i16"
	case EncodingU24:
		return "u24"
	case EncodingI32:
		return "i32"
	case EncodingSmart:
		return "smart"
	case EncodingU16Nullable:
		return "u16_nullable"
	}
	return "unknown"
}

// Max returns the largest value representable with the encoding.
func (e IntEncoding) Max() int64 {
	switch e {
	case EncodingU8:
		return 0xFF
	case EncodingI8:
		return 0x7F
	case EncodingU16:
		return 0xFFFF
	case EncodingI16:
		return 0x7FFF
	case EncodingU24:
		return 0xFFFFFF
	case EncodingI32:
		return 0x7FFFFFFF
	case EncodingSmart:
		return SmartMax
	case EncodingU16Nullable:
		return NullableShort - 1
	}
	return 0
}

// Min returns the smallest value representable with the encoding.
func (e IntEncoding) Min() int64 {
	switch e {
	case EncodingI8:
		return -0x80
	case EncodingI16:
		return -0x8000
	case EncodingI32:
		return -0x80000000
	case EncodingU16Nullable:
		return -1
	}
	return 0
}
