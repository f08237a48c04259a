package lbytes

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

func NewReader(bs []byte) *Reader {
	return &Reader{
		bs:  bs,
		pos: 0,
	}
}

func (r *Reader) Position() int {
	return r.pos
}

func (r *Reader) Remaining() int {
	return len(r.bs) - r.pos
}

func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, errors.Wrapf(
			ErrBufferUnderrun,
			"need %d bytes at position %d, %d remaining",
			n, r.pos, r.Remaining(),
		)
	}
	bs := r.bs[r.pos : r.pos+n]
	r.pos += n
	return bs, nil
}

func (r *Reader) ReadUInt8() (uint8, error) {
	bs, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return bs[0], nil
}

func (r *Reader) ReadInt8() (int8, error) {
	b, err := r.ReadUInt8()
	return int8(b), err
}

func (r *Reader) ReadUInt16() (uint16, error) {
	bs, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(bs), nil
}

func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUInt16()
	return int16(v), err
}

func (r *Reader) ReadUInt24() (uint32, error) {
	bs, err := r.take(3)
	if err != nil {
		return 0, err
	}
	return uint32(bs[0])<<16 | uint32(bs[1])<<8 | uint32(bs[2]), nil
}

func (r *Reader) ReadInt32() (int32, error) {
	bs, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(bs)), nil
}

// ReadSmart reads a value stored in one byte when it fits in 7 bits and in
// two bytes, offset by SmartBias, otherwise.
func (r *Reader) ReadSmart() (uint16, error) {
	if r.Remaining() < 1 {
		_, err := r.take(1)
		return 0, err
	}
	if r.bs[r.pos] <= SmartOneByteMax {
		b, err := r.ReadUInt8()
		return uint16(b), err
	}
	v, err := r.ReadUInt16()
	if err != nil {
		return 0, err
	}
	return v - SmartBias, nil
}

// ReadString reads a Windows-1252 string up to the terminator, or up to the
// end of the buffer when there is none.
func (r *Reader) ReadString() (string, error) {
	rest := r.bs[r.pos:]
	end := bytes.IndexByte(rest, StringTerminator)
	raw := rest
	consumed := len(rest)
	if end >= 0 {
		raw = rest[:end]
		consumed = end + 1
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return "", errors.Wrap(err, "ReadString error")
	}
	r.pos += consumed
	return string(decoded), nil
}

func (r *Reader) ReadBytes(n int) ([]byte, error) {
	// return early so that zero-length spans at the end of the buffer succeed
	if n == 0 {
		return []byte{}, nil
	}
	bs, err := r.take(n)
	if err != nil {
		return nil, err
	}
	result := make([]byte, n)
	copy(result, bs)
	return result, nil
}

func (r *Reader) ReadInt(encoding IntEncoding) (int64, error) {
	switch encoding {
	case EncodingU8:
		v, err := r.ReadUInt8()
		return int64(v), err
	case EncodingI8:
		v, err := r.ReadInt8()
		return int64(v), err
	case EncodingU16:
		v, err := r.ReadUInt16()
		return int64(v), err
	case EncodingI16:
		v, err := r.ReadInt16()
		return int64(v), err
	case EncodingU24:
		v, err := r.ReadUInt24()
		return int64(v), err
	case EncodingI32:
		v, err := r.ReadInt32()
		return int64(v), err
	case EncodingSmart:
		v, err := r.ReadSmart()
		return int64(v), err
	case EncodingU16Nullable:
		v, err := r.ReadUInt16()
		if err != nil {
			return 0, err
		}
		if v == NullableShort {
			return -1, nil
		}
		return int64(v), nil
	}
	return 0, errors.Wrapf(ErrUnknownEncoding, "ReadInt encoding %d", encoding)
}
