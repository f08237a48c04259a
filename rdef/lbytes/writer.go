package lbytes

import (
	"encoding/binary"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

func NewWriter(capacity int) *Writer {
	return &Writer{
		bs: make([]byte, 0, capacity),
	}
}

func (w *Writer) Len() int {
	return len(w.bs)
}

// Bytes returns the written bytes. The slice aliases the writer's buffer.
func (w *Writer) Bytes() []byte {
	return w.bs
}

// Err returns the first error met while writing. Writes after an error are
// still appended so that offsets stay predictable, but the result should be
// discarded.
func (w *Writer) Err() error {
	return w.err
}

// Fail records err unless an earlier error is already held.
func (w *Writer) Fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *Writer) WriteUInt8(v uint8) {
	w.bs = append(w.bs, v)
}

func (w *Writer) WriteInt8(v int8) {
	w.WriteUInt8(uint8(v))
}

func (w *Writer) WriteUInt16(v uint16) {
	w.bs = binary.BigEndian.AppendUint16(w.bs, v)
}

func (w *Writer) WriteInt16(v int16) {
	w.WriteUInt16(uint16(v))
}

func (w *Writer) WriteUInt24(v uint32) {
	w.bs = append(w.bs, byte(v>>16), byte(v>>8), byte(v))
}

func (w *Writer) WriteInt32(v int32) {
	w.bs = binary.BigEndian.AppendUint32(w.bs, uint32(v))
}

func (w *Writer) WriteSmart(v uint16) {
	if v <= SmartOneByteMax {
		w.WriteUInt8(uint8(v))
		return
	}
	if v > SmartMax {
		w.Fail(errors.Wrapf(ErrSmartOutOfRange, "WriteSmart value %d", v))
		return
	}
	w.WriteUInt16(v + SmartBias)
}

// WriteString writes s as Windows-1252 followed by the terminator. A NUL
// inside s would end the string early on read, so it fails the writer.
func (w *Writer) WriteString(s string) {
	if strings.IndexByte(s, StringTerminator) >= 0 {
		w.Fail(errors.Wrapf(ErrStringHasNUL, "WriteString %q", s))
		return
	}
	encoder := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	encoded, err := encoder.Bytes([]byte(s))
	if err != nil {
		w.Fail(errors.Wrapf(err, "WriteString error encoding %q", s))
		return
	}
	w.bs = append(w.bs, encoded...)
	w.bs = append(w.bs, StringTerminator)
}

func (w *Writer) WriteBytes(bs []byte) {
	w.bs = append(w.bs, bs...)
}

// WriteInt writes v with the given encoding. A value the encoding cannot
// hold fails the writer instead of being truncated.
func (w *Writer) WriteInt(encoding IntEncoding, v int64) {
	switch encoding {
	case EncodingSmart:
		if v < 0 || v > SmartMax {
			w.Fail(errors.Wrapf(ErrSmartOutOfRange, "WriteInt value %d", v))
			return
		}
	case EncodingU8, EncodingI8, EncodingU16, EncodingI16, EncodingU24, EncodingI32, EncodingU16Nullable:
		if v < encoding.Min() || v > encoding.Max() {
			w.Fail(errors.Wrapf(
				ErrValueOutOfRange,
				"WriteInt value %d, %s holds %d..%d",
				v, encoding, encoding.Min(), encoding.Max(),
			))
			return
		}
	}

	switch encoding {
	case EncodingU8:
		w.WriteUInt8(uint8(v))
	case EncodingI8:
		w.WriteInt8(int8(v))
	case EncodingU16:
		w.WriteUInt16(uint16(v))
	case EncodingI16:
		w.WriteInt16(int16(v))
	case EncodingU24:
		w.WriteUInt24(uint32(v))
	case EncodingI32:
		w.WriteInt32(int32(v))
	case EncodingSmart:
		w.WriteSmart(uint16(v))
	case EncodingU16Nullable:
		if v == -1 {
			w.WriteUInt16(NullableShort)
			return
		}
		w.WriteUInt16(uint16(v))
	default:
		w.Fail(errors.Wrapf(ErrUnknownEncoding, "WriteInt encoding %d", encoding))
	}
}
