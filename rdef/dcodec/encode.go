package dcodec

import (
	"github.com/pkg/errors"

	"rune-savior/rdef/lbytes"
)

// Encode writes every field of t that differs from its default, in table
// order, followed by the terminator.
func (s *Schema[T]) Encode(t *T) ([]byte, error) {
	defaults := s.New(s.ID(t))
	writer := lbytes.NewWriter(DefaultRecordCapacity)
	for _, field := range s.fields {
		if field.Equal(t, &defaults) {
			continue
		}
		writer.WriteUInt8(field.Opcode)
		field.Write(writer, t)
	}
	writer.WriteUInt8(Terminator)
	if err := writer.Err(); err != nil {
		err := errors.Wrapf(err, "%s %d: Encode error", s.Kind, s.ID(t))
		return nil, err
	}
	return writer.Bytes(), nil
}
