package dcodec

import (
	"github.com/pkg/errors"

	"rune-savior/rdef/lbytes"
)

// Decode builds the entity stored at id from its record bytes. Bytes after
// the terminator are ignored.
func (s *Schema[T]) Decode(id int32, bs []byte) (*T, error) {
	t := s.New(id)
	reader := lbytes.NewReader(bs)
	for {
		opcode, err := reader.ReadUInt8()
		if err != nil {
			err := errors.Wrapf(err, "%s %d: Decode error reading opcode", s.Kind, id)
			return nil, err
		}
		if opcode == Terminator {
			return &t, nil
		}
		field, ok := s.Field(opcode)
		if !ok {
			return nil, ErrUnknownOpcode{
				Kind:     s.Kind,
				Opcode:   opcode,
				Position: reader.Position() - 1,
			}
		}
		if err := field.Read(reader, &t); err != nil {
			err := errors.Wrapf(
				err, `%s %d: Decode error reading field "%s" (opcode %d)`,
				s.Kind, id, field.Name, opcode,
			)
			return nil, err
		}
	}
}
