package dcodec

import (
	"fmt"
)

type (
	ErrUnknownOpcode struct {
		Kind     Kind
		Opcode   uint8
		Position int
	}
)

func (r ErrUnknownOpcode) Error() string {
	return fmt.Sprintf(
		"%s: unknown opcode %d at position %d",
		r.Kind, r.Opcode, r.Position,
	)
}
