// Package dcodec implements the opcode-tagged record format shared by every
// definition kind: a sequence of (opcode, payload) pairs closed by a zero
// byte, where fields holding their default value are left out.
package dcodec

import (
	"fmt"

	"rune-savior/rdef/darchive"
	"rune-savior/rdef/lbytes"
)

type (
	Kind string
	// Field binds one opcode of a kind to the entity field it carries.
	Field[T any] struct {
		Opcode    uint8
		Name      string
		ReadFunc  func(reader *lbytes.Reader, t *T) error
		WriteFunc func(writer *lbytes.Writer, t *T)
		EqualFunc func(a *T, b *T) bool
		CopyFunc  func(dst *T, src *T)
		ValueFunc func(t *T) any
	}
	// Schema is the opcode table of one kind together with how to build its
	// default entity.
	Schema[T any] struct {
		Kind    Kind
		Table   darchive.Table
		New     func(id int32) T
		ID      func(t *T) int32
		Inherit func(t *T) int32

		fields   []Field[T]
		byOpcode map[uint8]int
	}
)

const (
	Terminator            = uint8(0)
	NoInherit             = int32(-1)
	DefaultRecordCapacity = 64
)

func (f Field[T]) Read(reader *lbytes.Reader, t *T) error {
	return f.ReadFunc(reader, t)
}

func (f Field[T]) Write(writer *lbytes.Writer, t *T) {
	f.WriteFunc(writer, t)
}

func (f Field[T]) Equal(a *T, b *T) bool {
	return f.EqualFunc(a, b)
}

func (f Field[T]) Copy(dst *T, src *T) {
	f.CopyFunc(dst, src)
}

func (f Field[T]) Value(t *T) any {
	return f.ValueFunc(t)
}

// NewSchema builds the opcode table for a kind. It panics on a duplicated or
// reserved opcode, since those are mistakes in the table itself.
func NewSchema[T any](
	kind Kind,
	table darchive.Table,
	newFunc func(id int32) T,
	idFunc func(t *T) int32,
	fields []Field[T],
) *Schema[T] {
	byOpcode := make(map[uint8]int, len(fields))
	for i, field := range fields {
		if field.Opcode == Terminator {
			panic(fmt.Sprintf("%s: field %q uses the terminator opcode", kind, field.Name))
		}
		if j, ok := byOpcode[field.Opcode]; ok {
			panic(fmt.Sprintf(
				"%s: opcode %d used by both %q and %q",
				kind, field.Opcode, fields[j].Name, field.Name,
			))
		}
		byOpcode[field.Opcode] = i
	}
	return &Schema[T]{
		Kind:     kind,
		Table:    table,
		New:      newFunc,
		ID:       idFunc,
		fields:   fields,
		byOpcode: byOpcode,
	}
}

// WithInherit marks the kind as derivable through the given accessor.
func (s *Schema[T]) WithInherit(inheritFunc func(t *T) int32) *Schema[T] {
	s.Inherit = inheritFunc
	return s
}

func (s *Schema[T]) Derivable() bool {
	return s.Inherit != nil
}

func (s *Schema[T]) Default(id int32) T {
	return s.New(id)
}

func (s *Schema[T]) Fields() []Field[T] {
	fields := make([]Field[T], len(s.fields))
	copy(fields, s.fields)
	return fields
}

func (s *Schema[T]) Field(opcode uint8) (Field[T], bool) {
	i, ok := s.byOpcode[opcode]
	if !ok {
		return Field[T]{}, false
	}
	return s.fields[i], true
}

// Clone returns a copy of t sharing no slices or maps with it.
func (s *Schema[T]) Clone(t *T) T {
	clone := *t
	for _, field := range s.fields {
		field.Copy(&clone, t)
	}
	return clone
}

// Equal reports whether a and b agree on every field. Ids are not compared.
func (s *Schema[T]) Equal(a *T, b *T) bool {
	for _, field := range s.fields {
		if !field.Equal(a, b) {
			return false
		}
	}
	return true
}
