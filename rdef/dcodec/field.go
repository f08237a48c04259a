package dcodec

import (
	"maps"
	"slices"
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"

	"rune-savior/ds"
	"rune-savior/rdef/lbytes"
)

var (
	ErrTooManyEntries = errors.New("too many entries for the count prefix")
	ErrDuplicateKey   = errors.New("duplicate map key")
)

func Int[T any, V constraints.Integer](
	opcode uint8,
	name string,
	encoding lbytes.IntEncoding,
	ref func(t *T) *V,
) Field[T] {
	return Field[T]{
		Opcode: opcode,
		Name:   name,
		ReadFunc: func(reader *lbytes.Reader, t *T) error {
			v, err := reader.ReadInt(encoding)
			if err != nil {
				return err
			}
			*ref(t) = V(v)
			return nil
		},
		WriteFunc: func(writer *lbytes.Writer, t *T) {
			writer.WriteInt(encoding, int64(*ref(t)))
		},
		EqualFunc: func(a *T, b *T) bool { return *ref(a) == *ref(b) },
		CopyFunc:  func(dst *T, src *T) { *ref(dst) = *ref(src) },
		ValueFunc: func(t *T) any { return *ref(t) },
	}
}

func String[T any](opcode uint8, name string, ref func(t *T) *string) Field[T] {
	return Field[T]{
		Opcode: opcode,
		Name:   name,
		ReadFunc: func(reader *lbytes.Reader, t *T) error {
			s, err := reader.ReadString()
			if err != nil {
				return err
			}
			*ref(t) = s
			return nil
		},
		WriteFunc: func(writer *lbytes.Writer, t *T) {
			writer.WriteString(*ref(t))
		},
		EqualFunc: func(a *T, b *T) bool { return *ref(a) == *ref(b) },
		CopyFunc:  func(dst *T, src *T) { *ref(dst) = *ref(src) },
		ValueFunc: func(t *T) any { return *ref(t) },
	}
}

// Flag is an opcode without payload: its presence sets the field to value.
func Flag[T any](opcode uint8, name string, ref func(t *T) *bool, value bool) Field[T] {
	return Field[T]{
		Opcode: opcode,
		Name:   name,
		ReadFunc: func(_ *lbytes.Reader, t *T) error {
			*ref(t) = value
			return nil
		},
		WriteFunc: func(_ *lbytes.Writer, _ *T) {},
		EqualFunc: func(a *T, b *T) bool { return *ref(a) == *ref(b) },
		CopyFunc:  func(dst *T, src *T) { *ref(dst) = *ref(src) },
		ValueFunc: func(t *T) any { return *ref(t) },
	}
}

// IntList is a count prefix followed by that many integers.
func IntList[T any, V constraints.Integer](
	opcode uint8,
	name string,
	countEncoding lbytes.IntEncoding,
	elementEncoding lbytes.IntEncoding,
	ref func(t *T) *[]V,
) Field[T] {
	return Field[T]{
		Opcode: opcode,
		Name:   name,
		ReadFunc: func(reader *lbytes.Reader, t *T) error {
			count, err := reader.ReadInt(countEncoding)
			if err != nil {
				return err
			}
			if count < 0 {
				return errors.Errorf(`field "%s" has negative count %d`, name, count)
			}
			vs := make([]V, 0, count)
			for i := int64(0); i < count; i++ {
				v, err := reader.ReadInt(elementEncoding)
				if err != nil {
					return err
				}
				vs = append(vs, V(v))
			}
			*ref(t) = vs
			return nil
		},
		WriteFunc: func(writer *lbytes.Writer, t *T) {
			vs := *ref(t)
			if !WriteCount(writer, countEncoding, len(vs), name) {
				return
			}
			for _, v := range vs {
				writer.WriteInt(elementEncoding, int64(v))
			}
		},
		EqualFunc: func(a *T, b *T) bool { return slices.Equal(*ref(a), *ref(b)) },
		CopyFunc:  func(dst *T, src *T) { *ref(dst) = ds.ShallowCopy(*ref(src)) },
		ValueFunc: func(t *T) any { return *ref(t) },
	}
}

// Map is a count prefix followed by that many key/value entries. Entries are
// written in ascending key order.
func Map[T any, K constraints.Integer, V comparable](
	opcode uint8,
	name string,
	countEncoding lbytes.IntEncoding,
	ref func(t *T) *map[K]V,
	readEntry func(reader *lbytes.Reader) (K, V, error),
	writeEntry func(writer *lbytes.Writer, k K, v V),
) Field[T] {
	return Field[T]{
		Opcode: opcode,
		Name:   name,
		ReadFunc: func(reader *lbytes.Reader, t *T) error {
			count, err := reader.ReadInt(countEncoding)
			if err != nil {
				return err
			}
			if count < 0 {
				return errors.Errorf(`field "%s" has negative count %d`, name, count)
			}
			entries := make(map[K]V, count)
			for i := int64(0); i < count; i++ {
				k, v, err := readEntry(reader)
				if err != nil {
					return err
				}
				if _, ok := entries[k]; ok {
					return errors.Wrapf(ErrDuplicateKey, `field "%s" key %d`, name, k)
				}
				entries[k] = v
			}
			*ref(t) = entries
			return nil
		},
		WriteFunc: func(writer *lbytes.Writer, t *T) {
			entries := *ref(t)
			if !WriteCount(writer, countEncoding, len(entries), name) {
				return
			}
			keys := lo.Keys(entries)
			sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
			for _, k := range keys {
				writeEntry(writer, k, entries[k])
			}
		},
		EqualFunc: func(a *T, b *T) bool { return maps.Equal(*ref(a), *ref(b)) },
		CopyFunc:  func(dst *T, src *T) { *ref(dst) = maps.Clone(*ref(src)) },
		ValueFunc: func(t *T) any { return *ref(t) },
	}
}

// WriteCount writes a count prefix, failing the writer when n does not fit.
func WriteCount(writer *lbytes.Writer, encoding lbytes.IntEncoding, n int, name string) bool {
	if int64(n) > encoding.Max() {
		writer.Fail(errors.Wrapf(
			ErrTooManyEntries,
			`field "%s" has %d entries, %s holds at most %d`,
			name, n, encoding, encoding.Max(),
		))
		return false
	}
	writer.WriteInt(encoding, int64(n))
	return true
}
