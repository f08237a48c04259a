package dregistry

import (
	"sort"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"rune-savior/ds"
	"rune-savior/rdef"
	"rune-savior/rdef/dcodec"
)

type (
	// Table holds the decoded definitions of one kind. It is never mutated
	// after construction.
	Table[T any] struct {
		schema  *dcodec.Schema[T]
		entries map[int32]T
		ids     []int32
		logger  *zap.Logger
	}
	// View is the kind-agnostic side of a Table, used by tooling that walks
	// every kind.
	View interface {
		Kind() dcodec.Kind
		Size() int
		IDs() []int32
		Describe(id int32) (*ds.LinkedHashMap[string, any], bool)
	}
)

func newTable[T any](schema *dcodec.Schema[T], entries map[int32]T, logger *zap.Logger) *Table[T] {
	if entries == nil {
		entries = map[int32]T{}
	}
	ids := lo.Keys(entries)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return &Table[T]{
		schema:  schema,
		entries: entries,
		ids:     ids,
		logger:  logger,
	}
}

func (t *Table[T]) Kind() dcodec.Kind {
	return t.schema.Kind
}

func (t *Table[T]) Schema() *dcodec.Schema[T] {
	return t.schema
}

// Get returns a copy of the definition stored for id.
func (t *Table[T]) Get(id int32) (T, bool) {
	entry, ok := t.entries[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.schema.Clone(&entry), true
}

// GetOrDefault returns the definition stored for id, or a fresh default one
// when id is missing. The default is never stored.
func (t *Table[T]) GetOrDefault(id int32) T {
	if entry, ok := t.Get(id); ok {
		return entry
	}
	t.logger.Warn(
		"definition missing, using default",
		zap.String("kind", string(t.schema.Kind)),
		zap.Int32("id", id),
	)
	return t.schema.Default(id)
}

func (t *Table[T]) Size() int {
	return len(t.entries)
}

// IDs lists the stored ids in ascending order.
func (t *Table[T]) IDs() []int32 {
	return ds.ShallowCopy(t.ids)
}

// All returns a copy of every stored definition keyed by id.
func (t *Table[T]) All() map[int32]T {
	return lo.MapValues(t.entries, func(entry T, _ int32) T {
		return t.schema.Clone(&entry)
	})
}

func (t *Table[T]) Describe(id int32) (*ds.LinkedHashMap[string, any], bool) {
	entry, ok := t.entries[id]
	if !ok {
		return nil, false
	}
	return rdef.ToLinkedHashMap(t.schema, &entry), true
}
