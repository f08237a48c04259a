// Package rdef holds the asset definition codecs: a byte cursor (lbytes), the
// opcode record format (dcodec), the definition kinds (dtype), the registry
// serving decoded definitions (dregistry), inheritance merging (dmerge) and
// the authoring pipeline (dpack).
package rdef

import (
	"rune-savior/ds"
	"rune-savior/rdef/dcodec"
)

// ToLinkedHashMap lays an entity out field by field in opcode table order,
// which keeps JSON dumps stable and readable.
func ToLinkedHashMap[T any](schema *dcodec.Schema[T], t *T) *ds.LinkedHashMap[string, any] {
	lhm := ds.NewLinkedHashMap[string, any]()
	lhm.Put("kind", string(schema.Kind))
	lhm.Put("id", schema.ID(t))
	if schema.Derivable() {
		lhm.Put("inherit", schema.Inherit(t))
	}
	for _, field := range schema.Fields() {
		lhm.Put(field.Name, field.Value(t))
	}
	return lhm
}
