// Package dmerge overlays an authored definition onto the base definition it
// inherits from.
package dmerge

import (
	"rune-savior/rdef/dcodec"
)

// Merge returns derived with every field it left untouched taken from base,
// along with the names of the inherited fields.
//
// A field counts as untouched when derived holds the kind's default for it.
// Any other value in derived overrides base. A derived field explicitly set
// to its default is therefore indistinguishable from an unset one and still
// inherits a non-default base value.
//
// The id and the inheritance reference are not opcode fields and always
// come from derived.
func Merge[T any](schema *dcodec.Schema[T], base *T, derived *T) (T, []string) {
	defaults := schema.Default(schema.ID(derived))
	merged := schema.Clone(derived)
	var inherited []string
	for _, field := range schema.Fields() {
		if !field.Equal(derived, &defaults) || field.Equal(base, derived) {
			continue
		}
		field.Copy(&merged, base)
		inherited = append(inherited, field.Name)
	}
	return merged, inherited
}
