// Package dtype holds the definition kinds stored in the archive and the
// opcode table of each.
package dtype

import (
	"rune-savior/rdef/darchive"
	"rune-savior/rdef/dcodec"
)

const (
	KindNpc       = dcodec.Kind("npc")
	KindObject    = dcodec.Kind("object")
	KindItem      = dcodec.Kind("item")
	KindVarbit    = dcodec.Kind("varbit")
	KindVarp      = dcodec.Kind("varp")
	KindSequence  = dcodec.Kind("sequence")
	KindEnum      = dcodec.Kind("enum")
	KindHealthBar = dcodec.Kind("health_bar")
	KindHitsplat  = dcodec.Kind("hitsplat")
	KindStruct    = dcodec.Kind("struct")
	KindTexture   = dcodec.Kind("texture")
)

const (
	IndexConfigs       = uint8(2)
	IndexTextures      = uint8(9)
	IndexClientScripts = uint8(12)
)

var (
	TableEnum          = darchive.Table{Index: IndexConfigs, Group: 8}
	TableNpc           = darchive.Table{Index: IndexConfigs, Group: 9}
	TableItem          = darchive.Table{Index: IndexConfigs, Group: 10}
	TableObject        = darchive.Table{Index: IndexConfigs, Group: 6}
	TableSequence      = darchive.Table{Index: IndexConfigs, Group: 12}
	TableVarbit        = darchive.Table{Index: IndexConfigs, Group: 14}
	TableVarp          = darchive.Table{Index: IndexConfigs, Group: 16}
	TableHitsplat      = darchive.Table{Index: IndexConfigs, Group: 32}
	TableHealthBar     = darchive.Table{Index: IndexConfigs, Group: 33}
	TableStruct        = darchive.Table{Index: IndexConfigs, Group: 34}
	TableTexture       = darchive.Table{Index: IndexTextures, Group: 0}
	TableClientScripts = darchive.Table{Index: IndexClientScripts, Group: 0}
)

const (
	OpcodeParams = uint8(249)
	ActionSlots  = 5
)

// Kinds lists every kind in load order.
var Kinds = []dcodec.Kind{
	KindNpc,
	KindObject,
	KindItem,
	KindVarbit,
	KindVarp,
	KindSequence,
	KindEnum,
	KindHealthBar,
	KindHitsplat,
	KindStruct,
	KindTexture,
}

// actionFields maps ActionSlots consecutive opcodes, starting at first, to
// the slots of an action array.
func actionFields[T any](first uint8, name string, ref func(t *T) *[ActionSlots]string) []dcodec.Field[T] {
	fields := make([]dcodec.Field[T], 0, ActionSlots)
	for i := 0; i < ActionSlots; i++ {
		slot := i
		fields = append(fields, dcodec.String[T](
			first+uint8(slot),
			name+"_"+string(rune('1'+slot)),
			func(t *T) *string { return &ref(t)[slot] },
		))
	}
	return fields
}
