package dtype

import (
	"rune-savior/rdef/dcodec"
	"rune-savior/rdef/lbytes"
)

type Varp struct {
	ID         int32
	ConfigType uint16
}

func NewVarp(id int32) Varp {
	return Varp{ID: id}
}

var VarpSchema = dcodec.NewSchema(
	KindVarp,
	TableVarp,
	NewVarp,
	func(v *Varp) int32 { return v.ID },
	[]dcodec.Field[Varp]{
		dcodec.Int[Varp](5, "config_type", lbytes.EncodingU16, func(v *Varp) *uint16 { return &v.ConfigType }),
	},
)
