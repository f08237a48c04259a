package dtype

import (
	"rune-savior/rdef/dcodec"
	"rune-savior/rdef/lbytes"
)

type HealthBar struct {
	ID            int32
	Unknown1      uint16
	Int1          uint8
	Int2          uint8
	Int3          int32
	Int4          uint16
	Int5          uint8
	FrontSpriteID int32
	BackSpriteID  int32
	Width         uint8
	WidthPadding  uint8
}

func NewHealthBar(id int32) HealthBar {
	return HealthBar{
		ID:            id,
		Int1:          255,
		Int2:          255,
		Int3:          -1,
		Int4:          1,
		Int5:          70,
		FrontSpriteID: -1,
		BackSpriteID:  -1,
		Width:         30,
	}
}

var HealthBarSchema = dcodec.NewSchema(
	KindHealthBar,
	TableHealthBar,
	NewHealthBar,
	func(h *HealthBar) int32 { return h.ID },
	[]dcodec.Field[HealthBar]{
		dcodec.Int[HealthBar](1, "unknown_1", lbytes.EncodingU16, func(h *HealthBar) *uint16 { return &h.Unknown1 }),
		dcodec.Int[HealthBar](2, "int_1", lbytes.EncodingU8, func(h *HealthBar) *uint8 { return &h.Int1 }),
		dcodec.Int[HealthBar](3, "int_2", lbytes.EncodingU8, func(h *HealthBar) *uint8 { return &h.Int2 }),
		dcodec.Int[HealthBar](5, "int_4", lbytes.EncodingU16, func(h *HealthBar) *uint16 { return &h.Int4 }),
		dcodec.Int[HealthBar](6, "int_5", lbytes.EncodingU8, func(h *HealthBar) *uint8 { return &h.Int5 }),
		dcodec.Int[HealthBar](7, "front_sprite_id", lbytes.EncodingU16Nullable, func(h *HealthBar) *int32 { return &h.FrontSpriteID }),
		dcodec.Int[HealthBar](8, "back_sprite_id", lbytes.EncodingU16Nullable, func(h *HealthBar) *int32 { return &h.BackSpriteID }),
		dcodec.Int[HealthBar](11, "int_3", lbytes.EncodingU16Nullable, func(h *HealthBar) *int32 { return &h.Int3 }),
		dcodec.Int[HealthBar](14, "width", lbytes.EncodingU8, func(h *HealthBar) *uint8 { return &h.Width }),
		dcodec.Int[HealthBar](15, "width_padding", lbytes.EncodingU8, func(h *HealthBar) *uint8 { return &h.WidthPadding }),
	},
)
