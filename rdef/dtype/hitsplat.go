package dtype

import (
	"rune-savior/rdef/dcodec"
	"rune-savior/rdef/lbytes"
)

type Hitsplat struct {
	ID              int32
	FontID          int32
	TextColor       int32
	IconSprite      int32
	LeftSprite      int32
	MiddleSprite    int32
	RightSprite     int32
	ScrollToOffsetX int16
	Format          string
	DisplayCycles   uint16
	ScrollToOffsetY int16
	UseDamage       int32
	TextOffsetY     int16
	FadeStartCycle  int32
}

func NewHitsplat(id int32) Hitsplat {
	return Hitsplat{
		ID:             id,
		FontID:         -1,
		TextColor:      0xFFFFFF,
		IconSprite:     -1,
		LeftSprite:     -1,
		MiddleSprite:   -1,
		RightSprite:    -1,
		DisplayCycles:  70,
		UseDamage:      -1,
		FadeStartCycle: -1,
	}
}

var HitsplatSchema = dcodec.NewSchema(
	KindHitsplat,
	TableHitsplat,
	NewHitsplat,
	func(h *Hitsplat) int32 { return h.ID },
	[]dcodec.Field[Hitsplat]{
		dcodec.Int[Hitsplat](1, "font_id", lbytes.EncodingU16Nullable, func(h *Hitsplat) *int32 { return &h.FontID }),
		dcodec.Int[Hitsplat](2, "text_color", lbytes.EncodingU24, func(h *Hitsplat) *int32 { return &h.TextColor }),
		dcodec.Int[Hitsplat](3, "icon_sprite", lbytes.EncodingU16Nullable, func(h *Hitsplat) *int32 { return &h.IconSprite }),
		dcodec.Int[Hitsplat](4, "left_sprite", lbytes.EncodingU16Nullable, func(h *Hitsplat) *int32 { return &h.LeftSprite }),
		dcodec.Int[Hitsplat](5, "middle_sprite", lbytes.EncodingU16Nullable, func(h *Hitsplat) *int32 { return &h.MiddleSprite }),
		dcodec.Int[Hitsplat](6, "right_sprite", lbytes.EncodingU16Nullable, func(h *Hitsplat) *int32 { return &h.RightSprite }),
		dcodec.Int[Hitsplat](7, "scroll_to_offset_x", lbytes.EncodingI16, func(h *Hitsplat) *int16 { return &h.ScrollToOffsetX }),
		dcodec.String[Hitsplat](8, "format", func(h *Hitsplat) *string { return &h.Format }),
		dcodec.Int[Hitsplat](9, "display_cycles", lbytes.EncodingU16, func(h *Hitsplat) *uint16 { return &h.DisplayCycles }),
		dcodec.Int[Hitsplat](10, "scroll_to_offset_y", lbytes.EncodingI16, func(h *Hitsplat) *int16 { return &h.ScrollToOffsetY }),
		dcodec.Int[Hitsplat](12, "use_damage", lbytes.EncodingU8, func(h *Hitsplat) *int32 { return &h.UseDamage }),
		dcodec.Int[Hitsplat](13, "text_offset_y", lbytes.EncodingI16, func(h *Hitsplat) *int16 { return &h.TextOffsetY }),
		dcodec.Int[Hitsplat](14, "fade_start_cycle", lbytes.EncodingU16Nullable, func(h *Hitsplat) *int32 { return &h.FadeStartCycle }),
	},
)
