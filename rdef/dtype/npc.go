package dtype

import (
	"rune-savior/rdef/dcodec"
	"rune-savior/rdef/lbytes"
)

type Npc struct {
	ID             int32               `toml:"id"`
	Inherit        int32               `toml:"inherit"`
	Name           string              `toml:"name"`
	Models         []uint16            `toml:"models"`
	Size           uint8               `toml:"size"`
	StandAnim      int32               `toml:"stand_anim"`
	WalkAnim       int32               `toml:"walk_anim"`
	Actions        [ActionSlots]string `toml:"actions"`
	ChatheadModels []uint16            `toml:"chathead_models"`
	MinimapVisible bool                `toml:"minimap_visible"`
	CombatLevel    int32               `toml:"combat_level"`
	WidthScale     uint16              `toml:"width_scale"`
	HeightScale    uint16              `toml:"height_scale"`
	RenderPriority bool                `toml:"render_priority"`
	Rotation       uint16              `toml:"rotation"`
	Interactable   bool                `toml:"interactable"`
	Params         Params              `toml:"-"`
}

func NewNpc(id int32) Npc {
	return Npc{
		ID:             id,
		Inherit:        dcodec.NoInherit,
		Name:           "null",
		Size:           1,
		StandAnim:      -1,
		WalkAnim:       -1,
		MinimapVisible: true,
		CombatLevel:    -1,
		WidthScale:     128,
		HeightScale:    128,
		Rotation:       32,
		Interactable:   true,
	}
}

var NpcSchema = dcodec.NewSchema(
	KindNpc,
	TableNpc,
	NewNpc,
	func(n *Npc) int32 { return n.ID },
	append(
		[]dcodec.Field[Npc]{
			dcodec.IntList[Npc](
				1, "models", lbytes.EncodingU8, lbytes.EncodingU16,
				func(n *Npc) *[]uint16 { return &n.Models },
			),
			dcodec.String[Npc](2, "name", func(n *Npc) *string { return &n.Name }),
			dcodec.Int[Npc](12, "size", lbytes.EncodingU8, func(n *Npc) *uint8 { return &n.Size }),
			dcodec.Int[Npc](13, "stand_anim", lbytes.EncodingU16Nullable, func(n *Npc) *int32 { return &n.StandAnim }),
			dcodec.Int[Npc](14, "walk_anim", lbytes.EncodingU16Nullable, func(n *Npc) *int32 { return &n.WalkAnim }),
		},
		append(
			actionFields[Npc](30, "actions", func(n *Npc) *[ActionSlots]string { return &n.Actions }),
			dcodec.IntList[Npc](
				60, "chathead_models", lbytes.EncodingU8, lbytes.EncodingU16,
				func(n *Npc) *[]uint16 { return &n.ChatheadModels },
			),
			dcodec.Flag[Npc](93, "minimap_visible", func(n *Npc) *bool { return &n.MinimapVisible }, false),
			dcodec.Int[Npc](95, "combat_level", lbytes.EncodingU16Nullable, func(n *Npc) *int32 { return &n.CombatLevel }),
			dcodec.Int[Npc](97, "width_scale", lbytes.EncodingU16, func(n *Npc) *uint16 { return &n.WidthScale }),
			dcodec.Int[Npc](98, "height_scale", lbytes.EncodingU16, func(n *Npc) *uint16 { return &n.HeightScale }),
			dcodec.Flag[Npc](99, "render_priority", func(n *Npc) *bool { return &n.RenderPriority }, true),
			dcodec.Int[Npc](103, "rotation", lbytes.EncodingU16, func(n *Npc) *uint16 { return &n.Rotation }),
			dcodec.Flag[Npc](107, "interactable", func(n *Npc) *bool { return &n.Interactable }, false),
			paramsField[Npc](func(n *Npc) *Params { return &n.Params }),
		)...,
	),
).WithInherit(func(n *Npc) int32 { return n.Inherit })
