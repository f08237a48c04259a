package dtype

import (
	"rune-savior/rdef/dcodec"
	"rune-savior/rdef/lbytes"
)

type Object struct {
	ID                int32               `toml:"id"`
	Inherit           int32               `toml:"inherit"`
	Name              string              `toml:"name"`
	Models            []uint16            `toml:"models"`
	SizeX             uint8               `toml:"size_x"`
	SizeY             uint8               `toml:"size_y"`
	Solid             bool                `toml:"solid"`
	WallOrDoor        int32               `toml:"wall_or_door"`
	AnimationID       int32               `toml:"animation_id"`
	DecorDisplacement uint8               `toml:"decor_displacement"`
	Ambient           int8                `toml:"ambient"`
	Actions           [ActionSlots]string `toml:"actions"`
	Contrast          int8                `toml:"contrast"`
	Rotated           bool                `toml:"rotated"`
	Shadow            bool                `toml:"shadow"`
	BlockingMask      uint8               `toml:"blocking_mask"`
	Params            Params              `toml:"-"`
}

func NewObject(id int32) Object {
	return Object{
		ID:                id,
		Inherit:           dcodec.NoInherit,
		Name:              "null",
		SizeX:             1,
		SizeY:             1,
		Solid:             true,
		WallOrDoor:        -1,
		AnimationID:       -1,
		DecorDisplacement: 16,
		Shadow:            true,
	}
}

var ObjectSchema = dcodec.NewSchema(
	KindObject,
	TableObject,
	NewObject,
	func(o *Object) int32 { return o.ID },
	append(
		[]dcodec.Field[Object]{
			dcodec.String[Object](2, "name", func(o *Object) *string { return &o.Name }),
			dcodec.IntList[Object](
				5, "models", lbytes.EncodingU8, lbytes.EncodingU16,
				func(o *Object) *[]uint16 { return &o.Models },
			),
			dcodec.Int[Object](14, "size_x", lbytes.EncodingU8, func(o *Object) *uint8 { return &o.SizeX }),
			dcodec.Int[Object](15, "size_y", lbytes.EncodingU8, func(o *Object) *uint8 { return &o.SizeY }),
			dcodec.Flag[Object](17, "solid", func(o *Object) *bool { return &o.Solid }, false),
			dcodec.Int[Object](19, "wall_or_door", lbytes.EncodingU8, func(o *Object) *int32 { return &o.WallOrDoor }),
			dcodec.Int[Object](24, "animation_id", lbytes.EncodingU16Nullable, func(o *Object) *int32 { return &o.AnimationID }),
			dcodec.Int[Object](28, "decor_displacement", lbytes.EncodingU8, func(o *Object) *uint8 { return &o.DecorDisplacement }),
			dcodec.Int[Object](29, "ambient", lbytes.EncodingI8, func(o *Object) *int8 { return &o.Ambient }),
		},
		append(
			actionFields[Object](30, "actions", func(o *Object) *[ActionSlots]string { return &o.Actions }),
			dcodec.Int[Object](39, "contrast", lbytes.EncodingI8, func(o *Object) *int8 { return &o.Contrast }),
			dcodec.Flag[Object](62, "rotated", func(o *Object) *bool { return &o.Rotated }, true),
			dcodec.Flag[Object](64, "shadow", func(o *Object) *bool { return &o.Shadow }, false),
			dcodec.Int[Object](69, "blocking_mask", lbytes.EncodingU8, func(o *Object) *uint8 { return &o.BlockingMask }),
			paramsField[Object](func(o *Object) *Params { return &o.Params }),
		)...,
	),
).WithInherit(func(o *Object) int32 { return o.Inherit })
