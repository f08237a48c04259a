package dtype

import (
	"rune-savior/rdef/dcodec"
	"rune-savior/rdef/lbytes"
)

type Texture struct {
	ID                 int32    `toml:"id"`
	Inherit            int32    `toml:"inherit"`
	FileIDs            []uint16 `toml:"file_ids"`
	AverageRGB         uint16   `toml:"average_rgb"`
	Transparent        bool     `toml:"transparent"`
	AnimationDirection uint8    `toml:"animation_direction"`
	AnimationSpeed     uint8    `toml:"animation_speed"`
}

func NewTexture(id int32) Texture {
	return Texture{
		ID:      id,
		Inherit: dcodec.NoInherit,
	}
}

var TextureSchema = dcodec.NewSchema(
	KindTexture,
	TableTexture,
	NewTexture,
	func(t *Texture) int32 { return t.ID },
	[]dcodec.Field[Texture]{
		dcodec.IntList[Texture](
			1, "file_ids", lbytes.EncodingU8, lbytes.EncodingU16,
			func(t *Texture) *[]uint16 { return &t.FileIDs },
		),
		dcodec.Int[Texture](2, "average_rgb", lbytes.EncodingU16, func(t *Texture) *uint16 { return &t.AverageRGB }),
		dcodec.Flag[Texture](3, "transparent", func(t *Texture) *bool { return &t.Transparent }, true),
		dcodec.Int[Texture](4, "animation_direction", lbytes.EncodingU8, func(t *Texture) *uint8 { return &t.AnimationDirection }),
		dcodec.Int[Texture](5, "animation_speed", lbytes.EncodingU8, func(t *Texture) *uint8 { return &t.AnimationSpeed }),
	},
).WithInherit(func(t *Texture) int32 { return t.Inherit })
