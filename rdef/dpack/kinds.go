package dpack

import (
	"go.uber.org/zap"

	"rune-savior/rdef/darchive"
	"rune-savior/rdef/dcodec"
	"rune-savior/rdef/dtype"
)

// PackerFor returns a packer of kind writing into archive.
func PackerFor(kind dcodec.Kind, archive darchive.Archive, logger *zap.Logger) (DirPacker, bool) {
	switch kind {
	case dtype.KindNpc:
		return NewPacker(dtype.NpcSchema, archive, logger), true
	case dtype.KindObject:
		return NewPacker(dtype.ObjectSchema, archive, logger), true
	case dtype.KindItem:
		return NewPacker(dtype.ItemSchema, archive, logger), true
	case dtype.KindVarbit:
		return NewPacker(dtype.VarbitSchema, archive, logger), true
	case dtype.KindVarp:
		return NewPacker(dtype.VarpSchema, archive, logger), true
	case dtype.KindSequence:
		return NewPacker(dtype.SequenceSchema, archive, logger), true
	case dtype.KindEnum:
		return NewPacker(dtype.EnumSchema, archive, logger), true
	case dtype.KindHealthBar:
		return NewPacker(dtype.HealthBarSchema, archive, logger), true
	case dtype.KindHitsplat:
		return NewPacker(dtype.HitsplatSchema, archive, logger), true
	case dtype.KindStruct:
		return NewPacker(dtype.StructSchema, archive, logger), true
	case dtype.KindTexture:
		return NewPacker(dtype.TextureSchema, archive, logger).WithSkip(skipTexture), true
	}
	return nil, false
}

// A texture without file ids has nothing to draw.
func skipTexture(t *dtype.Texture) string {
	if len(t.FileIDs) == 0 {
		return "no file ids defined"
	}
	return ""
}
