package dtype

import (
	"rune-savior/rdef/dcodec"
	"rune-savior/rdef/lbytes"
)

// Varbit is a bit range inside a varp. The three fields share opcode 1.
type Varbit struct {
	ID                  int32
	Index               uint16
	LeastSignificantBit uint8
	MostSignificantBit  uint8
}

func NewVarbit(id int32) Varbit {
	return Varbit{ID: id}
}

var varbitBitsField = dcodec.Field[Varbit]{
	Opcode: 1,
	Name:   "bits",
	ReadFunc: func(reader *lbytes.Reader, v *Varbit) error {
		index, err := reader.ReadUInt16()
		if err != nil {
			return err
		}
		lsb, err := reader.ReadUInt8()
		if err != nil {
			return err
		}
		msb, err := reader.ReadUInt8()
		if err != nil {
			return err
		}
		v.Index, v.LeastSignificantBit, v.MostSignificantBit = index, lsb, msb
		return nil
	},
	WriteFunc: func(writer *lbytes.Writer, v *Varbit) {
		writer.WriteUInt16(v.Index)
		writer.WriteUInt8(v.LeastSignificantBit)
		writer.WriteUInt8(v.MostSignificantBit)
	},
	EqualFunc: func(a *Varbit, b *Varbit) bool {
		return a.Index == b.Index &&
			a.LeastSignificantBit == b.LeastSignificantBit &&
			a.MostSignificantBit == b.MostSignificantBit
	},
	CopyFunc: func(dst *Varbit, src *Varbit) {
		dst.Index, dst.LeastSignificantBit, dst.MostSignificantBit = src.Index, src.LeastSignificantBit, src.MostSignificantBit
	},
	ValueFunc: func(v *Varbit) any {
		return [3]int{int(v.Index), int(v.LeastSignificantBit), int(v.MostSignificantBit)}
	},
}

var VarbitSchema = dcodec.NewSchema(
	KindVarbit,
	TableVarbit,
	NewVarbit,
	func(v *Varbit) int32 { return v.ID },
	[]dcodec.Field[Varbit]{varbitBitsField},
)
