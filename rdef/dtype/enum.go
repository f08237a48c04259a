package dtype

import (
	"rune-savior/rdef/dcodec"
	"rune-savior/rdef/lbytes"
)

type Enum struct {
	ID            int32
	KeyType       uint8
	ValueType     uint8
	DefaultString string
	DefaultInt    int32
	StringValues  map[int32]string
	IntValues     map[int32]int32
}

func NewEnum(id int32) Enum {
	return Enum{
		ID:            id,
		DefaultString: "null",
	}
}

// Size returns the number of entries of whichever value map is in use.
func (e Enum) Size() int {
	return len(e.StringValues) + len(e.IntValues)
}

var EnumSchema = dcodec.NewSchema(
	KindEnum,
	TableEnum,
	NewEnum,
	func(e *Enum) int32 { return e.ID },
	[]dcodec.Field[Enum]{
		dcodec.Int[Enum](1, "key_type", lbytes.EncodingU8, func(e *Enum) *uint8 { return &e.KeyType }),
		dcodec.Int[Enum](2, "value_type", lbytes.EncodingU8, func(e *Enum) *uint8 { return &e.ValueType }),
		dcodec.String[Enum](3, "default_string", func(e *Enum) *string { return &e.DefaultString }),
		dcodec.Int[Enum](4, "default_int", lbytes.EncodingI32, func(e *Enum) *int32 { return &e.DefaultInt }),
		dcodec.Map[Enum](
			5, "string_values", lbytes.EncodingU16,
			func(e *Enum) *map[int32]string { return &e.StringValues },
			func(reader *lbytes.Reader) (int32, string, error) {
				k, err := reader.ReadInt32()
				if err != nil {
					return 0, "", err
				}
				v, err := reader.ReadString()
				return k, v, err
			},
			func(writer *lbytes.Writer, k int32, v string) {
				writer.WriteInt32(k)
				writer.WriteString(v)
			},
		),
		dcodec.Map[Enum](
			6, "int_values", lbytes.EncodingU16,
			func(e *Enum) *map[int32]int32 { return &e.IntValues },
			func(reader *lbytes.Reader) (int32, int32, error) {
				k, err := reader.ReadInt32()
				if err != nil {
					return 0, 0, err
				}
				v, err := reader.ReadInt32()
				return k, v, err
			},
			func(writer *lbytes.Writer, k int32, v int32) {
				writer.WriteInt32(k)
				writer.WriteInt32(v)
			},
		),
	},
)
