package dtype

import (
	"rune-savior/rdef/dcodec"
)

// Struct is a bag of params keyed by param id.
type Struct struct {
	ID     int32
	Params Params
}

func NewStruct(id int32) Struct {
	return Struct{ID: id}
}

var StructSchema = dcodec.NewSchema(
	KindStruct,
	TableStruct,
	NewStruct,
	func(s *Struct) int32 { return s.ID },
	[]dcodec.Field[Struct]{
		paramsField[Struct](func(s *Struct) *Params { return &s.Params }),
	},
)
