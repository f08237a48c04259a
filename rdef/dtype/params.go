package dtype

import (
	"encoding/json"

	"rune-savior/rdef/dcodec"
	"rune-savior/rdef/lbytes"
)

type (
	// Param is a single script parameter value, either an int or a string.
	Param struct {
		IsString bool
		Int      int32
		Str      string
	}
	Params map[int32]Param
)

func IntParam(v int32) Param {
	return Param{Int: v}
}

func StringParam(s string) Param {
	return Param{IsString: true, Str: s}
}

func (p Param) MarshalJSON() ([]byte, error) {
	if p.IsString {
		return json.Marshal(p.Str)
	}
	return json.Marshal(p.Int)
}

func readParam(reader *lbytes.Reader) (int32, Param, error) {
	isString, err := reader.ReadUInt8()
	if err != nil {
		return 0, Param{}, err
	}
	key, err := reader.ReadUInt24()
	if err != nil {
		return 0, Param{}, err
	}
	if isString == 1 {
		s, err := reader.ReadString()
		return int32(key), StringParam(s), err
	}
	v, err := reader.ReadInt32()
	return int32(key), IntParam(v), err
}

func writeParam(writer *lbytes.Writer, key int32, p Param) {
	if p.IsString {
		writer.WriteUInt8(1)
		writer.WriteUInt24(uint32(key))
		writer.WriteString(p.Str)
		return
	}
	writer.WriteUInt8(0)
	writer.WriteUInt24(uint32(key))
	writer.WriteInt32(p.Int)
}

func paramsField[T any](ref func(t *T) *Params) dcodec.Field[T] {
	return dcodec.Map[T](
		OpcodeParams,
		"params",
		lbytes.EncodingU8,
		func(t *T) *map[int32]Param { return (*map[int32]Param)(ref(t)) },
		readParam,
		writeParam,
	)
}
