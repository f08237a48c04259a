package dcodec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rune-savior/rdef/darchive"
	"rune-savior/rdef/lbytes"
)

type widget struct {
	ID     int32
	Name   string
	Size   uint8
	Anim   int32
	Models []uint16
	Solid  bool
	Labels map[int32]string
}

func newWidget(id int32) widget {
	return widget{
		ID:    id,
		Name:  "null",
		Size:  1,
		Anim:  -1,
		Solid: true,
	}
}

var widgetSchema = NewSchema[widget](
	"widget",
	darchive.Table{Index: 2, Group: 99},
	newWidget,
	func(w *widget) int32 { return w.ID },
	[]Field[widget]{
		String[widget](2, "name", func(w *widget) *string { return &w.Name }),
		Int[widget](12, "size", lbytes.EncodingU8, func(w *widget) *uint8 { return &w.Size }),
		Int[widget](13, "anim", lbytes.EncodingU16Nullable, func(w *widget) *int32 { return &w.Anim }),
		IntList[widget](
			1, "models", lbytes.EncodingU8, lbytes.EncodingU16,
			func(w *widget) *[]uint16 { return &w.Models },
		),
		Flag[widget](17, "solid", func(w *widget) *bool { return &w.Solid }, false),
		Map[widget](
			5, "labels", lbytes.EncodingU16,
			func(w *widget) *map[int32]string { return &w.Labels },
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
	},
)

func TestEncode_DefaultIsTerminatorOnly(t *testing.T) {
	w := widgetSchema.Default(5)
	bs, err := widgetSchema.Encode(&w)
	require.NoError(t, err)
	assert.Equal(t, []byte{Terminator}, bs)
}

func TestEncode_FieldBytes(t *testing.T) {
	w := widgetSchema.Default(5)
	w.Name = "abc"
	w.Size = 2
	w.Solid = false

	bs, err := widgetSchema.Encode(&w)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 'a', 'b', 'c', 0, 12, 2, 17, 0}, bs)
}

func TestDecode_TerminatorFirst(t *testing.T) {
	w, err := widgetSchema.Decode(3, []byte{0, 12, 9, 0xFF})
	require.NoError(t, err)
	assert.Equal(t, newWidget(3), *w)
}

func TestDecode_OpcodeOrderDoesNotMatter(t *testing.T) {
	w1, err := widgetSchema.Decode(1, []byte{12, 2, 2, 'a', 0, 0})
	require.NoError(t, err)
	w2, err := widgetSchema.Decode(1, []byte{2, 'a', 0, 12, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, *w1, *w2)
	assert.Equal(t, "a", w1.Name)
	assert.Equal(t, uint8(2), w1.Size)
}

func TestDecode_Idempotent(t *testing.T) {
	bs := []byte{1, 2, 0, 1, 0, 2, 13, 0xFF, 0xFF, 17, 0}
	w1, err := widgetSchema.Decode(4, bs)
	require.NoError(t, err)
	w2, err := widgetSchema.Decode(4, bs)
	require.NoError(t, err)
	assert.Equal(t, *w1, *w2)
	assert.Equal(t, []uint16{1, 2}, w1.Models)
	assert.Equal(t, int32(-1), w1.Anim)
	assert.False(t, w1.Solid)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	w := widgetSchema.Default(42)
	w.Name = "Guard"
	w.Size = 3
	w.Anim = 808
	w.Models = []uint16{100, 200, 65535}
	w.Solid = false
	w.Labels = map[int32]string{7: "seven", -3: "minus three"}

	bs, err := widgetSchema.Encode(&w)
	require.NoError(t, err)

	decoded, err := widgetSchema.Decode(42, bs)
	require.NoError(t, err)
	if diff := cmp.Diff(w, *decoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_MapKeysAscending(t *testing.T) {
	w := widgetSchema.Default(1)
	w.Labels = map[int32]string{2: "b", 1: "a"}

	bs, err := widgetSchema.Encode(&w)
	require.NoError(t, err)
	assert.Equal(
		t,
		[]byte{5, 0, 2, 0, 0, 0, 1, 'a', 0, 0, 0, 0, 2, 'b', 0, 0},
		bs,
	)
}

func TestDecode_UnknownOpcode(t *testing.T) {
	_, err := widgetSchema.Decode(1, []byte{12, 2, 99, 0})
	require.Error(t, err)

	var errUnknown ErrUnknownOpcode
	require.True(t, errors.As(err, &errUnknown))
	assert.Equal(t, ErrUnknownOpcode{Kind: "widget", Opcode: 99, Position: 2}, errUnknown)
}

func TestDecode_BufferUnderrun(t *testing.T) {
	tests := map[string][]byte{
		"empty":               {},
		"truncated payload":   {13, 0x01},
		"missing terminator":  {12, 2},
		"truncated list":      {1, 3, 0, 1, 0, 2},
		"truncated map entry": {5, 0, 1, 0, 0},
	}
	for name, bs := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := widgetSchema.Decode(1, bs)
			assert.True(t, errors.Is(err, lbytes.ErrBufferUnderrun), err)
		})
	}
}

func TestEncode_TooManyEntries(t *testing.T) {
	w := widgetSchema.Default(1)
	w.Models = make([]uint16, 256)

	_, err := widgetSchema.Encode(&w)
	assert.True(t, errors.Is(err, ErrTooManyEntries))
}

func TestSchema_Clone(t *testing.T) {
	w := widgetSchema.Default(1)
	w.Models = []uint16{1, 2, 3}
	w.Labels = map[int32]string{1: "one"}

	clone := widgetSchema.Clone(&w)
	clone.Models[0] = 99
	clone.Labels[1] = "uno"

	assert.Equal(t, []uint16{1, 2, 3}, w.Models)
	assert.Equal(t, "one", w.Labels[1])
	assert.True(t, widgetSchema.Equal(&w, &w))
	assert.False(t, widgetSchema.Equal(&w, &clone))
}

func TestNewSchema_InvalidTables(t *testing.T) {
	idFunc := func(w *widget) int32 { return w.ID }
	name := func(w *widget) *string { return &w.Name }

	assert.Panics(t, func() {
		NewSchema[widget]("bad", darchive.Table{}, newWidget, idFunc, []Field[widget]{
			String[widget](0, "name", name),
		})
	})
	assert.Panics(t, func() {
		NewSchema[widget]("bad", darchive.Table{}, newWidget, idFunc, []Field[widget]{
			String[widget](2, "name", name),
			String[widget](2, "other", name),
		})
	})
}

func TestSchema_Field(t *testing.T) {
	field, ok := widgetSchema.Field(12)
	require.True(t, ok)
	assert.Equal(t, "size", field.Name)

	_, ok = widgetSchema.Field(Terminator)
	assert.False(t, ok)
	assert.Len(t, widgetSchema.Fields(), 6)
	assert.False(t, widgetSchema.Derivable())
}

func TestEncode_ValueOutOfRange(t *testing.T) {
	tests := map[string]func(w *widget){
		"nullable holding the null marker": func(w *widget) { w.Anim = 0xFFFF },
		"nullable below -1":                func(w *widget) { w.Anim = -2 },
		"nullable too wide":                func(w *widget) { w.Anim = 70000 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			w := widgetSchema.Default(1)
			mutate(&w)
			_, err := widgetSchema.Encode(&w)
			assert.True(t, errors.Is(err, lbytes.ErrValueOutOfRange), err)
		})
	}
}

func TestEncode_StringWithNUL(t *testing.T) {
	w := widgetSchema.Default(1)
	w.Name = "a\x00b"

	_, err := widgetSchema.Encode(&w)
	assert.True(t, errors.Is(err, lbytes.ErrStringHasNUL), err)
}

func TestDecode_DuplicateMapKey(t *testing.T) {
	bs := []byte{5, 0, 2, 0, 0, 0, 1, 'a', 0, 0, 0, 0, 1, 'b', 0, 0}

	_, err := widgetSchema.Decode(1, bs)
	assert.True(t, errors.Is(err, ErrDuplicateKey), err)
}
