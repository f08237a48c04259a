package rdef

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rune-savior/rdef/dtype"
)

func TestToLinkedHashMap_Order(t *testing.T) {
	varp := dtype.Varp{ID: 3, ConfigType: 7}
	lhm := ToLinkedHashMap(dtype.VarpSchema, &varp)
	assert.Equal(t, []string{"kind", "id", "config_type"}, lhm.Keys())

	bs, err := json.Marshal(lhm)
	require.NoError(t, err)
	assert.Equal(t, `{"kind":"varp","id":3,"config_type":7}`, string(bs))
}

func TestToLinkedHashMap_Derivable(t *testing.T) {
	texture := dtype.NewTexture(5)
	texture.Inherit = 2
	lhm := ToLinkedHashMap(dtype.TextureSchema, &texture)

	keys := lhm.Keys()
	require.GreaterOrEqual(t, len(keys), 3)
	assert.Equal(t, []string{"kind", "id", "inherit"}, keys[:3])
	inherit, ok := lhm.Get("inherit")
	assert.True(t, ok)
	assert.Equal(t, int32(2), inherit)
}
