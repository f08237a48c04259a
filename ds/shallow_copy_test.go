package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShallowCopy(t *testing.T) {
	assert.Nil(t, ShallowCopy[int](nil))

	ts := []int{1, 2, 3}
	copied := ShallowCopy(ts)
	copied[0] = 9
	assert.Equal(t, []int{1, 2, 3}, ts)
	assert.Equal(t, []int{9, 2, 3}, copied)
}

func TestDumpJSON(t *testing.T) {
	assert.Equal(t, `{"npc":2}`, DumpJSON(map[string]int{"npc": 2}))
}
