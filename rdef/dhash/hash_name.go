package dhash

import (
	"strings"
	"unicode/utf16"

	"github.com/samber/lo"
)

// HashName hashes an archive name the way the name index stores it: the
// lowercased name folded over its UTF-16 code units with h = 31*h + c.
func HashName(name string) int32 {
	units := utf16.Encode([]rune(strings.ToLower(name)))
	return lo.Reduce(
		units,
		func(result int32, unit uint16, _ int) int32 {
			return result*31 + int32(unit)
		},
		0,
	)
}
