package radical

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/utils"
)

// Compare defines the Unihan order on strings. Strings are compared
// code-point by code-point. At the first position where they differ, a
// code-point with a sort key comes before one without; two keyed
// code-points compare by key, otherwise the code-point values decide.
// If one string is a prefix of the other, the shorter one comes first.
//
// Compare returns 0 only for identical strings.
func (ix *Index) Compare(a, b string) int {
	for len(a) > 0 && len(b) > 0 {
		ca, na := utf8.DecodeRuneInString(a)
		cb, nb := utf8.DecodeRuneInString(b)
		if ca != cb {
			return ix.compareRunes(ca, cb)
		}
		if ca == utf8.RuneError && a[:na] != b[:nb] {
			return strings.Compare(a[:na], b[:nb])
		}
		a, b = a[na:], b[nb:]
	}
	switch {
	case len(a) == len(b):
		return 0
	case len(a) == 0:
		return -1
	}
	return 1
}

func (ix *Index) compareRunes(ca, cb rune) int {
	ka, oka := ix.keys[ca]
	kb, okb := ix.keys[cb]
	switch {
	case oka && !okb:
		return -1
	case !oka && okb:
		return 1
	case oka && okb && ka != kb:
		if ka < kb {
			return -1
		}
		return 1
	}
	if ca < cb {
		return -1
	}
	return 1
}

// Less reports whether a sorts before b in Unihan order.
func (ix *Index) Less(a, b string) bool {
	return ix.Compare(a, b) < 0
}

// Comparator adapts Compare for ordered containers holding strings.
func (ix *Index) Comparator() utils.Comparator {
	return func(a, b interface{}) int {
		return ix.Compare(a.(string), b.(string))
	}
}

// Sort sorts strings in Unihan order.
func (ix *Index) Sort(strs []string) {
	sort.Slice(strs, func(i, j int) bool { return ix.Less(strs[i], strs[j]) })
}

// SortRunes sorts characters in Unihan order.
func (ix *Index) SortRunes(runes []rune) {
	sort.Slice(runes, func(i, j int) bool {
		if runes[i] == runes[j] {
			return false
		}
		return ix.compareRunes(runes[i], runes[j]) < 0
	})
}
