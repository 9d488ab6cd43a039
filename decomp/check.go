package decomp

import (
	"sort"
	"strings"
	"unicode"

	"github.com/npillmayer/cjkids/ids"
	"github.com/npillmayer/cjkids/radical"
	"golang.org/x/text/unicode/rangetable"
)

// ReasonMissing is the failure category of Missing.
const ReasonMissing = "missing"

// Missing lists the characters of universe which have neither a direct
// decomposition nor a radical. Usually universe is ids.Ideographs().
func (s *Store) Missing(universe *unicode.RangeTable, radicals ids.RadicalLookup) *Ledger {
	missing := NewLedger(s.col)
	rangetable.Visit(universe, func(r rune) {
		if _, ok := s.Direct(r); ok {
			return
		}
		if radicals != nil {
			if _, ok := radicals.RadicalOf(r); ok {
				return
			}
		}
		missing.Record(Failure{Reason: ReasonMissing, Char: r, Input: "∅", Message: "no decomposition"})
	})
	return missing
}

// RadicalMiss is a recursive decomposition which does not contain the
// radical of its character.
type RadicalMiss struct {
	Char    rune
	RS      string // first radical-stroke value of the character
	Radical []rune // glyphs of the radical of the character
	IDS     string // recursive decomposition
}

// RadicalMissing checks every recursive decomposition for the radical of its
// character. A decomposition passes if it contains one of the radical's
// glyphs, or the recursive decomposition of one of them. Characters without
// radical-stroke data are not checked. The result is in collation order.
func (s *Store) RadicalMissing(ix *radical.Index) []RadicalMiss {
	var misses []RadicalMiss
	it := s.recursive.Iterator()
	for it.Next() {
		d := it.Value().(*Decomposition)
		values := ix.RadicalStrokes(d.Char)
		if len(values) == 0 {
			continue
		}
		rs, err := radical.ParseRS(values[0])
		if err != nil {
			T().Debugf("radical check: %c: %v", d.Char, err)
			continue
		}
		glyphs := ix.GlyphsOf(rs.RadicalString())
		if s.containsRadical(d.IDS, glyphs) {
			continue
		}
		misses = append(misses, RadicalMiss{
			Char:    d.Char,
			RS:      values[0],
			Radical: glyphs,
			IDS:     d.IDS,
		})
	}
	if s.col != nil {
		// recursive map is in code-point order
		sortMisses(misses, s.col)
	}
	return misses
}

func (s *Store) containsRadical(desc string, glyphs []rune) bool {
	for _, g := range glyphs {
		if strings.ContainsRune(desc, g) {
			return true
		}
		if d, ok := s.Recursive(g); ok && strings.Contains(desc, d.IDS) {
			return true
		}
	}
	return false
}

func sortMisses(misses []RadicalMiss, col Collator) {
	sort.Slice(misses, func(i, j int) bool {
		return col.Compare(string(misses[i].Char), string(misses[j].Char)) < 0
	})
}
