package radical

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
)

// Index is an immutable radical/stroke index, created by a Builder.
// As it is never modified after creation, it is safe for concurrent reads.
type Index struct {
	keys      map[rune]Key      // sort key per character
	rs        map[rune][]string // raw kRSUnicode values
	ustroke   *treemap.Map      // ustrokeKey → set of radicals with zero residual strokes
	astroke   *treemap.Map      // astrokeKey → set of Adobe glyphs
	toRadical map[rune]string   // character → radical number (merged)
	glyphs    *treemap.Map      // radical number → glyphs (inverse of toRadical, plus xref)
	xref      *treemap.Map      // radical number → CJK Radicals glyphs
}

// Key returns the sort key of a character, if it has one.
func (ix *Index) Key(r rune) (Key, bool) {
	k, ok := ix.keys[r]
	return k, ok
}

// RadicalStrokes returns the raw kRSUnicode values of a character.
func (ix *Index) RadicalStrokes(r rune) []string {
	return ix.rs[r]
}

// ZeroStrokeGlyphs returns the characters with kRSUnicode radical rad and
// zero residual strokes, in code-point order.
func (ix *Index) ZeroStrokeGlyphs(rad int, alt bool) []rune {
	return ix.setAt(ix.ustroke, ustrokeKey(rad, alt))
}

// AdobeGlyphs returns the characters Adobe-Japan1-6 files under
// (radical, strokes of the radical form, residual strokes).
func (ix *Index) AdobeGlyphs(rad, strokesInRadical, remaining int) []rune {
	return ix.setAt(ix.astroke, astrokeKey(rad, strokesInRadical, remaining))
}

// RadicalOf returns the radical number a character represents, like "9" or
// "90'". Only characters which are radicals themselves are mapped.
func (ix *Index) RadicalOf(r rune) (string, bool) {
	rad, ok := ix.toRadical[r]
	return rad, ok
}

// GlyphsOf returns all characters representing a radical.
func (ix *Index) GlyphsOf(radical string) []rune {
	return ix.setAt(ix.glyphs, radical)
}

// CrossReferenced returns the CJK Radicals glyphs of a radical number.
func (ix *Index) CrossReferenced(rad int) []rune {
	return ix.setAt(ix.xref, rad)
}

// Radicals returns all radical numbers, in numerical order.
func (ix *Index) Radicals() []string {
	keys := ix.glyphs.Keys()
	rads := make([]string, len(keys))
	for i, k := range keys {
		rads[i] = k.(string)
	}
	return rads
}

// Len is the number of characters with a sort key.
func (ix *Index) Len() int {
	return len(ix.keys)
}

func (ix *Index) setAt(m *treemap.Map, key interface{}) []rune {
	s, ok := m.Get(key)
	if !ok {
		return nil
	}
	return runesOf(s.(*treeset.Set))
}
