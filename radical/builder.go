package radical

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Builder collects radical-stroke data from external sources. Call Build
// to create an immutable Index from it. A Builder is not safe for
// concurrent use.
type Builder struct {
	rs    map[rune][]string
	adobe map[rune][]string
	xref  []xrefEntry
}

type xrefEntry struct {
	glyph   rune
	radical int
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		rs:    make(map[rune][]string),
		adobe: make(map[rune][]string),
	}
}

// RadicalStroke adds kRSUnicode values for a character.
func (b *Builder) RadicalStroke(r rune, values ...string) {
	b.rs[r] = append(b.rs[r], values...)
}

// AdobeRadicalStroke adds kRSAdobe_Japan1_6 values for a character.
func (b *Builder) AdobeRadicalStroke(r rune, values ...string) {
	b.adobe[r] = append(b.adobe[r], values...)
}

// CrossReference adds a glyph from the CJK Radicals blocks together with
// the number of the radical it represents.
func (b *Builder) CrossReference(glyph rune, radical int) {
	b.xref = append(b.xref, xrefEntry{glyph: glyph, radical: radical})
}

// Build creates the radical index. It fails on the first malformed
// radical-stroke value, as the input tables are expected to be consistent.
func (b *Builder) Build() (*Index, error) {
	ix := &Index{
		keys:      make(map[rune]Key, len(b.rs)),
		rs:        make(map[rune][]string, len(b.rs)),
		ustroke:   treemap.NewWithIntComparator(),
		astroke:   treemap.NewWithIntComparator(),
		toRadical: make(map[rune]string),
		glyphs:    treemap.NewWith(func(a, b interface{}) int { return radicalOrder(a.(string), b.(string)) }),
		xref:      treemap.NewWithIntComparator(),
	}
	if err := b.buildKeys(ix); err != nil {
		return nil, err
	}
	if err := b.buildAdobe(ix); err != nil {
		return nil, err
	}
	b.buildRadicalMap(ix)
	T().Infof("radical index: %d keys, %d radical glyphs", len(ix.keys), len(ix.toRadical))
	return ix, nil
}

// buildKeys creates the sort keys and the sets of radicals with zero
// residual strokes. Only the first value of a character is considered.
func (b *Builder) buildKeys(ix *Index) error {
	for r, values := range b.rs {
		if len(values) == 0 {
			continue
		}
		ix.rs[r] = append([]string(nil), values...)
		rs, err := ParseRS(values[0])
		if err != nil {
			return fmt.Errorf("kRSUnicode of %#U: %w", r, err)
		}
		ix.keys[r] = rs.Key()
		if rs.Strokes == 0 {
			addToSet(ix.ustroke, ustrokeKey(rs.Radical, rs.Alt), r)
		}
	}
	return nil
}

func (b *Builder) buildAdobe(ix *Index) error {
	for r, values := range b.adobe {
		for _, v := range values {
			a, err := ParseAdobe(v)
			if err != nil {
				return fmt.Errorf("kRSAdobe_Japan1_6 of %#U: %w", r, err)
			}
			addToSet(ix.astroke, astrokeKey(a.Radical, a.StrokesInRadical, a.Remaining), r)
		}
	}
	return nil
}

// buildRadicalMap merges the character→radical map. The first source to
// claim a character wins: radicals from kRSUnicode first, then Adobe
// radicals, then the cross-reference table.
func (b *Builder) buildRadicalMap(ix *Index) {
	put := func(r rune, radical string) {
		if _, ok := ix.toRadical[r]; ok {
			return
		}
		ix.toRadical[r] = radical
		addToSet(ix.glyphs, radical, r)
	}
	for _, r := range sortedRunes(b.rs) {
		if radical, ok := canonicalRadical(b.rs[r]); ok {
			put(r, radical)
		}
	}
	it := ix.astroke.Iterator()
	for it.Next() {
		rad, _, remaining := splitAstrokeKey(it.Key().(int))
		if remaining != 0 {
			continue
		}
		radical := fmt.Sprintf("%d", rad)
		for _, r := range runesOf(it.Value().(*treeset.Set)) {
			put(r, radical)
		}
	}
	for _, x := range b.xref {
		radical := fmt.Sprintf("%d", x.radical)
		put(x.glyph, radical)
		addToSet(ix.xref, x.radical, x.glyph)
		addToSet(ix.glyphs, radical, x.glyph) // glyph may be claimed by another radical
	}
}

// canonicalRadical finds the first alternative with zero residual strokes.
func canonicalRadical(values []string) (string, bool) {
	for _, v := range values {
		alts, err := Alternatives(v)
		if err != nil {
			continue // already reported for the first value
		}
		for _, rs := range alts {
			if rs.Strokes == 0 {
				return rs.RadicalString(), true
			}
		}
	}
	return "", false
}

// --- Helpers ---------------------------------------------------------------

func ustrokeKey(radical int, alt bool) int {
	k := radical << 1
	if alt {
		k |= 1
	}
	return k
}

func astrokeKey(radical, strokesInRadical, remaining int) int {
	return radical*10000 + strokesInRadical*100 + remaining
}

func splitAstrokeKey(k int) (radical, strokesInRadical, remaining int) {
	return k / 10000, (k / 100) % 100, k % 100
}

// addToSet adds r to the rune set stored at key, creating the set if necessary.
func addToSet(m *treemap.Map, key interface{}, r rune) {
	s, ok := m.Get(key)
	if !ok {
		s = treeset.NewWith(utils.RuneComparator)
		m.Put(key, s)
	}
	s.(*treeset.Set).Add(r)
}

func runesOf(s *treeset.Set) []rune {
	if s == nil {
		return nil
	}
	values := s.Values()
	runes := make([]rune, len(values))
	for i, v := range values {
		runes[i] = v.(rune)
	}
	return runes
}

func sortedRunes(m map[rune][]string) []rune {
	runes := make([]rune, 0, len(m))
	for r := range m {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}
