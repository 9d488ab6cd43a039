package radical

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Row compares the glyphs the different sources assign to one radical.
type Row struct {
	Radical   string // radical number, possibly with a trailing apostrophe
	Canonical []rune // kRSUnicode characters with zero residual strokes
	CJK       []rune // glyphs from the CJK Radicals cross-reference
	Adobe     []rune // Adobe radical forms not already canonical
	Glyphs    []rune // all glyphs mapped to this radical
}

// Rows lists a Row per radical, in numerical order. Rows for simplified
// radicals (R') carry neither cross-referenced nor Adobe glyphs, as those
// sources do not distinguish them.
func (ix *Index) Rows() []Row {
	rads := ix.Radicals()
	rows := make([]Row, 0, len(rads))
	for _, radical := range rads {
		n, alt, ok := splitRadical(radical)
		if !ok {
			continue
		}
		row := Row{
			Radical:   radical,
			Canonical: ix.ZeroStrokeGlyphs(n, alt),
			Glyphs:    ix.GlyphsOf(radical),
		}
		if !alt {
			row.CJK = ix.CrossReferenced(n)
			row.Adobe = ix.adobeRadicalForms(n, row.Canonical)
		}
		rows = append(rows, row)
	}
	return rows
}

// adobeRadicalForms collects Adobe glyphs of a radical with zero residual
// strokes, for every stroke count of the radical form.
func (ix *Index) adobeRadicalForms(rad int, except []rune) []rune {
	forms := treeset.NewWith(utils.RuneComparator)
	it := ix.astroke.Iterator()
	for it.Next() {
		r, _, remaining := splitAstrokeKey(it.Key().(int))
		if r != rad || remaining != 0 {
			continue
		}
		for _, g := range runesOf(it.Value().(*treeset.Set)) {
			forms.Add(g)
		}
	}
	for _, g := range except {
		forms.Remove(g)
	}
	return runesOf(forms)
}
