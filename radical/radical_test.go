package radical

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

const unihanFixture = `# Unihan fixture
U+4E00	kRSUnicode	1.0
U+4E00	kRSAdobe_Japan1_6	C+1200+1.1.0 V+13910+1.1.0
U+4E28	kRSUnicode	2.0
U+4E5A	kRSUnicode	5.0
U+4E5A	kRSAdobe_Japan1_6	C+1234+5.1.0
U+200CA	kRSAdobe_Japan1_6	C+1235+5.1.0
U+4EBA	kRSUnicode	9.0
U+4EBB	kRSUnicode	9.0
U+5409	kRSUnicode	30.3
U+6C35	kRSUnicode	85.0
U+8A00	kRSUnicode	149.0
U+8A9E	kRSUnicode	149.7
U+8BA0	kRSUnicode	149'.0
U+8BF4	kRSUnicode	149'.7
`

const xrefFixture = `# CJK Radicals cross reference
2F00 ; 1   # KANGXI RADICAL ONE

2E85 ; 9   # CJK RADICAL PERSON
4E00 ; 2   # conflicts with kRSUnicode, must lose
`

func buildFixture(t *testing.T) *Index {
	b := NewBuilder()
	if err := LoadUnihan(strings.NewReader(unihanFixture), b); err != nil {
		t.Fatal(err)
	}
	if err := LoadCrossReference(strings.NewReader(xrefFixture), b); err != nil {
		t.Fatal(err)
	}
	ix, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return ix
}

func TestParseRS(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tests := []struct {
		in  string
		key Key
	}{
		{"1.0", 10000},
		{"85.5", 850005},
		{"149'.7", 1491007},
		{"30.3|32.4", 300003},
		{"213.16", 2130016},
	}
	for _, test := range tests {
		k, err := ParseKey(test.in)
		if err != nil {
			t.Errorf("unexpected error for %q: %v", test.in, err)
			continue
		}
		if k != test.key {
			t.Errorf("expected key of %q to be %d, is %d", test.in, test.key, k)
		}
	}
	for _, bad := range []string{"", "85", ".5", "x.5", "85.x", "0.1"} {
		if _, err := ParseRS(bad); !errors.Is(err, ErrMalformed) {
			t.Errorf("expected %q to be malformed, error is %v", bad, err)
		}
	}
	rss, err := Alternatives("30.3|32'.4")
	if err != nil || len(rss) != 2 || !rss[1].Alt || rss[1].String() != "32'.4" {
		t.Errorf("expected two alternatives, have %v (%v)", rss, err)
	}
}

func TestParseAdobe(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	a, err := ParseAdobe("C+13910+1.1.0")
	if err != nil {
		t.Fatal(err)
	}
	if a.Radical != 1 || a.StrokesInRadical != 1 || a.Remaining != 0 {
		t.Errorf("unexpected Adobe value %+v", a)
	}
	a, _ = ParseAdobe("V+1+212.10.12")
	if a.Radical != 212 || a.StrokesInRadical != 10 || a.Remaining != 12 {
		t.Errorf("unexpected Adobe value %+v", a)
	}
	for _, bad := range []string{"X+1+1.1.0", "C+123456+1.1.0", "C+1+0.1.0", "C+1+1.1"} {
		if _, err := ParseAdobe(bad); err == nil {
			t.Errorf("expected %q to be malformed", bad)
		}
	}
	b := NewBuilder()
	b.AdobeRadicalStroke('一', "C+1200+1.1")
	if _, err := b.Build(); !errors.Is(err, ErrMalformed) {
		t.Errorf("expected build to fail for malformed Adobe value, error is %v", err)
	}
}

func TestIndex(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	ix := buildFixture(t)
	if k, ok := ix.Key('説'); ok {
		t.Errorf("expected 説 to have no key, has %d", k)
	}
	if k, _ := ix.Key('说'); k != 1491007 {
		t.Errorf("expected key of 说 to be 1491007, is %d", k)
	}
	if g := ix.ZeroStrokeGlyphs(9, false); string(g) != "人亻" {
		t.Errorf("expected radical 9 glyphs to be 人亻, are %q", string(g))
	}
	if g := ix.ZeroStrokeGlyphs(149, true); string(g) != "讠" {
		t.Errorf("expected radical 149' glyphs to be 讠, are %q", string(g))
	}
	if g := ix.AdobeGlyphs(5, 1, 0); string(g) != "乚𠃊" {
		t.Errorf("expected Adobe glyphs for 5.1.0 to be 乚𠃊, are %q", string(g))
	}
	radicals := map[rune]string{
		'一':    "1",
		'讠':    "149'",
		'𠃊':    "5",
		0x2E85: "9",
		0x2F00: "1",
	}
	for r, rad := range radicals {
		if got, ok := ix.RadicalOf(r); !ok || got != rad {
			t.Errorf("expected radical of %#U to be %q, is %q", r, rad, got)
		}
	}
	if _, ok := ix.RadicalOf('吉'); ok {
		t.Errorf("expected 吉 not to be a radical")
	}
	if g := ix.CrossReferenced(1); string(g) != "\u2F00" {
		t.Errorf("expected cross reference of radical 1 to be ⼀, is %q", string(g))
	}
	if g := ix.GlyphsOf("2"); !strings.ContainsRune(string(g), '一') {
		t.Errorf("expected cross referenced 一 to be listed as a glyph of radical 2, have %q", string(g))
	}
	rads := strings.Join(ix.Radicals(), " ")
	if rads != "1 2 5 9 85 149 149'" {
		t.Errorf("expected radicals in numerical order, have %s", rads)
	}
}

func TestRows(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	ix := buildFixture(t)
	var row5, row149a *Row
	rows := ix.Rows()
	for i := range rows {
		switch rows[i].Radical {
		case "5":
			row5 = &rows[i]
		case "149'":
			row149a = &rows[i]
		}
	}
	if row5 == nil || string(row5.Adobe) != "𠃊" {
		t.Errorf("expected Adobe-only radical form 𠃊 for radical 5, row is %+v", row5)
	}
	if row149a == nil || row149a.Adobe != nil || row149a.CJK != nil {
		t.Errorf("expected simplified radical row without Adobe/CJK glyphs, row is %+v", row149a)
	}
}

func TestUnihanOrder(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	ix := buildFixture(t)
	// keyed code-points come first, regardless of code-point value
	if ix.Compare("語", "A") >= 0 {
		t.Errorf("expected keyed 語 to sort before unkeyed A")
	}
	if ix.Compare("A", "語") <= 0 {
		t.Errorf("expected unkeyed A to sort after keyed 語")
	}
	if ix.Compare("語", "说") >= 0 {
		t.Errorf("expected 語 (149.7) to sort before 说 (149'.7)")
	}
	if ix.Compare("人", "亻") >= 0 {
		t.Errorf("expected equal keys to fall back to code-point order")
	}
	if ix.Compare("一", "一丨") >= 0 {
		t.Errorf("expected prefix to sort first")
	}
	samples := []string{"", "A", "B", "一", "丨", "一丨", "乚", "吉", "語", "说", "讠", "A一", "說", "\xff", "\xfe"}
	for _, a := range samples {
		if ix.Compare(a, a) != 0 {
			t.Errorf("expected %q to compare equal to itself", a)
		}
		for _, b := range samples {
			if a != b && ix.Compare(a, b) == 0 {
				t.Errorf("expected %q and %q to compare unequal", a, b)
			}
			if ix.Compare(a, b) != -ix.Compare(b, a) {
				t.Errorf("expected compare(%q,%q) to be antisymmetric", a, b)
			}
			for _, c := range samples {
				if ix.Less(a, b) && ix.Less(b, c) && !ix.Less(a, c) {
					t.Errorf("order not transitive for %q < %q < %q", a, b, c)
				}
			}
		}
	}
	s := []string{"A", "说", "一丨", "語", "一"}
	ix.Sort(s)
	if strings.Join(s, " ") != "一 一丨 語 说 A" {
		t.Errorf("unexpected Unihan order %v", s)
	}
	r := []rune("A说語一")
	ix.SortRunes(r)
	if string(r) != "一語说A" {
		t.Errorf("unexpected Unihan order %q", string(r))
	}
}
