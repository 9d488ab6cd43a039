package ids

import (
	"errors"
	"sync"
	"testing"

	"github.com/npillmayer/cjkids/layout"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

// radicals is a minimal radical lookup for tests.
type radicals map[rune]string

func (rads radicals) RadicalOf(r rune) (string, bool) {
	rad, ok := rads[r]
	return rad, ok
}

var testRadicals = radicals{'一': "1", '丨': "2", '乚': "5", '口': "30"}

func TestClassify(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tests := []struct {
		r    rune
		kind Kind
	}{
		{0x2FF0, StructuralOperator},
		{0x2FFB, StructuralOperator},
		{'吉', PrimitiveLeaf},
		{0x2E85, PrimitiveLeaf},  // CJK radical person
		{0x2F00, PrimitiveLeaf},  // Kangxi radical one
		{0x31C0, PrimitiveLeaf},  // CJK stroke
		{0xE010, PrimitiveLeaf},  // numbered special
		{0x2B820, PrimitiveLeaf}, // Adobe placeholder range
		{0x3007, Unknown},        // ideographic number zero, excluded block
		{'A', Unknown},
		{Uncertain, Unknown},
		{EscapeOpen, Unknown},
		{MirrorEscape, Unknown},
	}
	for _, test := range tests {
		c := Classify(test.r)
		if c.Kind != test.kind {
			t.Errorf("expected %#U to classify as %s, is %s", test.r, test.kind, c.Kind)
		}
		if (c.Kind == StructuralOperator) != (c.Operator != nil) {
			t.Errorf("expected operator entry for %#U exactly if it is an operator", test.r)
		}
	}
}

func TestParseSimple(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	p := NewParser(testRadicals, NewRegistry())
	comps, questionable, err := p.Parse('㐖', "⿰吉乚")
	if err != nil {
		t.Fatal(err)
	}
	if questionable {
		t.Errorf("expected IDS not to be questionable")
	}
	if len(comps) != 2 {
		t.Fatalf("expected 2 components, have %v", comps)
	}
	if comps[0].Rune != 0x5409 || comps[0].Rect != layout.R(0, 0, 0.5, 1) {
		t.Errorf("expected 吉 on the left, have %v", comps[0])
	}
	if comps[1].Rune != 0x4E5A || comps[1].Rect != layout.R(0.5, 0, 1, 1) {
		t.Errorf("expected 乚 on the right, have %v", comps[1])
	}
	if comps[0].String() != "吉{0, 0; 50, 100}" {
		t.Errorf("unexpected rendering %s", comps[0])
	}
}

func TestParseNested(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	p := NewParser(testRadicals, nil)
	comps, _, err := p.Parse('𠮙', "⿱⿰口口木")
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"口{0, 0; 50, 50}", "口{50, 0; 100, 50}", "木{0, 50; 100, 100}"}
	if len(comps) != len(expected) {
		t.Fatalf("expected %d components, have %v", len(expected), comps)
	}
	for i, c := range comps {
		if c.String() != expected[i] {
			t.Errorf("expected component #%d to be %s, is %s", i, expected[i], c)
		}
		if !layout.Base.Contains(c.Rect) {
			t.Errorf("component %s leaves the character cell", c)
		}
		if i > 0 && c.Fraction <= comps[i-1].Fraction {
			t.Errorf("expected fractions to increase in pre-order")
		}
	}
	if string(Runes(comps)) != "口口木" {
		t.Errorf("expected pre-order 口口木, have %s", string(Runes(comps)))
	}
}

func TestParseRadicalHead(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	p := NewParser(testRadicals, nil)
	comps, _, err := p.Parse('一', "一")
	if err != nil {
		t.Fatal(err)
	}
	if len(comps) != 1 || comps[0].Rune != '一' || comps[0].Rect != layout.Base {
		t.Errorf("expected radical to fill the cell, have %v", comps)
	}
	_, _, err = p.Parse('吉', "吉")
	var unknown *UnknownComponentError
	if !errors.As(err, &unknown) || !unknown.Head || unknown.Offset != 0 {
		t.Errorf("expected unknown head component, error is %v", err)
	}
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("expected unknown component to be a malformed IDS")
	}
}

func TestParseErrors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	p := NewParser(testRadicals, NewRegistry())
	tests := []struct {
		ids    string
		reason string
		offset int
	}{
		{"", ReasonShort, 0},
		{"⿰", ReasonShort, 1},
		{"⿰吉", ReasonShort, 2},
		{"⿲彳丨", ReasonShort, 3},
		{"⿰？", ReasonShort, 2},
		{"⿰吉乚乚", ReasonTrailing, 3},
		{"⿰吉A", ReasonUnknown, 2},
		{"⿰吉、", ReasonUnknown, 2},
		{"⿰{0x}乚", ReasonEscape, 3},
		{"⿰{07]乚", ReasonEscape, 4},
		{"⿰{0", ReasonShort, 3},
		{"⿰↔吉乚", ReasonUnknown, 2},
	}
	for _, test := range tests {
		comps, _, err := p.Parse('㐖', test.ids)
		if err == nil {
			t.Errorf("expected %q to fail, have %v", test.ids, comps)
			continue
		}
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("expected error for %q to be a malformed IDS, is %v", test.ids, err)
		}
		var malformed *MalformedIDSError
		var unknown *UnknownComponentError
		switch {
		case errors.As(err, &malformed):
			if malformed.Reason() != test.reason || malformed.Offset != test.offset {
				t.Errorf("expected %q to fail with %q at %d, error is %v",
					test.ids, test.reason, test.offset, err)
			}
		case errors.As(err, &unknown):
			if test.reason != ReasonUnknown || unknown.Offset != test.offset {
				t.Errorf("expected %q to fail with %q at %d, error is %v",
					test.ids, test.reason, test.offset, err)
			}
		default:
			t.Errorf("unexpected error type for %q: %T", test.ids, err)
		}
	}
	if _, _, err := p.Parse('㐖', "⿰吉乚乚"); err.Error() != "Error: expected only 3 characters" {
		t.Errorf("unexpected error message %q", err.Error())
	}
}

func TestParseEscapes(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	reg := NewRegistry()
	if err := reg.Declare("{08} a declared component"); err != nil {
		t.Fatal(err)
	}
	p := NewParser(testRadicals, reg)
	comps, _, err := p.Parse('㐖', "⿰{07}乚")
	if err != nil {
		t.Fatal(err)
	}
	if comps[0].Rune != 0xE007 {
		t.Errorf("expected placeholder U+E007, have %#U", comps[0].Rune)
	}
	sp, ok := reg.Lookup(7)
	if !ok || sp.Description != "" || string(sp.Samples()) != "㐖" {
		t.Errorf("expected undeclared special {07} with sample 㐖, have %v", sp)
	}
	if _, _, err = p.Parse('㐀', "⿱{08}{07}"); err != nil {
		t.Fatal(err)
	}
	sp, _ = reg.Lookup(7)
	if string(sp.Samples()) != "㐀㐖" {
		t.Errorf("expected samples of {07} in code-point order, have %q", string(sp.Samples()))
	}
	sp, _ = reg.Lookup(8)
	if sp.Description != "a declared component" || string(sp.Samples()) != "㐀" {
		t.Errorf("expected declared special {08} to keep its description, have %v", sp)
	}
	comps, _, err = p.Parse('㐖', "⿰↔正乚")
	if err != nil {
		t.Fatal(err)
	}
	if comps[0].Rune != 0xE041 {
		t.Errorf("expected mirrored 正 to be U+E041, is %#U", comps[0].Rune)
	}
	if sp, ok = reg.Lookup(0x41); !ok || sp.Description != "mirrored 正" {
		t.Errorf("expected mirrored 正 in registry, have %v", sp)
	}
	comps, _, err = p.Parse('㐖', "⿱↷止一")
	if err != nil {
		t.Fatal(err)
	}
	if comps[0].Rune != 0xE051 {
		t.Errorf("expected rotated 止 to be U+E051, is %#U", comps[0].Rune)
	}
	if sp, ok = reg.Lookup(0x51); !ok || sp.Description != "rotated 止" {
		t.Errorf("expected rotated 止 in registry, have %v", sp)
	}
	entries := reg.Entries()
	if len(entries) != 4 || entries[0].Index != 7 || entries[3].Index != 0x51 {
		t.Errorf("expected 4 registry entries in index order, have %v", entries)
	}
}

func TestNotation(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	p := NewParser(testRadicals, nil)
	for desc, expected := range map[string]string{
		"⿰{07}乚": "{07}",
		"⿰↔𦣞乚":  "↔𦣞",
		"⿰↔臣乚":  "↔臣",
		"⿱↷或一":  "↷或",
		"⿱↷虎一":  "↷虎",
	} {
		comps, _, err := p.Parse('㐖', desc)
		if err != nil {
			t.Fatalf("cannot parse %s: %v", desc, err)
		}
		if n := Notation(comps[0].Rune); n != expected {
			t.Errorf("expected notation of %#U to be %s, is %s", comps[0].Rune, expected, n)
		}
	}
	for r, expected := range map[rune]string{
		'木':    "木",
		0xE063: "{99}",
		0xE064: string(rune(0xE064)),
		0xE044: "{68}",
	} {
		if n := Notation(r); n != expected {
			t.Errorf("expected notation of %#U to be %q, is %q", r, expected, n)
		}
	}
}

func TestParseStateString(t *testing.T) {
	st := borrowState('㐖', "⿰吉乚")
	defer st.release()
	st.next()
	st.next()
	if st.String() != "⿰吉 • 乚" {
		t.Errorf("expected parse state to be '⿰吉 • 乚', is %q", st.String())
	}
}

func TestQuestionable(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	p := NewParser(testRadicals, nil)
	comps, questionable, err := p.Parse('㐖', "⿰？吉乚")
	if err != nil {
		t.Fatal(err)
	}
	if !questionable {
		t.Errorf("expected IDS to be questionable")
	}
	if string(Runes(comps)) != "吉乚" {
		t.Errorf("expected uncertainty marker to be skipped, have %v", comps)
	}
	_, questionable, _ = p.Parse('㐖', "⿰吉乚")
	if questionable {
		t.Errorf("expected flag not to leak into the next parse")
	}
}

func TestRegistry(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	reg := NewRegistry()
	if !IsDeclaration(" {01} first") || IsDeclaration("just a comment") {
		t.Errorf("declarations not recognized properly")
	}
	if err := reg.Declare("{01} first"); err != nil {
		t.Fatal(err)
	}
	var collision *SpecialCollisionError
	if err := reg.Declare("{01} again"); !errors.As(err, &collision) || collision.Index != 1 {
		t.Errorf("expected special collision for {01}, error is %v", err)
	}
	if err := reg.Reference(4, '㐂'); err != nil {
		t.Fatal(err)
	}
	if err := reg.Declare("{04} used before declared"); err != nil {
		t.Errorf("expected declaration after reference to succeed, error is %v", err)
	}
	if sp, _ := reg.Lookup(4); sp.Description != "used before declared" || string(sp.Samples()) != "㐂" {
		t.Errorf("expected {04} to keep its sample and receive the description, is %v", sp)
	}
	if err := reg.Declare("{04} again"); !errors.As(err, &collision) || collision.Index != 4 {
		t.Errorf("expected special collision for {04}, error is %v", err)
	}
	for _, bad := range []string{"{1} short", "{x1} letter", "{011} long", "01} open"} {
		if err := reg.Declare(bad); err == nil {
			t.Errorf("expected declaration %q to be malformed", bad)
		}
	}
	sp, _ := reg.Lookup(1)
	if sp.Rune() != 0xE001 || sp.Description != "first" {
		t.Errorf("unexpected special %v", sp)
	}
	reg.Freeze()
	if !reg.Frozen() {
		t.Errorf("expected registry to be frozen")
	}
	if err := reg.Declare("{02} late"); !errors.Is(err, ErrFrozen) {
		t.Errorf("expected declaration to fail on frozen registry, error is %v", err)
	}
	if err := reg.Reference(1, '㐀'); !errors.Is(err, ErrFrozen) {
		t.Errorf("expected reference to fail on frozen registry, error is %v", err)
	}
	p := NewParser(testRadicals, reg)
	if _, _, err := p.Parse('㐖', "⿰{03}乚"); err != nil {
		t.Errorf("expected parse against frozen registry to succeed, error is %v", err)
	}
	if _, ok := reg.Lookup(3); ok || reg.Len() != 2 {
		t.Errorf("expected frozen registry to stay unchanged")
	}
}

func TestComponentColor(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tests := []struct {
		f     float32
		color string
	}{
		{0, "#00ff00"},
		{0.5, "#008080"},
		{1, "#0000ff"},
	}
	for _, test := range tests {
		c := Component{Rune: '吉', Fraction: test.f}
		if c.Color() != test.color {
			t.Errorf("expected color for %.2f to be %s, is %s", test.f, test.color, c.Color())
		}
	}
}

func TestParseConcurrently(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	p := NewParser(testRadicals, NewRegistry())
	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids := "⿰吉乚"
			if i%2 == 0 {
				ids = "⿱⿰口口{05}"
			}
			if _, _, err := p.Parse('㐖'+rune(i), ids); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
	if sp, ok := p.registry.Lookup(5); !ok || len(sp.Samples()) != 32 {
		t.Errorf("expected 32 samples for {05}, have %v", sp)
	}
}
