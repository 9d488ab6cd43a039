package ids

import (
	"sync"
	"unicode"

	"github.com/npillmayer/cjkids/layout"
	"golang.org/x/text/unicode/rangetable"
)

// Kind tells how the parser treats a code-point.
type Kind int8

// Kinds of code-points for the parser.
const (
	Unknown            Kind = iota // neither an operator nor a leaf; may start an escape
	PrimitiveLeaf                  // ideograph, radical, stroke or placeholder
	StructuralOperator             // one of the twelve IDCs
)

func (k Kind) String() string {
	switch k {
	case PrimitiveLeaf:
		return "leaf"
	case StructuralOperator:
		return "operator"
	}
	return "unknown"
}

// Class is the classification of a code-point. Operator is set for kind
// StructuralOperator only.
type Class struct {
	Kind     Kind
	Operator *layout.Operator
}

// Ranges of placeholder code-points.
const (
	PlaceholderFirst      rune = 0xE000 // numbered specials, mirrored and rotated forms
	PlaceholderLast       rune = 0xE07F
	AdobePlaceholderFirst rune = 0x2B820
	AdobePlaceholderLast  rune = 0x2CEA1
)

var strokes = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x31C0, Hi: 0x31E3, Stride: 1}},
}

var placeholders = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: uint16(PlaceholderFirst), Hi: uint16(PlaceholderLast), Stride: 1}},
}

var adobePlaceholders = &unicode.RangeTable{
	R32: []unicode.Range32{{Lo: uint32(AdobePlaceholderFirst), Hi: uint32(AdobePlaceholderLast), Stride: 1}},
}

// primitives is the merged range table of all leaf code-points, ideographs
// are the CJK ideographs among them.
// Will be initialized by setupPrimitives().
var primitives, ideographs *unicode.RangeTable

var setupOnce sync.Once

// Primitives returns the range table of code-points the parser accepts as
// leaves. It is created on first use and never modified afterwards.
func Primitives() *unicode.RangeTable {
	setupOnce.Do(setupPrimitives)
	return primitives
}

// Ideographs returns the range table of ideographic code-points, without the
// CJK Symbols and Punctuation block.
func Ideographs() *unicode.RangeTable {
	setupOnce.Do(setupPrimitives)
	return ideographs
}

// setupPrimitives merges ideographs (without the CJK Symbols and
// Punctuation block), radicals, strokes and placeholders.
func setupPrimitives() {
	var ideo []rune
	rangetable.Visit(unicode.Ideographic, func(r rune) {
		if r < 0x3000 || r > 0x303F {
			ideo = append(ideo, r)
		}
	})
	ideographs = rangetable.New(ideo...)
	primitives = rangetable.Merge(
		ideographs,
		unicode.Radical,
		strokes,
		placeholders,
		adobePlaceholders,
	)
	T().Debugf("primitive leaves: %d ideographs plus radicals, strokes and placeholders", len(ideo))
}

// IsPrimitive is true for code-points which are leaves of an IDS.
func IsPrimitive(r rune) bool {
	return unicode.Is(Primitives(), r)
}

// Classify tells if r is a structural operator, a primitive leaf or unknown.
func Classify(r rune) Class {
	if op, ok := layout.LookupOperator(r); ok {
		return Class{Kind: StructuralOperator, Operator: op}
	}
	if IsPrimitive(r) {
		return Class{Kind: PrimitiveLeaf}
	}
	return Class{Kind: Unknown}
}
