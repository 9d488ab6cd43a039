package layout

import "sort"

// Operator is an Ideographic Description Character together with the
// relative placement of its operands.
type Operator struct {
	Rune      rune   // the IDC code-point
	Name      string // short name of the layout
	Parts     []Rect // relative rectangles, one per operand, in operand order
	Sample    rune   // a character built with this operator
	SampleIDS string // the description of Sample
}

// Arity is the number of operands, either 2 or 3.
func (op *Operator) Arity() int {
	return len(op.Parts)
}

// Place computes the absolute rectangles of the operands of op, given the
// rectangle of the operator itself.
func (op *Operator) Place(outer Rect) []Rect {
	placed := make([]Rect, len(op.Parts))
	for i, p := range op.Parts {
		placed[i] = outer.Compose(p)
	}
	return placed
}

func (op *Operator) String() string {
	return string(op.Rune) + " " + op.Name
}

// The IDCs of Unicode block Ideographic Description Characters.
const (
	LeftToRight        rune = 0x2FF0 // ⿰
	AboveToBelow       rune = 0x2FF1 // ⿱
	LeftMiddleRight    rune = 0x2FF2 // ⿲
	AboveMiddleBelow   rune = 0x2FF3 // ⿳
	FullSurround       rune = 0x2FF4 // ⿴
	SurroundFromAbove  rune = 0x2FF5 // ⿵
	SurroundFromBelow  rune = 0x2FF6 // ⿶
	SurroundFromLeft   rune = 0x2FF7 // ⿷
	SurroundUpperLeft  rune = 0x2FF8 // ⿸
	SurroundUpperRight rune = 0x2FF9 // ⿹
	SurroundLowerLeft  rune = 0x2FFA // ⿺
	Overlaid           rune = 0x2FFB // ⿻
)

var operators = map[rune]*Operator{
	LeftToRight: {LeftToRight, "left to right", []Rect{
		R(0, 0, 0.5, 1),
		R(0.5, 0, 1, 1),
	}, '㐖', "⿰吉乚"},
	AboveToBelow: {AboveToBelow, "above to below", []Rect{
		R(0, 0, 1, 0.5),
		R(0, 0.5, 1, 1),
	}, '㐀', "⿱卝一"},
	LeftMiddleRight: {LeftMiddleRight, "left to middle and right", []Rect{
		R(0, 0, 0.3, 1),
		R(0.3, 0, 0.7, 1),
		R(0.7, 0, 1, 1),
	}, '㣠', "⿲彳丨冬"},
	AboveMiddleBelow: {AboveMiddleBelow, "above to middle and below", []Rect{
		R(0, 0, 1, 0.3),
		R(0, 0.3, 1, 0.7),
		R(0, 0.7, 1, 1),
	}, '㞿', "⿳山土乂"},
	FullSurround: {FullSurround, "full surround", []Rect{
		R(0, 0, 1, 1),
		R(0.25, 0.25, 0.75, 0.75),
	}, '囝', "⿴囗子"},
	SurroundFromAbove: {SurroundFromAbove, "surround from above", []Rect{
		R(0, 0, 1, 1),
		R(0.3, 0.3, 0.7, 1),
	}, '悶', "⿵門心"},
	SurroundFromBelow: {SurroundFromBelow, "surround from below", []Rect{
		R(0, 0, 1, 1),
		R(0.3, 0, 0.7, 0.7),
	}, '𠙶', "⿶凵了"},
	SurroundFromLeft: {SurroundFromLeft, "surround from left", []Rect{
		R(0, 0, 1, 1),
		R(0.3, 0.3, 1, 0.7),
	}, '𠤭', "⿷匚人"},
	SurroundUpperLeft: {SurroundUpperLeft, "surround from upper left", []Rect{
		R(0, 0, 0.9, 0.9),
		R(0.5, 0.5, 1, 1),
	}, '産', "⿸产生"},
	SurroundUpperRight: {SurroundUpperRight, "surround from upper right", []Rect{
		R(0, 0, 1, 1),
		R(0, 0.5, 0.5, 1),
	}, '甸', "⿹勹田"},
	SurroundLowerLeft: {SurroundLowerLeft, "surround from lower left", []Rect{
		R(0, 0.2, 0.8, 1),
		R(0.5, 0, 1, 0.5),
	}, '䆪', "⿺光空"},
	Overlaid: {Overlaid, "overlaid", []Rect{
		R(0, 0, 0.9, 0.9),
		R(0.1, 0.1, 1, 1),
	}, '𠆥', "⿻人丿"},
}

// LookupOperator returns the operator entry for an IDC.
// Returned entries are shared and must not be modified.
func LookupOperator(r rune) (*Operator, bool) {
	op, ok := operators[r]
	return op, ok
}

// Operators returns all operators in code-point order.
func Operators() []*Operator {
	ops := make([]*Operator, 0, len(operators))
	for _, op := range operators {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Rune < ops[j].Rune })
	return ops
}
