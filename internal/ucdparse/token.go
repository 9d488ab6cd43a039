package ucdparse

import "fmt"

// Token is a type for communicating between the line-level scanner and its
// clients. The scanner will read lines and wrap the content of data lines
// into tokens.
type Token struct {
	LineNo   int      // line number of the data line, starting at 1
	runeFrom rune     // first/single rune
	runeTo   rune     // final rune of range (may be identical to runeFrom)
	Fields   []string // fields of the line, without the code-point field
	Comment  string   // rest-of-line comment of data item lines
	Error    error    // error condition, if any
}

// newToken creates a token initialized with a line number.
func newToken(line int) *Token {
	return &Token{
		LineNo: line,
		Fields: []string{},
	}
}

func (token *Token) String() string {
	return fmt.Sprintf("token[line %d %#U..%#U %#v]", token.LineNo,
		token.runeFrom, token.runeTo, token.Fields)
}

// Field gets field #i (1…n) from the current data item. Field #0 is the
// code-point field, which is available through Range.
func (token *Token) Field(i int) string {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Range gets the character range from the current data item.
func (token *Token) Range() (from, to rune) {
	return token.runeFrom, token.runeTo
}
