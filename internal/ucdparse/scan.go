package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// --- Line level scanner ----------------------------------------------------

// Scanner is a type for a line-level scanner.
//
// Our line-level scanner will operate by calling scanning steps in a chain,
// iteratively. Each step function tests for valid input and then possibly
// branches out to a subsequent step function. Step functions consume the
// remainder of the current line.
//
type Scanner struct {
	lines     *bufio.Scanner
	sep       string // field separator, empty for runs of white space
	onComment func(string) error
	lineNo    int    // current line number
	rest      string // unconsumed remainder of the current line
	Token     *Token // last token produced by scanner
	LastError error  // last error, if any
}

// We're buiding up a scanner from chains of scanner step functions.
// Tokens may be modified by a step function.
// A step returns the next step in the chain, or nil to stop/accept.
// A nil token signals a line without data.
//
type scannerStep func(*Token) (*Token, scannerStep)

// Option configures a scanner.
type Option func(*Scanner)

// Separator sets the field separator. The default is ';' as used by the UCD.
func Separator(sep string) Option {
	return func(sc *Scanner) {
		sc.sep = sep
	}
}

// Unihan configures a scanner for the tab-separated Unihan database format.
func Unihan() Option {
	return Separator("\t")
}

// Whitespace configures a scanner for fields separated by runs of white
// space, as found in IDS tables.
func Whitespace() Option {
	return Separator("")
}

// OnComment installs a handler for comment-only lines. It is called with the
// comment text following the '#'. An error returned by the handler stops the
// scanner.
func OnComment(f func(comment string) error) Option {
	return func(sc *Scanner) {
		sc.onComment = f
	}
}

// New creates a scanner for an input reader.
func New(inputReader io.Reader, opts ...Option) (*Scanner, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	sc := &Scanner{
		lines: bufio.NewScanner(inputReader),
		sep:   ";",
	}
	sc.lines.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for _, opt := range opts {
		opt(sc)
	}
	return sc, nil
}

// Parse iterates over each data line of the input and calls callback f on it.
func Parse(r io.Reader, f func(token *Token), opts ...Option) error {
	sc, err := New(r, opts...)
	if err != nil {
		return err
	}
	for sc.Next() {
		f(sc.Token)
	}
	return sc.LastError
}

// Next is called to receive the next data token. A token
// subsumes the properties of a data line of UCD input. Empty lines
// and comment lines are skipped.
//
// Next returns false at the end of input or after an error. Clients should
// check LastError after Next returned false.
//
func (sc *Scanner) Next() bool {
	for sc.lines.Scan() {
		sc.lineNo++
		sc.rest = sc.lines.Text()
		token := newToken(sc.lineNo)
		step := sc.scanLine
		for step != nil && token != nil {
			token, step = step(token)
		}
		if token == nil {
			continue
		}
		sc.Token = token
		if token.Error != nil {
			sc.LastError = token.Error
			return false
		}
		return true
	}
	sc.LastError = sc.lines.Err()
	return false
}

// scanLine is the first step for every line: it strips comments and skips
// lines without data.
func (sc *Scanner) scanLine(token *Token) (*Token, scannerStep) {
	if i := strings.IndexByte(sc.rest, '#'); i >= 0 {
		token.Comment = strings.TrimSpace(sc.rest[i+1:])
		sc.rest = sc.rest[:i]
	}
	if strings.TrimSpace(sc.rest) == "" {
		if token.Comment != "" && sc.onComment != nil {
			if err := sc.onComment(token.Comment); err != nil {
				token.Error = fmt.Errorf("line %d: %w", token.LineNo, err)
				return token, nil
			}
		}
		return nil, nil
	}
	return token, sc.scanRuneRange
}

// scanRuneRange reads the code-point field, either XXXX, U+XXXX or XXXX..YYYY.
func (sc *Scanner) scanRuneRange(token *Token) (*Token, scannerStep) {
	var field string
	if sc.sep == "" {
		fields := strings.Fields(sc.rest)
		field, token.Fields = fields[0], append(token.Fields, fields[1:]...)
		sc.rest = ""
	} else if i := strings.Index(sc.rest, sc.sep); i >= 0 {
		field, sc.rest = sc.rest[:i], sc.rest[i+len(sc.sep):]
	} else {
		field, sc.rest = sc.rest, ""
	}
	field = strings.TrimSpace(field)
	from, to := field, field
	if i := strings.Index(field, ".."); i >= 0 {
		from, to = field[:i], field[i+2:]
	}
	var err error
	if token.runeFrom, err = ParseCodePoint(from); err != nil {
		token.Error = fmt.Errorf("line %d: %w", token.LineNo, err)
		return token, nil
	}
	if token.runeTo, err = ParseCodePoint(to); err != nil {
		token.Error = fmt.Errorf("line %d: %w", token.LineNo, err)
		return token, nil
	}
	if token.runeTo < token.runeFrom {
		token.Error = fmt.Errorf("line %d: invalid range %s", token.LineNo, field)
		return token, nil
	}
	return token, sc.scanItemBody
}

// scanItemBody splits the remainder of a line into fields.
func (sc *Scanner) scanItemBody(token *Token) (*Token, scannerStep) {
	if strings.TrimSpace(sc.rest) == "" {
		return token, nil
	}
	for _, f := range strings.Split(sc.rest, sc.sep) {
		token.Fields = append(token.Fields, strings.TrimSpace(f))
	}
	sc.rest = ""
	return token, nil
}

// ParseCodePoint parses a hexadecimal code-point, optionally prefixed by "U+".
func ParseCodePoint(s string) (rune, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "U+")
	if s == "" {
		return 0, errors.New("missing code-point")
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("hex decoding error: %w", err)
	}
	if n > 0x10FFFF {
		return 0, fmt.Errorf("code-point out of range: %s", s)
	}
	return rune(n), nil
}
