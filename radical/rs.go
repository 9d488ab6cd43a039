package radical

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformed is returned for radical-stroke values which cannot be parsed.
var ErrMalformed = errors.New("malformed radical-stroke value")

// Key is a numeric sort key for a character, derived from its radical and
// its residual stroke count.
type Key int

// RS is a parsed radical-stroke value.
type RS struct {
	Radical int  // radical number, 1…214
	Alt     bool // simplified form of the radical, written as R'
	Strokes int  // residual strokes
}

// Key returns the sort key radical×10000 + alt×1000 + strokes.
func (rs RS) Key() Key {
	k := rs.Radical * 10000
	if rs.Alt {
		k += 1000
	}
	return Key(k + rs.Strokes)
}

// RadicalString returns the radical number, including a trailing
// apostrophe for simplified radicals.
func (rs RS) RadicalString() string {
	s := strconv.Itoa(rs.Radical)
	if rs.Alt {
		s += "'"
	}
	return s
}

func (rs RS) String() string {
	return rs.RadicalString() + "." + strconv.Itoa(rs.Strokes)
}

// ParseRS parses a radical-stroke value of the form "R.S", "R'.S" or
// "R.S|R2.S2…". Only the first alternative is considered.
func ParseRS(v string) (RS, error) {
	if i := strings.IndexByte(v, '|'); i >= 0 {
		v = v[:i]
	}
	return parseRS(v)
}

// Alternatives parses all alternatives of a radical-stroke value.
func Alternatives(v string) ([]RS, error) {
	parts := strings.Split(v, "|")
	rss := make([]RS, 0, len(parts))
	for _, p := range parts {
		rs, err := parseRS(p)
		if err != nil {
			return nil, err
		}
		rss = append(rss, rs)
	}
	return rss, nil
}

func parseRS(v string) (rs RS, err error) {
	dot := strings.IndexByte(v, '.')
	if dot <= 0 {
		return rs, fmt.Errorf("%w: %q", ErrMalformed, v)
	}
	rad := v[:dot]
	if trimmed := strings.TrimRight(rad, "'"); trimmed != rad {
		rs.Alt = true // R' and R'' are not told apart
		rad = trimmed
	}
	if rs.Radical, err = strconv.Atoi(rad); err != nil || rs.Radical <= 0 {
		return rs, fmt.Errorf("%w: %q", ErrMalformed, v)
	}
	if rs.Strokes, err = strconv.Atoi(v[dot+1:]); err != nil {
		return rs, fmt.Errorf("%w: %q", ErrMalformed, v)
	}
	return rs, nil
}

// ParseKey parses a radical-stroke value and returns its sort key.
func ParseKey(v string) (Key, error) {
	rs, err := ParseRS(v)
	if err != nil {
		return 0, err
	}
	return rs.Key(), nil
}

// Adobe is a parsed kRSAdobe_Japan1_6 value.
type Adobe struct {
	Radical          int // radical number
	StrokesInRadical int // strokes of the radical's glyph form
	Remaining        int // residual strokes
}

var adobePattern = regexp.MustCompile(`^[CV]\+[0-9]{1,5}\+([1-9][0-9]{0,2})\.([1-9][0-9]?)\.([0-9]{1,2})$`)

// ParseAdobe parses a value of the form "[CV]+NNNNN+R.S1.S2".
func ParseAdobe(v string) (Adobe, error) {
	m := adobePattern.FindStringSubmatch(v)
	if m == nil {
		return Adobe{}, fmt.Errorf("%w: Adobe value %q", ErrMalformed, v)
	}
	var a Adobe
	a.Radical, _ = strconv.Atoi(m[1])
	a.StrokesInRadical, _ = strconv.Atoi(m[2])
	a.Remaining, _ = strconv.Atoi(m[3])
	return a, nil
}

// radicalOrder compares radical strings numerically, with "R'" sorting
// directly after "R". Unparsable strings sort last, lexically.
func radicalOrder(a, b string) int {
	na, aa, oka := splitRadical(a)
	nb, ab, okb := splitRadical(b)
	switch {
	case oka && !okb:
		return -1
	case !oka && okb:
		return 1
	case !oka && !okb:
		return strings.Compare(a, b)
	case na != nb:
		return na - nb
	case aa == ab:
		return 0
	case ab:
		return -1
	}
	return 1
}

func splitRadical(s string) (int, bool, bool) {
	alt := strings.HasSuffix(s, "'")
	n, err := strconv.Atoi(strings.TrimSuffix(s, "'"))
	return n, alt, err == nil
}
