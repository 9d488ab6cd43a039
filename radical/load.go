package radical

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/cjkids/internal/ucdparse"
)

// Unihan property names read by LoadUnihan.
const (
	PropRSUnicode = "kRSUnicode"
	PropRSAdobe   = "kRSAdobe_Japan1_6"
)

// LoadUnihan reads radical-stroke properties from a file in Unihan format,
//
//    U+4E00	kRSUnicode	1.0
//    U+4E00	kRSAdobe_Japan1_6	C+1200+1.1.0 V+13910+1.1.0
//
// and adds them to a builder. Other properties are ignored, so it is fine
// to feed the complete Unihan database.
func LoadUnihan(r io.Reader, b *Builder) error {
	var cnt int
	err := ucdparse.Parse(r, func(token *ucdparse.Token) {
		from, to := token.Range()
		values := strings.Fields(token.Field(2))
		switch token.Field(1) {
		case PropRSUnicode:
			for c := from; c <= to; c++ {
				b.RadicalStroke(c, values...)
			}
			cnt++
		case PropRSAdobe:
			for c := from; c <= to; c++ {
				b.AdobeRadicalStroke(c, values...)
			}
			cnt++
		}
	}, ucdparse.Unihan())
	T().Debugf("read %d radical-stroke entries", cnt)
	return err
}

// LoadCrossReference reads a cross-reference table of CJK Radicals glyphs,
//
//    2F00 ; 1   # KANGXI RADICAL ONE
//
// Comments and blank lines are skipped.
func LoadCrossReference(r io.Reader, b *Builder) error {
	var fail error
	err := ucdparse.Parse(r, func(token *ucdparse.Token) {
		if fail != nil {
			return
		}
		rad, err := strconv.Atoi(token.Field(1))
		if err != nil {
			fail = fmt.Errorf("line %d: radical number: %w", token.LineNo, err)
			return
		}
		from, to := token.Range()
		for c := from; c <= to; c++ {
			b.CrossReference(c, rad)
		}
	})
	if err != nil {
		return err
	}
	return fail
}
