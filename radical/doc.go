/*
Package radical builds radical/stroke indexes for CJK ideographs.

Dictionaries order Han characters by their radical and the number of
strokes remaining after the radical. The Unihan database records this as
property kRSUnicode, with values like "85.5" (radical 85, 5 residual
strokes) or "90'.4", where the apostrophe denotes a simplified form of
the radical. Adobe's Japan1-6 character collection records a more detailed
variant (kRSAdobe_Japan1_6, values like "C+1200+1.1.0"), which includes the
number of strokes of the radical form itself.

Package radical condenses both properties into an immutable Index:

  - a numeric sort key per character (radical×10000 + simplified×1000 + strokes)
  - sets of characters which are radicals themselves (zero residual strokes)
  - Adobe's glyph sets per (radical, strokes in radical, residual strokes)
  - a map from characters to radical numbers, merged from the sources above
    and from a cross-reference table of the CJK Radicals blocks

An Index defines the "Unihan order" on strings (see Index.Compare), which
is used throughout this module to produce deterministic output.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package radical

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
