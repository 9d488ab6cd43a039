/*
Package ids parses Ideographic Description Sequences.

An Ideographic Description Sequence (IDS) describes how a CJK character is
composed of smaller components, in prefix notation. For example

   㐖 = ⿰吉乚

tells that U+3416 is made of 吉 on the left and 乚 on the right. Operators
may be nested:

   㿂 = ⿸疒⿰⿱山王攵

The parser turns an IDS into a flat list of components in pre-order (the
order in which they appear in the description), each with an absolute
rectangle within the character cell (see package layout).

Leaves and escapes

Operands must either be structural operators or primitive leaves: CJK
ideographs, radicals, CJK strokes or placeholders from two private ranges.
Data files use a handful of escapes for components which have no code-point
of their own:

   {07}   numbered special component, mapped to U+E007
   ↔正    mirrored form of 正, mapped to a placeholder U+E040…
   ↷止    rotated form of 止, mapped to a placeholder U+E050…
   ？     uncertain component; the IDS is flagged as questionable

Special components are recorded in a Registry, together with the
characters they occur in.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ids

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
