/*
Package decomp builds decomposition tables from an IDS table.

Loading happens in two passes. The direct pass reads an IDS table line by
line,

   # {07}  description of a special component
   U+3416  㐖  ^⿰吉乚$

parses every IDS and stores the resulting components per character.
Characters which fail to parse are recorded in a failure ledger and do not
stop the load. The recursive pass then substitutes every component of a
direct decomposition by its own decomposition (if there is one) and parses
the result once more. It is a single pass over the characters in code-point
order: a component is replaced by its recursive decomposition if that has
already been computed, by its direct decomposition otherwise. Deeper
structures are therefore not fully reduced.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package decomp

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
