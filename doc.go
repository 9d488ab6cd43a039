/*
Package cjkids decomposes CJK ideographs into their visual components.

Description

Ideographic Description Sequences (IDS) tell how a CJK character is built
from smaller parts, e.g.

   㐖 = ⿰吉乚

(吉 to the left of 乚). This module reads a table of such descriptions and
derives, for every character, the list of its components together with
their position within the character cell. It derives two tables: a direct
one, holding the components as given by the table, and a recursive one,
where components have been replaced by their own decompositions.

To make output deterministic, characters are ordered by their Unihan
radical-stroke value; see package radical.

BSD License

Copyright (c) 2017–20, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRETC, INDIRETC, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRATC, STRITC LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

Package layout defines the placement of operands of the twelve Ideographic
Description Characters and the algebra for nesting them. Package ids holds
the IDS parser and the registry of special components, which have no
code-point of their own. Package radical builds an index of radicals from
the Unihan database and defines the Unihan order. Package decomp loads IDS
tables into decomposition stores.

This base package ties everything together. Load reads all input tables in
the correct order and returns an immutable Context:

   ctx, err := cjkids.LoadFiles(cjkids.Files{
       Unihan: []string{"Unihan_IRGSources.txt", "Unihan_RadicalStrokeCounts.txt"},
       IDS:    "IDS.TXT",
   })
   …
   d, ok := ctx.Recursive('㐖')

After loading, a Context may be shared between goroutines freely.
*/
package cjkids

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
