/*
Package ucdparse provides a line-level scanner for Unicode Character Database files.

It understands the format of the UCD files as defined in
http://www.unicode.org/reports/tr44/ (fields separated by semicolons,
code-points or code-point ranges in the first field, comments introduced by
'#'), as well as the tab-separated format of the Unihan database
(http://www.unicode.org/reports/tr38/), where code-points are written as
U+XXXX.

Creating Unicode tables is a rare task, so this is a rough implementation:
it reads line by line and does not try to recover from errors.
*/
package ucdparse

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
