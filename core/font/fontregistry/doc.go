/*
Package fontregistry manages a registry for loaded bitmap fonts.

Fonts are keyed by their resource ID, which encodes family and point size.
Iteration over the registry yields fonts in ascending ID order, i.e. grouped
by family and sorted by size within a family.

A registry is safe for concurrent use.
*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'macfont.fonts'
func tracer() tracing.Trace {
	return tracing.Select("macfont.fonts")
}
