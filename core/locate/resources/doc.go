/*
Package resources locates and loads bitmap font resources.

As font loading may be a time-consuming task, fonts are resolved in an
async/await fashion: ResolveFont returns a promise, which the client will
call later to receive the loaded font. The call to the promise-function
will then block until loading has completed.

Fonts are searched, in this order,

  - in the global font registry,
  - in the directory configured with key 'font-path': resource forks
    (*.rsrc) and data-fork suitcases (*.dfont) containing the font, or raw
    resource dumps named after the resource ID (e.g. "396.fnt"),
  - in the suitcase configured with key 'font-suitcase', either a path or a
    file name to be found among the system's font directories.

Fonts loaded from files are stored in the global registry.
*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'macfont.resources'.
func tracer() tracing.Trace {
	return tracing.Select("macfont.resources")
}
