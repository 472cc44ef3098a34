/*
Package markup provides a small demo token set for the scan engine.

It recognizes tag-like delimiter pairs of the form

	[name] … [name.]

where the closing marker must repeat the name captured by the opening
marker, plus entity-like unit markers of the form

	&name;

Together these exercise the engine's context-sensitive closing and unit
tokens. They are meant as a template for defining bespoke token sets, not
as a markup language of their own.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tokere.markup'.
func tracer() tracing.Trace {
	return tracing.Select("tokere.markup")
}
