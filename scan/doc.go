/*
Package scan implements a markup-agnostic scanning engine.

Clients declare a priority-ordered registry of token descriptors. Each
descriptor tells the engine how to recognize an opening marker, and—unless
the token is a unit token—how to recognize the matching closing marker,
possibly depending on data captured when the marker was opened. The engine
then scans an input text once, left to right, and builds a nested tree of
literal text spans and matched-token nodes, invoking client hooks at every
recognized boundary.

This is deliberately not a grammar compiler: there is no backtracking and
no ambiguity resolution beyond the registry order. It is a tool for small
bespoke inline markup languages, with tag-like delimiter pairs and
entity-like unit markers, where exact byte ranges of every match are
retained in the result tree.

A typical setup looks like this:

	reg, err := scan.NewRegistry(tokens...)
	if err != nil {
		…  // a descriptor is incomplete
	}
	p := scan.NewParser(reg, machine)
	tree, err := p.Parse(input)

The registry is immutable after construction and may be shared between
concurrent Parse calls; each call owns its scan state exclusively.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package scan

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tokere.scan'.
func tracer() tracing.Trace {
	return tracing.Select("tokere.scan")
}
