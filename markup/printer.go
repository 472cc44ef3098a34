package markup

import (
	"fmt"
	"io"
	"strings"

	"github.com/rubyunworks/tokere/scan"
)

// Printer is a scan.Machine rendering scan events as an indented trace,
// one line per boundary. It is the "machine" used by the demo CLI and
// doubles as an example of wiring callbacks into a token set.
//
// A printer keeps an indentation counter across callbacks and is
// therefore not safe for concurrent scans.
type Printer struct {
	w      io.Writer
	indent int
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Attach registers the printer as the callback target of the given
// descriptors and returns them, ready for registry construction.
func (p *Printer) Attach(tokens ...*scan.TokenDef) []*scan.TokenDef {
	for _, tok := range tokens {
		tok := tok
		if tok.Unit {
			tok.OnStart = func(info interface{}, state *scan.State) {
				p.line("%s %v", tok.Name, info)
			}
			continue
		}
		tok.OnStart = func(info interface{}, state *scan.State) {
			p.line("%s %v {", tok.Name, info)
			p.indent++
		}
		tok.OnEnd = func(info interface{}, state *scan.State) {
			p.indent--
			p.line("}")
		}
	}
	return tokens
}

// Flush is part of interface scan.Machine.
func (p *Printer) Flush(text string, state *scan.State) {
	p.line("%q", text)
}

// Finish is part of interface scan.Machine.
func (p *Printer) Finish(state *scan.State) {
	if state.Depth() > 0 {
		p.line("… %d marker(s) left open", state.Depth())
	}
}

func (p *Printer) line(format string, v ...interface{}) {
	fmt.Fprint(p.w, strings.Repeat("   ", p.indent))
	fmt.Fprintf(p.w, format+"\n", v...)
}

var _ scan.Machine = &Printer{}
