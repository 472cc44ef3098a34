package scan

// Parser scans input texts against a fixed registry of token descriptors.
// A parser holds no per-scan state and may be used for any number of
// Parse calls, also concurrently, as long as the client's probes and
// hooks are free of shared mutable state.
type Parser struct {
	reg     *Registry
	machine Machine
}

// NewParser creates a parser for a registry. machine receives the flush
// and finish hooks during every scan; passing nil disables them.
func NewParser(reg *Registry, machine Machine) *Parser {
	if machine == nil {
		machine = NullMachine{}
	}
	return &Parser{reg: reg, machine: machine}
}

// Parse scans text once, left to right, and returns the finished tree.
// The scan loop alternates between resolving the nearest boundary event
// and applying it; it terminates because every applied event advances
// the cursor strictly, bounded by the text length.
//
// Markers still open when no further boundary can be found stay in the
// tree with their ranges unset, signaling "unterminated" to consumers;
// this is a defined output shape, not an error. The only scan-time error
// is a probe breaking its contract.
func (p *Parser) Parse(text string) (*Tree, error) {
	s := newState(text, p.machine)
	for {
		ev, err := s.resolveEvent(p.reg)
		if err != nil {
			return nil, err
		}
		tracer().Debugf("event %v at %d..%d, cursor %d", ev.kind, ev.begin, ev.end, s.pos)
		switch ev.kind {
		case eventStart:
			s.flush(s.text[s.pos:ev.begin], false)
			ref := s.tree.appendNode(s.current, ev.tok, ev.info, Span{Begin: ev.begin, End: ev.end})
			s.push(ref)
			s.pos = ev.end
			if ev.tok.OnStart != nil {
				ev.tok.OnStart(ev.info, s)
			}
		case eventEnd:
			s.flush(s.text[s.pos:ev.begin], true)
			ref := s.pop()
			s.tree.closeNode(ref, Span{Begin: ev.begin, End: ev.end})
			s.pos = ev.end
			if ev.tok.OnEnd != nil {
				ev.tok.OnEnd(s.tree.nodes[ref].info, s)
			}
		case eventUnit:
			s.flush(s.text[s.pos:ev.begin], false)
			ref := s.tree.appendNode(s.current, ev.tok, ev.info, Span{Begin: ev.begin, End: ev.end})
			s.tree.closeUnit(ref)
			s.pos = ev.end
			if ev.tok.OnStart != nil {
				ev.tok.OnStart(ev.info, s)
			}
		case eventNone:
			s.flush(s.text[s.pos:], true)
			s.pos = len(s.text)
			p.machine.Finish(s)
			if s.Depth() > 0 {
				tracer().Infof("scan finished with %d marker(s) left open", s.Depth())
			}
			return s.tree, nil
		}
	}
}
