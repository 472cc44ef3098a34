package scan

import (
	"github.com/rubyunworks/tokere/core"
)

type eventKind int8

const (
	eventNone eventKind = iota // no further boundary: FINISH
	eventStart
	eventEnd
	eventUnit
)

func (k eventKind) String() string {
	switch k {
	case eventStart:
		return "START"
	case eventEnd:
		return "END"
	case eventUnit:
		return "UNIT"
	}
	return "FINISH"
}

// event is the resolved nearest boundary of one scan iteration.
type event struct {
	kind  eventKind
	tok   *TokenDef
	begin int
	end   int
	info  interface{}
}

// resolveEvent determines the nearest upcoming boundary at or after the
// cursor. It first probes for the closer of the innermost open marker,
// then for every registered opener in precedence order, keeping the
// match with the smallest begin index.
//
// Ties are intentional: a later candidate only replaces the pending event
// with a strictly smaller index, so a closing match wins ties against any
// opener at the same position, and among openers the earliest-registered
// descriptor wins. This total order is the sole precedence mechanism.
func (s *State) resolveEvent(reg *Registry) (event, error) {
	s.ev = event{kind: eventNone}
	bound := len(s.text)
	top := s.topToken()
	if top != nil {
		m, ok := top.Stop(s.text, s.pos, s)
		if ok {
			if err := checkMatch(top, m, s.pos); err != nil {
				return event{}, err
			}
			s.ev = event{kind: eventEnd, tok: top, begin: m.Begin, end: m.End}
			bound = m.Begin
		}
	}
	if top == nil || !top.Raw { // inside a raw pair only the closer counts
		for _, tok := range reg.tokens {
			m, ok := tok.Start(s.text, s.pos, s)
			if !ok {
				continue
			}
			if err := checkMatch(tok, m, s.pos); err != nil {
				return event{}, err
			}
			if m.Begin < bound {
				kind := eventStart
				if tok.Unit {
					kind = eventUnit
				}
				s.ev = event{kind: kind, tok: tok, begin: m.Begin, end: m.End, info: m.Info}
				bound = m.Begin
			}
		}
	}
	return s.ev, nil
}

// checkMatch rejects matches which would break the monotonic-progress
// guarantee: the scan terminates only because every applied event moves
// the cursor strictly forward.
func checkMatch(tok *TokenDef, m Match, pos int) error {
	if m.End <= m.Begin || m.Begin < pos {
		return core.Error(core.EPROBE,
			"token '%s': probe returned [%d,%d) at position %d", tok.Name, m.Begin, m.End, pos)
	}
	return nil
}
