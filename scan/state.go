package scan

import (
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// State is the mutable scan state of one Parse call: the immutable input
// text, the cursor, the stack of currently-open nodes and the event being
// applied. One state is owned exclusively by one Parse invocation.
//
// Probes and hooks receive the state for reading; they must not keep it
// past the call.
type State struct {
	text    string
	pos     int
	tree    *Tree
	current NodeRef
	open    *arraystack.Stack // NodeRef entries, innermost on top
	machine Machine
	ev      event
}

func newState(text string, machine Machine) *State {
	return &State{
		text:    text,
		tree:    newTree(text),
		current: RootRef,
		open:    arraystack.New(),
		machine: machine,
	}
}

// Text returns the complete input text.
func (s *State) Text() string {
	return s.text
}

// Pos returns the current scan position, a byte offset into the text.
// The position only ever increases during a scan.
func (s *State) Pos() int {
	return s.pos
}

// Tree returns the tree under construction.
func (s *State) Tree() *Tree {
	return s.tree
}

// Depth returns the number of currently-open markers.
func (s *State) Depth() int {
	return s.open.Size()
}

// Top returns the innermost open node, if any.
func (s *State) Top() (NodeRef, bool) {
	v, ok := s.open.Peek()
	if !ok {
		return noRef, false
	}
	return v.(NodeRef), true
}

// TopInfo returns the info captured by the innermost open marker. Stop
// probes use it to construct a closer specific to what was opened.
func (s *State) TopInfo() (interface{}, bool) {
	ref, ok := s.Top()
	if !ok {
		return nil, false
	}
	return s.tree.nodes[ref].info, true
}

// topToken returns the descriptor of the innermost open marker, or nil.
func (s *State) topToken() *TokenDef {
	ref, ok := s.Top()
	if !ok {
		return nil
	}
	return s.tree.nodes[ref].tok
}

func (s *State) push(ref NodeRef) {
	s.open.Push(ref)
	s.current = ref
}

// pop removes the innermost open node. The stack always mirrors the path
// from the root to the current node, so the popped node is the current
// one and its parent becomes current.
func (s *State) pop() NodeRef {
	v, _ := s.open.Pop()
	ref := v.(NodeRef)
	s.current = s.tree.nodes[ref].parent
	return ref
}

// flush appends a literal text span to the current node and reports it to
// the machine. With strip set, exactly one trailing newline is removed
// first; this absorbs the newline of a closing marker placed on its own
// line. Empty spans are skipped.
func (s *State) flush(text string, strip bool) {
	if strip {
		text = strings.TrimSuffix(text, "\n")
	}
	if text == "" {
		return
	}
	s.tree.appendText(s.current, text)
	s.machine.Flush(text, s)
}
