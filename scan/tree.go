package scan

import (
	"fmt"
	"io"
	"strings"
)

// Span is a half-open byte range [Begin,End) into the parsed text.
type Span struct {
	Begin int
	End   int
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Begin
}

// Cut returns the slice of text covered by the span.
func (s Span) Cut(text string) string {
	return text[s.Begin:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Begin, s.End)
}

// NodeRef identifies a node within its tree. References stay valid for
// the lifetime of the tree.
type NodeRef int

// RootRef refers to the implicit root container of every tree.
const RootRef NodeRef = 0

const noRef NodeRef = -1

// Child is one entry in a node's ordered child sequence: either a literal
// text span or a nested node.
type Child struct {
	ref  NodeRef
	text string
}

// IsText returns true if the child is a literal text span.
func (c Child) IsText() bool {
	return c.ref == noRef
}

// Text returns the literal text of a text child, or "".
func (c Child) Text() string {
	return c.text
}

// Node returns the reference of a node child; only valid if !IsText.
func (c Child) Node() NodeRef {
	return c.ref
}

// All nodes of a tree live in a single growable arena owned by the tree,
// and refer to each other by index. This keeps parent back-references and
// parent-held child lists free of ownership cycles.
type node struct {
	tok      *TokenDef
	info     interface{}
	parent   NodeRef
	children []Child
	open     Span // span of the opening marker; the full match for units
	outer    Span
	inner    Span
	closed   bool
}

// Tree is the result of a parse: the input text plus the node arena. The
// children of the root are the parse result proper. Trees are passive
// values after Parse returns; they are safe for concurrent reads.
type Tree struct {
	text  string
	nodes []node
}

func newTree(text string) *Tree {
	t := &Tree{text: text}
	t.nodes = append(t.nodes, node{parent: noRef}) // the implicit root
	return t
}

// Text returns the complete input text the tree was parsed from.
func (t *Tree) Text() string {
	return t.text
}

// Children returns the ordered child sequence of a node, in document
// order.
func (t *Tree) Children(ref NodeRef) []Child {
	return t.nodes[ref].children
}

// Parent returns the parent of a node; the root has no parent.
func (t *Tree) Parent(ref NodeRef) (NodeRef, bool) {
	p := t.nodes[ref].parent
	return p, p != noRef
}

// Token returns the descriptor that matched a node, or nil for the root.
func (t *Tree) Token(ref NodeRef) *TokenDef {
	return t.nodes[ref].tok
}

// Name returns the token name of a node, or "" for the root.
func (t *Tree) Name(ref NodeRef) string {
	if tok := t.nodes[ref].tok; tok != nil {
		return tok.Name
	}
	return ""
}

// Info returns the client data captured by a node's opening match.
func (t *Tree) Info(ref NodeRef) interface{} {
	return t.nodes[ref].info
}

// IsUnit returns true if a node stems from a unit token.
func (t *Tree) IsUnit(ref NodeRef) bool {
	tok := t.nodes[ref].tok
	return tok != nil && tok.Unit
}

// Outer returns the full span of a matched node, opening marker through
// closing marker inclusive. ok is false for the root and for nodes left
// open at the end of the parse.
func (t *Tree) Outer(ref NodeRef) (Span, bool) {
	n := &t.nodes[ref]
	return n.outer, n.closed
}

// Inner returns the span strictly between a node's markers. ok is false
// for the root, for unit nodes and for nodes left open.
func (t *Tree) Inner(ref NodeRef) (Span, bool) {
	n := &t.nodes[ref]
	if n.tok == nil || n.tok.Unit {
		return Span{}, false
	}
	return n.inner, n.closed
}

// Opening returns the span of a node's opening marker. For unit nodes
// this equals the complete match. ok is false for the root.
func (t *Tree) Opening(ref NodeRef) (Span, bool) {
	n := &t.nodes[ref]
	return n.open, n.tok != nil
}

// appendText appends a literal text child. Empty spans are dropped.
func (t *Tree) appendText(parent NodeRef, text string) {
	if text == "" {
		return
	}
	p := &t.nodes[parent]
	p.children = append(p.children, Child{ref: noRef, text: text})
}

// appendNode creates a node for a fresh match and links it below parent.
func (t *Tree) appendNode(parent NodeRef, tok *TokenDef, info interface{}, open Span) NodeRef {
	ref := NodeRef(len(t.nodes))
	t.nodes = append(t.nodes, node{
		tok:    tok,
		info:   info,
		parent: parent,
		open:   open,
	})
	p := &t.nodes[parent]
	p.children = append(p.children, Child{ref: ref})
	return ref
}

// closeNode fixes a node's ranges once its closing marker is known.
// closing is the span of the closing marker itself.
func (t *Tree) closeNode(ref NodeRef, closing Span) {
	n := &t.nodes[ref]
	n.outer = Span{Begin: n.open.Begin, End: closing.End}
	n.inner = Span{Begin: n.open.End, End: closing.Begin}
	n.closed = true
}

// closeUnit fixes a unit node's single range.
func (t *Tree) closeUnit(ref NodeRef) {
	n := &t.nodes[ref]
	n.outer = n.open
	n.closed = true
}

// Outline writes an indented dump of the tree to w. Nodes still open at
// the end of the parse are flagged as such.
func (t *Tree) Outline(w io.Writer) {
	t.outline(w, RootRef, 0)
}

func (t *Tree) outline(w io.Writer, ref NodeRef, depth int) {
	ind := strings.Repeat("  ", depth)
	for _, ch := range t.Children(ref) {
		if ch.IsText() {
			fmt.Fprintf(w, "%s%q\n", ind, ch.Text())
			continue
		}
		n := ch.Node()
		switch outer, ok := t.Outer(n); {
		case t.IsUnit(n):
			fmt.Fprintf(w, "%s%s %v %s\n", ind, t.Name(n), t.Info(n), outer)
		case ok:
			inner, _ := t.Inner(n)
			fmt.Fprintf(w, "%s%s %v %s inner %s\n", ind, t.Name(n), t.Info(n), outer, inner)
		default:
			fmt.Fprintf(w, "%s%s %v (unterminated)\n", ind, t.Name(n), t.Info(n))
		}
		t.outline(w, n, depth+1)
	}
}
