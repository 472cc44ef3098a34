package scan

import (
	"github.com/rubyunworks/tokere/core"
)

// Registry is an ordered collection of token descriptors. Insertion order
// is match precedence: whenever two descriptors could match at the same
// position, the one registered earlier wins. A registry is read-only once
// constructed and may be shared by concurrent Parse calls.
type Registry struct {
	tokens []*TokenDef
}

// NewRegistry builds a registry from descriptors, in precedence order.
// Incomplete descriptors are rejected here, never mid-scan: every token
// needs a name and a start probe, and a non-unit token needs a stop probe.
func NewRegistry(tokens ...*TokenDef) (*Registry, error) {
	for i, tok := range tokens {
		if tok == nil {
			return nil, core.Error(core.EREGISTRATION, "token #%d is nil", i)
		}
		if tok.Name == "" {
			return nil, core.Error(core.EREGISTRATION, "token #%d has no name", i)
		}
		if tok.Start == nil {
			return nil, core.Error(core.EREGISTRATION, "token '%s' has no start probe", tok.Name)
		}
		if tok.Unit && tok.Raw {
			return nil, core.Error(core.EREGISTRATION, "token '%s': a unit token cannot be raw", tok.Name)
		}
		if !tok.Unit && tok.Stop == nil {
			return nil, core.Error(core.EREGISTRATION, "token '%s' has no stop probe", tok.Name)
		}
	}
	reg := &Registry{tokens: make([]*TokenDef, len(tokens))}
	copy(reg.tokens, tokens)
	tracer().Debugf("registry holds %d token(s)", len(reg.tokens))
	return reg, nil
}

// Len returns the number of registered descriptors.
func (reg *Registry) Len() int {
	return len(reg.tokens)
}

// Token returns the descriptor with the given name, or nil.
func (reg *Registry) Token(name string) *TokenDef {
	for _, tok := range reg.tokens {
		if tok.Name == name {
			return tok
		}
	}
	return nil
}
