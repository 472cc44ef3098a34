package scan

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/rubyunworks/tokere/core"
	"github.com/stretchr/testify/assert"
)

// literalToken builds a descriptor matching fixed opening and closing
// strings; good enough for engine-level tests.
func literalToken(name, opener, closer string) *TokenDef {
	return &TokenDef{
		Name: name,
		Start: func(text string, pos int, _ *State) (Match, bool) {
			at := strings.Index(text[pos:], opener)
			if at < 0 {
				return Match{}, false
			}
			return Match{Begin: pos + at, End: pos + at + len(opener), Info: name}, true
		},
		Stop: func(text string, pos int, _ *State) (Match, bool) {
			at := strings.Index(text[pos:], closer)
			if at < 0 {
				return Match{}, false
			}
			return Match{Begin: pos + at, End: pos + at + len(closer)}, true
		},
	}
}

func unitToken(name, marker string) *TokenDef {
	return &TokenDef{
		Name: name,
		Unit: true,
		Start: func(text string, pos int, _ *State) (Match, bool) {
			at := strings.Index(text[pos:], marker)
			if at < 0 {
				return Match{}, false
			}
			return Match{Begin: pos + at, End: pos + at + len(marker), Info: name}, true
		},
	}
}

func TestRegistryOK(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tokere.scan")
	defer teardown()
	//
	reg, err := NewRegistry(literalToken("a", "<", ">"), unitToken("u", "*"))
	assert.NoError(t, err)
	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, "a", reg.Token("a").Name)
	assert.Nil(t, reg.Token("nosuch"))
}

func TestRegistryRejectsIncompleteTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tokere.scan")
	defer teardown()
	//
	_, err := NewRegistry(nil)
	assert.Equal(t, core.EREGISTRATION, core.Code(err))

	_, err = NewRegistry(&TokenDef{Start: literalToken("a", "<", ">").Start})
	assert.Equal(t, core.EREGISTRATION, core.Code(err), "unnamed token must be rejected")

	_, err = NewRegistry(&TokenDef{Name: "a"})
	assert.Equal(t, core.EREGISTRATION, core.Code(err), "token without start probe must be rejected")

	noStop := literalToken("a", "<", ">")
	noStop.Stop = nil
	_, err = NewRegistry(noStop)
	assert.Equal(t, core.EREGISTRATION, core.Code(err), "non-unit token without stop probe must be rejected")

	rawUnit := unitToken("u", "*")
	rawUnit.Raw = true
	_, err = NewRegistry(rawUnit)
	assert.Equal(t, core.EREGISTRATION, core.Code(err), "raw unit token must be rejected")
}

func TestRegistryIsolation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tokere.scan")
	defer teardown()
	//
	tokens := []*TokenDef{literalToken("a", "<", ">")}
	reg, err := NewRegistry(tokens...)
	assert.NoError(t, err)
	tokens[0] = nil // clients cannot corrupt a built registry
	assert.NotNil(t, reg.Token("a"))
}
