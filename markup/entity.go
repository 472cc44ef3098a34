package markup

import (
	"regexp"

	"github.com/rubyunworks/tokere/scan"
)

var entityPattern = regexp.MustCompile(`&(\w+);`)

// Entity returns a unit descriptor for &word; markers. The word is
// captured as the node's info. Unit tokens never open nesting and never
// receive an end callback.
func Entity() *scan.TokenDef {
	return &scan.TokenDef{
		Name: "entity",
		Unit: true,
		Start: func(text string, pos int, state *scan.State) (scan.Match, bool) {
			loc := entityPattern.FindStringSubmatchIndex(text[pos:])
			if loc == nil {
				return scan.Match{}, false
			}
			name := text[pos+loc[2] : pos+loc[3]]
			return scan.Match{Begin: pos + loc[0], End: pos + loc[1], Info: name}, true
		},
	}
}
