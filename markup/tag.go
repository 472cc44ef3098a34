package markup

import (
	"regexp"
	"strings"

	"github.com/rubyunworks/tokere/scan"
)

var anyTagPattern = regexp.MustCompile(`\[(\w+)\]`)

// AnyTag returns a descriptor recognizing every [word] opener. The word
// is captured as the node's info, and the matching closer must repeat it
// as [word.]. Nested tags with different names therefore close
// innermost-first without mis-pairing.
func AnyTag() *scan.TokenDef {
	return &scan.TokenDef{
		Name:  "tag",
		Start: openAnyTag,
		Stop:  closeTag,
	}
}

// Tag returns a descriptor for one fixed tag pair [name] … [name.].
// Registering fixed tags for several names keeps them distinct tokens,
// each with its own callbacks; AnyTag handles them all with one.
func Tag(name string) *scan.TokenDef {
	marker := "[" + name + "]"
	return &scan.TokenDef{
		Name: name,
		Start: func(text string, pos int, state *scan.State) (scan.Match, bool) {
			at := strings.Index(text[pos:], marker)
			if at < 0 {
				return scan.Match{}, false
			}
			return scan.Match{Begin: pos + at, End: pos + at + len(marker), Info: name}, true
		},
		Stop: closeTag,
	}
}

// RawTag is AnyTag with tokenization suspended between the markers: the
// enclosed content is captured verbatim and only the matching closer can
// terminate it.
func RawTag() *scan.TokenDef {
	tok := AnyTag()
	tok.Name = "raw"
	tok.Raw = true
	return tok
}

func openAnyTag(text string, pos int, state *scan.State) (scan.Match, bool) {
	loc := anyTagPattern.FindStringSubmatchIndex(text[pos:])
	if loc == nil {
		return scan.Match{}, false
	}
	name := text[pos+loc[2] : pos+loc[3]]
	return scan.Match{Begin: pos + loc[0], End: pos + loc[1], Info: name}, true
}

// closeTag builds the closing marker from the name captured by the
// innermost open marker. The marker cannot be pre-compiled at
// registration time; it depends on what was opened.
func closeTag(text string, pos int, state *scan.State) (scan.Match, bool) {
	info, ok := state.TopInfo()
	if !ok {
		return scan.Match{}, false
	}
	name, ok := info.(string)
	if !ok {
		tracer().Errorf("tag closer: captured info is %T, not a name", info)
		return scan.Match{}, false
	}
	marker := "[" + name + ".]"
	at := strings.Index(text[pos:], marker)
	if at < 0 {
		return scan.Match{}, false
	}
	return scan.Match{Begin: pos + at, End: pos + at + len(marker)}, true
}
