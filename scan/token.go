package scan

// Match is the result of a successful probe: a half-open byte range
// [Begin,End) into the scanned text, plus opaque client data captured at
// the match site. Info is threaded through to the node created for the
// match and to the per-token callbacks.
type Match struct {
	Begin int
	End   int
	Info  interface{}
}

// A StartProbe locates the leftmost opening occurrence of its token at or
// after pos, returning false if there is none. Probes must be pure
// functions of their arguments; they read the scan state but never
// advance it.
type StartProbe func(text string, pos int, state *State) (Match, bool)

// A StopProbe locates the leftmost closing occurrence of its token at or
// after pos. It is only ever invoked while its token is the innermost
// open marker, so it may consult state.TopInfo to construct a closer
// specific to what was captured at open time.
type StopProbe func(text string, pos int, state *State) (Match, bool)

// A Callback is invoked synchronously during the scan, with the info
// captured at the token's opening match.
type Callback func(info interface{}, state *State)

// TokenDef bundles the recognition behavior for one kind of marker under
// one token identity: a start probe, a stop probe (unless the token is a
// unit token), and optional per-token callbacks. Descriptors are not
// modified by the engine and must not change once registered.
//
// Unit tokens match and close in a single event: they never open nesting
// and never receive an OnEnd callback. Raw tokens suspend tokenization
// between their markers, so that the enclosed content is captured
// verbatim and only their own closer can terminate them.
type TokenDef struct {
	Name    string
	Unit    bool
	Raw     bool
	Start   StartProbe
	Stop    StopProbe
	OnStart Callback
	OnEnd   Callback
}
