package scan

// Machine is the client-facing hook surface of a scan. Flush is called
// with every literal text span as it is appended to the tree; Finish is
// called exactly once, when the scan reaches the end of the input. Both
// run synchronously inside the scan loop.
//
// Per-token callbacks do not live here but on the descriptors themselves
// (see TokenDef.OnStart and TokenDef.OnEnd).
type Machine interface {
	Flush(text string, state *State)
	Finish(state *State)
}

// NullMachine ignores all hook invocations.
type NullMachine struct{}

// Flush is a no-op.
func (NullMachine) Flush(string, *State) {}

// Finish is a no-op.
func (NullMachine) Finish(*State) {}

var _ Machine = NullMachine{}
