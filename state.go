package red

// State is a mapping of named fields to values. Nested sub-states (as
// produced by Combine or by the YAML/JSON codecs) may appear either as
// State or as a plain map[string]any; all operations accept both forms.
type State map[string]any

// Partial is a handler's partial result: the fields it sets, and
// nothing else. Merging a Partial into a State overwrites only those
// fields, field by field, and preserves the rest.
type Partial map[string]any

// Handler is a pure transition function for one action kind. It
// receives the current state and the action's positional arguments and
// returns the fields it wants changed. Handlers must not mutate s.
type Handler func(s State, args ...any) Partial

// Reducer is the transition function a Builder derives: pure, total,
// safe to call repeatedly with the same arguments.
type Reducer func(s State, a Action) State

// clone returns a fresh shallow copy of s. clone(nil) is an empty,
// non-nil State.
func clone(s State) State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// merge returns a fresh State holding base overlaid with p. Fields in p
// overwrite same-named fields in base; fields absent from p are kept.
// The overwrite is an explicit per-key assignment so the last-write-wins
// rule does not depend on map internals.
func merge(base State, p Partial) State {
	out := clone(base)
	for k, v := range p {
		out[k] = v
	}
	return out
}

// asState coerces a stored sub-state to State. Decoded documents hold
// nested maps as map[string]any rather than State; anything else
// (missing key, scalar in a state slot) yields an empty State.
func asState(v any) State {
	switch s := v.(type) {
	case State:
		return s
	case map[string]any:
		return State(s)
	}
	return State{}
}
