package red

// Action is a dispatched message: a kind string selecting at most one
// handler, plus the positional arguments forwarded to it. Argument
// count and types are fixed per kind by convention, not checked at
// runtime.
type Action struct {
	Kind string `json:"kind" yaml:"kind"`
	Args []any  `json:"arguments" yaml:"arguments"`
}

// Creator builds an Action of a fixed kind from positional arguments.
type Creator func(args ...any) Action

func creator(kind string) Creator {
	return func(args ...any) Action {
		return Action{Kind: kind, Args: args}
	}
}

// Bind projects b's action creators through a dispatch function: the
// result maps every registered kind to a func that creates the Action
// and immediately dispatches it. A convenience for wiring dispatch call
// sites; it adds no capability beyond Actions plus dispatch.
func Bind(b *Builder, dispatch func(Action)) map[string]func(...any) {
	bound := make(map[string]func(...any), len(b.actions))
	for kind, create := range b.actions {
		bound[kind] = func(args ...any) {
			dispatch(create(args...))
		}
	}
	return bound
}
