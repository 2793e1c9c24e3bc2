// Package red provides a fluent builder for reducer functions: pure
// state-transition functions driven by discrete, named actions.
//
// A Builder bundles an initial state snapshot with a mapping of named
// transition handlers. Builders are immutable values; every composition
// operation (Extend, ExtendState, Merge, Combine) returns a new Builder
// and never mutates its receiver. Once configured, a Builder hands its
// Initial state and derived Reducer to whatever state-management host
// the application uses; the host then applies reducer(state, action)
// per dispatched action.
//
//	b := red.New().
//		ExtendState(red.Partial{"count": 0}).
//		Extend(map[string]red.Handler{
//			"increment": func(s red.State, args ...any) red.Partial {
//				return red.Partial{"count": s["count"].(int) + 1}
//			},
//		})
//
//	reduce := b.Reducer()
//	next := reduce(b.Initial(), b.Actions()["increment"]())
//
// Dispatching an action whose kind has no registered handler is a
// silent no-op: the reducer returns the state unchanged. That keeps old
// reducers forward-compatible with action kinds they do not know, at
// the cost of masking typos in action names.
package red
