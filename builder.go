package red

// Builder is an immutable bundle of an initial state snapshot and a
// mapping of action kind -> Handler. Composition operations return a
// new Builder; the receiver is never modified, so intermediate Builders
// stay valid and can be reused or merged into several final Builders.
type Builder struct {
	initial  State
	handlers map[string]Handler
	actions  map[string]Creator
}

// New returns the empty Builder: no state fields, no handlers. It is
// the identity element of Merge.
func New() *Builder {
	return newBuilder(State{}, map[string]Handler{})
}

// newBuilder takes ownership of initial and handlers; callers must pass
// fresh maps. The action-creator projection is derived here, once.
func newBuilder(initial State, handlers map[string]Handler) *Builder {
	actions := make(map[string]Creator, len(handlers))
	for kind := range handlers {
		actions[kind] = creator(kind)
	}
	return &Builder{
		initial:  initial,
		handlers: handlers,
		actions:  actions,
	}
}

//
// Composition
//

// Extend returns a new Builder with the given handlers registered in
// addition to the receiver's. On a kind collision the incoming handler
// wins; the receiver's handler for that kind becomes unreachable.
func (b *Builder) Extend(handlers map[string]Handler) *Builder {
	hs := make(map[string]Handler, len(b.handlers)+len(handlers))
	for kind, h := range b.handlers {
		hs[kind] = h
	}
	for kind, h := range handlers {
		hs[kind] = h
	}
	return newBuilder(clone(b.initial), hs)
}

// ExtendState returns a new Builder whose initial state is the shallow
// merge of the receiver's initial state with partial. Handlers are
// unchanged. Typically used to grow the state shape before attaching
// handlers for the new fields.
func (b *Builder) ExtendState(partial Partial) *Builder {
	hs := make(map[string]Handler, len(b.handlers))
	for kind, h := range b.handlers {
		hs[kind] = h
	}
	return newBuilder(merge(b.initial, partial), hs)
}

// Merge folds other into the receiver: initial states are shallow-merged
// and handler mappings unioned, other winning on conflicts in both. It
// is associative but not commutative; New() is its identity.
func (b *Builder) Merge(other *Builder) *Builder {
	return b.ExtendState(Partial(other.initial)).Extend(other.handlers)
}

// Slot names a Builder for Combine.
type Slot struct {
	Key     string
	Builder *Builder
}

// NS is shorthand for building a Slot.
func NS(key string, b *Builder) Slot {
	return Slot{Key: key, Builder: b}
}

// Combine nests each slot's Builder under its key: the combined initial
// state maps key -> that Builder's initial state, and every handler is
// rewritten to read and write only its own sub-state, leaving sibling
// namespaces untouched.
//
// Slots are processed in argument order. If two slots register the same
// action kind, the last slot processed wins and the earlier handler is
// unreachable -- the kinds of combined Builders should be kept disjoint.
func Combine(slots ...Slot) *Builder {
	initial := make(State, len(slots))
	handlers := map[string]Handler{}
	for _, slot := range slots {
		initial[slot.Key] = clone(slot.Builder.initial)
		for kind, h := range slot.Builder.handlers {
			handlers[kind] = namespaced(slot.Key, h)
		}
	}
	return newBuilder(initial, handlers)
}

// namespaced rewrites h to operate on the sub-state under key and to
// merge its partial result back into that sub-state only.
func namespaced(key string, h Handler) Handler {
	return func(s State, args ...any) Partial {
		sub := asState(s[key])
		return Partial{key: merge(sub, h(sub, args...))}
	}
}

//
// Runtime surface
//

// Initial returns a copy of the Builder's initial state.
func (b *Builder) Initial() State {
	return clone(b.initial)
}

// Actions returns a copy of the derived action-creator mapping: one
// Creator per registered handler kind.
func (b *Builder) Actions() map[string]Creator {
	actions := make(map[string]Creator, len(b.actions))
	for kind, create := range b.actions {
		actions[kind] = create
	}
	return actions
}

// Reducer derives the pure transition function for this Builder. A nil
// incoming state stands for the initial state. Actions whose kind has
// no registered handler leave the state unchanged (a fresh shallow copy
// is still returned, so callers may always treat the result as theirs).
func (b *Builder) Reducer() Reducer {
	initial := b.initial
	handlers := b.handlers
	return func(s State, a Action) State {
		if s == nil {
			s = initial
		}
		h, ok := handlers[a.Kind]
		if !ok {
			return clone(s)
		}
		return merge(s, h(s, a.Args...))
	}
}
