package red_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/red-go/red"
)

func TestActionCreatorRoundTrip(t *testing.T) {
	b := counterBuilder()
	actions := b.Actions()

	create, ok := actions["increment"]
	require.True(t, ok, "every registered kind gets a creator")

	got := create(1, "two", 3.0)
	assert.Equal(t, red.Action{Kind: "increment", Args: []any{1, "two", 3.0}}, got)

	// Dispatching a created action and a hand-built action must be
	// indistinguishable to the reducer.
	reduce := b.Reducer()
	assert.Empty(t, cmp.Diff(
		reduce(b.Initial(), red.Action{Kind: "increment"}),
		reduce(b.Initial(), create()),
	))
}

func TestActionsProjectionMatchesHandlers(t *testing.T) {
	b := counterBuilder().Extend(map[string]red.Handler{
		"decrement": func(s red.State, args ...any) red.Partial {
			return red.Partial{"count": s["count"].(int) - 1}
		},
	})

	actions := b.Actions()
	assert.Len(t, actions, 2)
	assert.Contains(t, actions, "increment")
	assert.Contains(t, actions, "decrement")

	// The returned mapping is a copy; callers can't reach into the
	// Builder through it.
	delete(actions, "increment")
	assert.Contains(t, b.Actions(), "increment")
}

func TestBindDispatchesCreatedActions(t *testing.T) {
	b := counterBuilder()

	var dispatched []red.Action
	bound := red.Bind(b, func(a red.Action) {
		dispatched = append(dispatched, a)
	})

	require.Contains(t, bound, "increment")
	bound["increment"]()
	bound["increment"](5)

	require.Len(t, dispatched, 2)
	assert.Equal(t, "increment", dispatched[0].Kind)
	assert.Empty(t, dispatched[0].Args)
	assert.Equal(t, []any{5}, dispatched[1].Args)
}

func TestBindAgainstReducerLoop(t *testing.T) {
	b := counterBuilder()
	reduce := b.Reducer()

	// Minimal host: a closure holding the current state.
	state := b.Initial()
	bound := red.Bind(b, func(a red.Action) {
		state = reduce(state, a)
	})

	bound["increment"]()
	bound["increment"]()
	bound["increment"]()

	assert.Equal(t, 3, state["count"])
}
