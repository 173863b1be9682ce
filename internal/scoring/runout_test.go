package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idle() Context {
	return Context{Striker: "Ravi", NonStriker: "Kiran", Bowler: "Ben", RunOut: RunOutState{Phase: RunOutIdle}}
}

func TestRunOutMachine(t *testing.T) {
	sc, handled, err := stepRunOut(idle(), RunOutNonStriker{})
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, RunOutState{Phase: AwaitingRunOutFielder, End: NonStrikerEnd}, sc.RunOut)

	_, _, err = stepRunOut(sc, RunOutStriker{})
	assert.ErrorIs(t, err, ErrRunOutPending)

	for _, runs := range []int{-1, 5, 6, 7} {
		_, _, err = stepRunOut(sc, RunOutFielder{Fielder: "Dan", Runs: runs})
		assert.ErrorIs(t, err, ErrInvalidEvent, "%d runs", runs)
	}

	sc, handled, err = stepRunOut(sc, RunOutFielder{Fielder: "Dan", Runs: 2, Crossed: true})
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, RunOutState{Phase: AwaitingReplacementBatter, End: NonStrikerEnd, Fielder: "Dan", Runs: 2, Crossed: true}, sc.RunOut)

	_, _, err = stepRunOut(sc, RunOutFielder{Fielder: "Dan"})
	assert.ErrorIs(t, err, ErrNoPendingRunOut)

	_, handled, err = stepRunOut(sc, WicketWithReplacement{NewPlayer: "Sam", Detail: WicketDetail{Type: DismissalRunOut}})
	require.NoError(t, err)
	assert.False(t, handled)

	_, _, err = stepRunOut(sc, WicketWithReplacement{NewPlayer: "Sam", Detail: WicketDetail{Type: DismissalBowled}})
	assert.ErrorIs(t, err, ErrRunOutPending)

	for _, ev := range []Event{Runs{N: 1}, SwapStrike{}, NewBowler{Name: "Chris"}, ManualOverride{}} {
		_, _, err = stepRunOut(sc, ev)
		assert.ErrorIs(t, err, ErrRunOutPending, "%T", ev)
	}

	sc, handled, err = stepRunOut(sc, CancelRunOut{})
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, idle(), sc)
}

func TestRunOutIgnoresOtherEventsWhenIdle(t *testing.T) {
	for _, ev := range []Event{Runs{N: 1}, Extra{Type: ExtraWide, Amount: 1}, WicketWithReplacement{}} {
		sc, handled, err := stepRunOut(idle(), ev)
		require.NoError(t, err)
		assert.False(t, handled)
		assert.Equal(t, idle(), sc)
	}
}

func TestRunOutDetailPrefersEventValues(t *testing.T) {
	sc := idle()
	sc.RunOut = RunOutState{Phase: AwaitingReplacementBatter, End: NonStrikerEnd, Fielder: "Dan", Runs: 1}

	d, end := runOutDetail(sc, WicketDetail{Type: DismissalRunOut})
	assert.Equal(t, NonStrikerEnd, end)
	assert.Equal(t, WicketDetail{Type: DismissalRunOut, Fielder: "Dan", Runs: 1}, d)

	d, _ = runOutDetail(sc, WicketDetail{Type: DismissalRunOut, Fielder: "Ed", Runs: 2, Crossed: true})
	assert.Equal(t, WicketDetail{Type: DismissalRunOut, Fielder: "Ed", Runs: 2, Crossed: true}, d)

	d, end = runOutDetail(idle(), WicketDetail{Type: DismissalRunOut, Fielder: "Ed"})
	assert.Equal(t, StrikerEnd, end)
	assert.Equal(t, "Ed", d.Fielder)
}

func TestContextFromDocument(t *testing.T) {
	m, _ := liveMatch(t)
	assert.Equal(t, idle(), ContextFrom(m))

	sc := Context{Bowler: "Chris"}.reconcile(&m)
	assert.Equal(t, Context{Striker: "Ravi", NonStriker: "Kiran", Bowler: "Chris", RunOut: RunOutState{Phase: RunOutIdle}}, sc)
}
