package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoRestoresPreviousState(t *testing.T) {
	m, sc := liveMatch(t)
	m = mustApply(t, m, sc, Runs{N: 2}).Match

	events := []Event{
		Runs{N: 4},
		Runs{N: 1},
		SwapStrike{},
		Extra{Type: ExtraNoBall, Amount: 1},
		Extra{Type: ExtraBye, Amount: 3},
		WicketWithReplacement{NewPlayer: "Arjun", Detail: WicketDetail{Type: DismissalCaught, Fielder: "Dan"}},
		RetiredWithReplacement{NewPlayer: "Sam", End: NonStrikerEnd},
		NewBowler{Name: "Chris"},
	}
	for _, ev := range events {
		t.Run(string(ev.Kind()), func(t *testing.T) {
			out := mustApply(t, m, ContextFrom(m), ev)
			require.Len(t, out.Match.History, len(m.History)+1)

			restored, rsc, err := Undo(out.Match)
			require.NoError(t, err)
			assert.Equal(t, m, restored)
			assert.Equal(t, ContextFrom(m), rsc)
		})
	}
}

func TestUndoWithEmptyHistory(t *testing.T) {
	m, _ := liveMatch(t)
	got, _, err := Undo(m)
	assert.ErrorIs(t, err, ErrNothingToUndo)
	assert.Equal(t, m, got)
}

func TestHistoryIsCapped(t *testing.T) {
	m, sc := liveMatch(t)
	first := m
	for i := 0; i < HistoryLimit+5; i++ {
		out := mustApply(t, m, sc, SwapStrike{})
		m, sc = out.Match, out.Context
	}
	require.Len(t, m.History, HistoryLimit)
	for _, snap := range m.History {
		assert.Nil(t, snap.History)
	}
	assert.NotEqual(t, first.CurrentBatsmen, m.History[0].CurrentBatsmen, "oldest snapshots were evicted")

	for i := 0; i < HistoryLimit; i++ {
		var err error
		m, _, err = Undo(m)
		require.NoError(t, err)
	}
	_, _, err := Undo(m)
	assert.ErrorIs(t, err, ErrNothingToUndo)
}

func TestSetupEventsAreNotUndoable(t *testing.T) {
	m, sc := liveMatch(t)
	assert.Empty(t, m.History)

	out := mustApply(t, m, sc, ManualOverride{Runs: intPtr(50)})
	assert.Empty(t, out.Match.History)

	out = mustApply(t, m, sc, RunOutStriker{})
	assert.Empty(t, out.Match.History)
}

func TestUndoAfterInningsBreak(t *testing.T) {
	m, sc := liveMatch(t)
	m = mustApply(t, m, sc, ManualOverride{Runs: intPtr(80), Wickets: intPtr(9)}).Match

	out := mustApply(t, m, ContextFrom(m), WicketWithReplacement{Detail: WicketDetail{Type: DismissalLBW}})
	require.True(t, out.Has(SignalStartSecondInnings))

	restored, rsc, err := Undo(out.Match)
	require.NoError(t, err)
	assert.Nil(t, restored.Score.Target)
	assert.Equal(t, "Lions", restored.Score.BattingTeam)
	assert.Equal(t, 80, restored.Score.Runs)
	assert.Equal(t, "Ravi", rsc.Striker)
}
