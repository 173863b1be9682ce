package scoring

// HistoryLimit caps the undo buffer.
const HistoryLimit = 20

// pushHistory stores a copy of prev on next's history, dropping the oldest
// entry past the limit.
func pushHistory(next *Match, prev Match) {
	snap := prev.Clone()
	snap.History = nil
	h := append(next.History, snap)
	if len(h) > HistoryLimit {
		h = h[len(h)-HistoryLimit:]
	}
	next.History = h
}

// Undo reverts the last recorded event and returns the restored match with a
// scoring context rebuilt from it.
func Undo(m Match) (Match, Context, error) {
	if len(m.History) == 0 {
		return m, ContextFrom(m), ErrNothingToUndo
	}
	last := len(m.History) - 1
	restored := m.History[last].Clone()
	if last > 0 {
		restored.History = make([]Match, last)
		for i := range last {
			restored.History[i] = m.History[i].Clone()
		}
	}
	return restored, ContextFrom(restored), nil
}
