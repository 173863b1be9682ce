package scoring

import "fmt"

// maxRunOutRuns is the most runs a pair can complete before a run out.
const maxRunOutRuns = 4

type RunOutPhase string

const (
	RunOutIdle                RunOutPhase = "idle"
	AwaitingRunOutFielder     RunOutPhase = "awaiting_run_out_fielder"
	AwaitingReplacementBatter RunOutPhase = "awaiting_replacement_batsman"
)

// RunOutState is the pending half of a two-step run out.
type RunOutState struct {
	Phase   RunOutPhase `json:"phase"`
	End     End         `json:"end"`
	Fielder string      `json:"fielder,omitempty"`
	Runs    int         `json:"runs"`
	Crossed bool        `json:"crossed"`
}

func (s RunOutState) pending() bool {
	return s.Phase == AwaitingRunOutFielder || s.Phase == AwaitingReplacementBatter
}

// Context is the scorer's session state carried between events.
type Context struct {
	Striker    string      `json:"striker"`
	NonStriker string      `json:"non_striker"`
	Bowler     string      `json:"bowler"`
	RunOut     RunOutState `json:"run_out"`
}

// ContextFrom derives a fresh context from the batsmen and bowler recorded on m.
func ContextFrom(m Match) Context {
	sc := Context{Bowler: m.CurrentBowler, RunOut: RunOutState{Phase: RunOutIdle}}
	for _, b := range m.CurrentBatsmen {
		if b.OnStrike {
			sc.Striker = b.Name
		} else {
			sc.NonStriker = b.Name
		}
	}
	return sc
}

// reconcile fills names the caller did not cache from the document.
func (sc Context) reconcile(m *Match) Context {
	from := ContextFrom(*m)
	if sc.Striker == "" {
		sc.Striker = from.Striker
	}
	if sc.NonStriker == "" {
		sc.NonStriker = from.NonStriker
	}
	if sc.Bowler == "" {
		sc.Bowler = from.Bowler
	}
	if sc.RunOut.Phase == "" {
		sc.RunOut.Phase = RunOutIdle
	}
	return sc
}

// stepRunOut advances the run-out machine for the events that only touch it.
// handled is false when ev must go on to the engine.
func stepRunOut(sc Context, ev Event) (next Context, handled bool, err error) {
	switch e := ev.(type) {
	case RunOutStriker, RunOutNonStriker:
		if sc.RunOut.pending() {
			return sc, true, ErrRunOutPending
		}
		end := StrikerEnd
		if _, ok := e.(RunOutNonStriker); ok {
			end = NonStrikerEnd
		}
		sc.RunOut = RunOutState{Phase: AwaitingRunOutFielder, End: end}
		return sc, true, nil

	case RunOutFielder:
		if sc.RunOut.Phase != AwaitingRunOutFielder {
			return sc, true, ErrNoPendingRunOut
		}
		if e.Runs < 0 || e.Runs > maxRunOutRuns {
			return sc, true, fmt.Errorf("%w: run out with %d completed runs", ErrInvalidEvent, e.Runs)
		}
		sc.RunOut.Phase = AwaitingReplacementBatter
		sc.RunOut.Fielder = e.Fielder
		sc.RunOut.Runs = e.Runs
		sc.RunOut.Crossed = e.Crossed
		return sc, true, nil

	case CancelRunOut:
		sc.RunOut = RunOutState{Phase: RunOutIdle}
		return sc, true, nil

	case WicketWithReplacement:
		if sc.RunOut.pending() && e.Detail.Type != DismissalRunOut {
			return sc, true, ErrRunOutPending
		}
		return sc, false, nil
	}

	if sc.RunOut.pending() {
		return sc, true, ErrRunOutPending
	}
	return sc, false, nil
}

// runOutDetail merges the pending run-out state with the finishing event.
// Values on the event win over those captured earlier.
func runOutDetail(sc Context, d WicketDetail) (WicketDetail, End) {
	end := StrikerEnd
	if sc.RunOut.pending() {
		end = sc.RunOut.End
		if d.Fielder == "" {
			d.Fielder = sc.RunOut.Fielder
		}
		if d.Runs == 0 {
			d.Runs = sc.RunOut.Runs
		}
		if !d.Crossed {
			d.Crossed = sc.RunOut.Crossed
		}
	}
	return d, end
}
