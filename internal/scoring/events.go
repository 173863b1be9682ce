package scoring

// Event is one scoring action. The set of kinds is closed; each kind carries
// its own typed payload.
type Event interface {
	Kind() EventKind
	event()
}

type EventKind string

const (
	KindInitInnings      EventKind = "init_innings"
	KindRuns             EventKind = "runs"
	KindSwapStrike       EventKind = "swap_strike"
	KindExtra            EventKind = "extra"
	KindRunOutStriker    EventKind = "run_out_striker"
	KindRunOutNonStriker EventKind = "run_out_non_striker"
	KindRunOutFielder    EventKind = "run_out_fielder"
	KindCancelRunOut     EventKind = "cancel_run_out"
	KindWicket           EventKind = "wicket"
	KindRetire           EventKind = "retire"
	KindNewBowler        EventKind = "new_bowler"
	KindManualOverride   EventKind = "manual_override"
	KindSetToss          EventKind = "set_toss"
	KindSetSquads        EventKind = "set_squads"
)

// InitInnings opens the batting team's innings with two batsmen and a bowler.
type InitInnings struct {
	Striker    string
	NonStriker string
	Bowler     string
}

// Runs off the bat, n in {0,1,2,3,4,6}.
type Runs struct {
	N int
}

type SwapStrike struct{}

type Extra struct {
	Type   ExtraType
	Amount int
}

// RunOutStriker starts a run out of the striker. Nothing changes until the
// dismissal is completed with WicketWithReplacement.
type RunOutStriker struct{}

// RunOutNonStriker starts a run out of the non-striker.
type RunOutNonStriker struct{}

// RunOutFielder records the fielder and completed runs for a pending run out.
type RunOutFielder struct {
	Fielder string
	Runs    int
	Crossed bool
}

// CancelRunOut abandons a pending run out.
type CancelRunOut struct{}

type WicketDetail struct {
	Type    DismissalType
	Fielder string
	// Runs completed before a run out.
	Runs    int
	Crossed bool
}

type WicketWithReplacement struct {
	NewPlayer string
	Detail    WicketDetail
}

// End selects which batsman leaves; the zero value is the striker.
type End int

const (
	StrikerEnd End = iota
	NonStrikerEnd
)

type RetiredWithReplacement struct {
	NewPlayer string
	End       End
}

type NewBowler struct {
	Name string
}

// ManualOverride corrects fields directly. Nil fields are left alone.
type ManualOverride struct {
	Runs        *int
	Wickets     *int
	Overs       *Overs
	Striker     *string
	NonStriker  *string
	Bowler      *string
	BattingTeam *string
	Status      *MatchStatus
}

type SetToss struct {
	Winner   string
	Decision TossDecision
}

type SetSquads struct {
	TeamA []string
	TeamB []string
}

func (InitInnings) Kind() EventKind            { return KindInitInnings }
func (Runs) Kind() EventKind                   { return KindRuns }
func (SwapStrike) Kind() EventKind             { return KindSwapStrike }
func (Extra) Kind() EventKind                  { return KindExtra }
func (RunOutStriker) Kind() EventKind          { return KindRunOutStriker }
func (RunOutNonStriker) Kind() EventKind       { return KindRunOutNonStriker }
func (RunOutFielder) Kind() EventKind          { return KindRunOutFielder }
func (CancelRunOut) Kind() EventKind           { return KindCancelRunOut }
func (WicketWithReplacement) Kind() EventKind  { return KindWicket }
func (RetiredWithReplacement) Kind() EventKind { return KindRetire }
func (NewBowler) Kind() EventKind              { return KindNewBowler }
func (ManualOverride) Kind() EventKind         { return KindManualOverride }
func (SetToss) Kind() EventKind                { return KindSetToss }
func (SetSquads) Kind() EventKind              { return KindSetSquads }

func (InitInnings) event()            {}
func (Runs) event()                   {}
func (SwapStrike) event()             {}
func (Extra) event()                  {}
func (RunOutStriker) event()          {}
func (RunOutNonStriker) event()       {}
func (RunOutFielder) event()          {}
func (CancelRunOut) event()           {}
func (WicketWithReplacement) event()  {}
func (RetiredWithReplacement) event() {}
func (NewBowler) event()              {}
func (ManualOverride) event()         {}
func (SetToss) event()                {}
func (SetSquads) event()              {}

// recordsHistory reports whether the event snapshots the match before applying.
func recordsHistory(k EventKind) bool {
	switch k {
	case KindRuns, KindExtra, KindWicket, KindRetire, KindNewBowler, KindSwapStrike:
		return true
	}
	return false
}

// Signal asks the caller to prompt for something the engine will not decide.
type Signal string

const (
	SignalSelectNextBowler        Signal = "select_next_bowler"
	SignalSelectReplacementBatter Signal = "select_replacement_batsman"
	SignalStartSecondInnings      Signal = "start_second_innings"
	SignalMatchCompleted          Signal = "match_completed"
)
