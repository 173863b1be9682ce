// Package scoring turns ball-by-ball events into the next state of a cricket
// match document. It does no I/O.
package scoring

import (
	"fmt"
	"slices"
)

// Outcome is the result of applying one event.
type Outcome struct {
	Match   Match
	Context Context
	Signals []Signal
}

// Has reports whether sig was raised.
func (o Outcome) Has(sig Signal) bool {
	return slices.Contains(o.Signals, sig)
}

// Apply runs ev against m with the scorer's session state sc. It never
// mutates m; on error the outcome holds m and sc unchanged.
func Apply(m Match, ev Event, sc Context) (Outcome, error) {
	reject := func(err error) (Outcome, error) {
		return Outcome{Match: m, Context: sc}, err
	}
	if ev == nil {
		return reject(fmt.Errorf("%w: missing event", ErrInvalidEvent))
	}
	if m.Status == StatusCompleted {
		return reject(ErrMatchCompleted)
	}

	next := m.Clone()
	normalize(&next)
	ctx := sc.reconcile(&next)

	ctx, handled, err := stepRunOut(ctx, ev)
	if err != nil {
		return reject(err)
	}
	if handled {
		out := Outcome{Match: m, Context: ctx}
		if ctx.RunOut.Phase == AwaitingReplacementBatter {
			out.Signals = append(out.Signals, SignalSelectReplacementBatter)
		}
		return out, nil
	}

	if recordsHistory(ev.Kind()) {
		pushHistory(&next, m)
	}

	s := &scorer{m: &next, sc: ctx}
	switch e := ev.(type) {
	case InitInnings:
		err = s.initInnings(e)
	case Runs:
		err = s.runs(e)
	case SwapStrike:
		err = s.swapStrike()
	case Extra:
		err = s.extra(e)
	case WicketWithReplacement:
		err = s.wicket(e)
	case RetiredWithReplacement:
		err = s.retire(e)
	case NewBowler:
		err = s.newBowler(e)
	case ManualOverride:
		err = s.override(e)
	case SetToss:
		err = s.setToss(e)
	case SetSquads:
		err = s.setSquads(e)
	default:
		err = fmt.Errorf("%w: unsupported kind %q", ErrInvalidEvent, ev.Kind())
	}
	if err != nil {
		return reject(err)
	}

	normalize(&next)
	recomputeDerived(&next)
	syncCurrent(&next, s.sc)
	return Outcome{Match: next, Context: s.sc, Signals: s.signals}, nil
}

// scorer carries one event application.
type scorer struct {
	m       *Match
	sc      Context
	signals []Signal
}

func (s *scorer) signal(sig Signal) {
	if !slices.Contains(s.signals, sig) {
		s.signals = append(s.signals, sig)
	}
}

func (s *scorer) battingTeam() string { return s.m.Score.BattingTeam }
func (s *scorer) bowlingTeam() string { return s.m.BowlingTeam(s.m.Score.BattingTeam) }

// batting returns the card of the side at the crease.
func (s *scorer) batting() *Innings { return s.m.InningsOf(s.battingTeam()) }

// bowling returns the card holding the fielding side's bowlers.
func (s *scorer) bowling() *Innings { return s.m.InningsOf(s.bowlingTeam()) }

func (s *scorer) inningsDone(inn *Innings) bool {
	if inn.Wickets >= MaxWickets || inn.Overs.Balls() >= s.m.TotalOvers*BallsPerOver {
		return true
	}
	t := s.m.Score.Target
	return t != nil && inn.Runs >= *t
}

// crease checks that a ball can be bowled and returns the batting card and
// the current bowler's entry.
func (s *scorer) crease() (*Innings, *BowlingEntry, error) {
	if s.m.TeamA == "" || s.m.TeamB == "" {
		return nil, nil, fmt.Errorf("%w: teams not set", ErrUnknownTeam)
	}
	if s.sc.Striker == "" || s.sc.NonStriker == "" {
		return nil, nil, ErrMissingStriker
	}
	if s.sc.Bowler == "" {
		return nil, nil, ErrMissingBowler
	}
	bat, bowl := s.batting(), s.bowling()
	if bat == nil || bowl == nil {
		return nil, nil, ErrMissingStriker
	}
	if s.inningsDone(bat) {
		return nil, nil, ErrInningsOver
	}
	bat.ensureBatsman(s.sc.Striker)
	bat.ensureBatsman(s.sc.NonStriker)
	bi := bowl.ensureBowler(s.sc.Bowler)
	return bat, &bowl.Bowling[bi], nil
}

func (s *scorer) swap() {
	s.sc.Striker, s.sc.NonStriker = s.sc.NonStriker, s.sc.Striker
}

// advance adds one legal ball to o and reports whether it closed an over.
func advance(o Overs) (Overs, bool) {
	balls := o.Balls() + 1
	return OversFromBalls(balls), balls%BallsPerOver == 0
}

// bowlBall counts a legal delivery for the innings and for the bowler. The
// two counters roll over independently.
func (s *scorer) bowlBall(bat *Innings, bw *BowlingEntry) {
	var bowlerOver, inningsOver bool
	bw.Overs, bowlerOver = advance(bw.Overs)
	if bowlerOver {
		if bw.OverRuns == 0 {
			bw.Maidens++
		}
		bw.OverRuns = 0
	}
	bat.Overs, inningsOver = advance(bat.Overs)
	if inningsOver {
		s.swap()
		if bat.Overs.Whole() < s.m.TotalOvers {
			s.signal(SignalSelectNextBowler)
		}
	}
}

func countRun(inn *Innings, n int) {
	switch n {
	case 0:
		inn.Dots++
	case 1:
		inn.Ones++
	case 2:
		inn.Twos++
	case 3:
		inn.Threes++
	case 4:
		inn.Fours++
	case 6:
		inn.Sixes++
	}
}

func (s *scorer) runs(e Runs) error {
	switch e.N {
	case 0, 1, 2, 3, 4, 6:
	default:
		return fmt.Errorf("%w: %d runs off the bat", ErrInvalidEvent, e.N)
	}
	bat, bw, err := s.crease()
	if err != nil {
		return err
	}

	b := &bat.Batting[bat.battingIndex(s.sc.Striker)]
	b.Runs += e.N
	b.Balls++
	switch e.N {
	case 4:
		b.Fours++
	case 6:
		b.Sixes++
	}
	bat.Runs += e.N
	countRun(bat, e.N)
	bw.Runs += e.N
	bw.OverRuns += e.N

	if e.N%2 == 1 {
		s.swap()
	}
	s.bowlBall(bat, bw)
	s.checkInnings()
	return nil
}

func (s *scorer) swapStrike() error {
	if s.sc.Striker == "" || s.sc.NonStriker == "" {
		return ErrMissingStriker
	}
	s.swap()
	return nil
}

func (s *scorer) extra(e Extra) error {
	if e.Amount < 1 {
		return fmt.Errorf("%w: extra amount %d", ErrInvalidEvent, e.Amount)
	}
	switch e.Type {
	case ExtraWide, ExtraNoBall, ExtraBye, ExtraLegBye:
	default:
		return fmt.Errorf("%w: extra type %q", ErrInvalidEvent, e.Type)
	}
	bat, bw, err := s.crease()
	if err != nil {
		return err
	}

	bat.Runs += e.Amount
	bat.Extras.Total += e.Amount
	switch e.Type {
	case ExtraWide:
		bat.Extras.Wides += e.Amount
		bw.Wides += e.Amount
	case ExtraNoBall:
		bat.Extras.NoBalls += e.Amount
		bw.NoBalls += e.Amount
	case ExtraBye:
		bat.Extras.Byes += e.Amount
	case ExtraLegBye:
		bat.Extras.LegByes += e.Amount
	}

	if e.Type == ExtraWide || e.Type == ExtraNoBall {
		bw.Runs += e.Amount
		bw.OverRuns += e.Amount
	} else {
		s.bowlBall(bat, bw)
	}
	s.checkInnings()
	return nil
}

// dismissalText renders the scorecard description of a dismissal.
func dismissalText(d WicketDetail, bowler string) string {
	switch d.Type {
	case DismissalCaught:
		return fmt.Sprintf("c %s b %s", d.Fielder, bowler)
	case DismissalBowled:
		return "b " + bowler
	case DismissalLBW:
		return "lbw b " + bowler
	case DismissalStumped:
		return fmt.Sprintf("st %s b %s", d.Fielder, bowler)
	case DismissalRunOut:
		if d.Fielder == "" {
			return "run out"
		}
		return fmt.Sprintf("run out (%s)", d.Fielder)
	case DismissalHitWicket:
		return "hit wicket b " + bowler
	}
	return "out"
}

// checkReplacement validates the batsman walking in for out.
func (s *scorer) checkReplacement(bat *Innings, incoming, out, remaining string) error {
	if incoming == "" {
		return fmt.Errorf("%w: replacement batsman required", ErrInvalidEvent)
	}
	if !slices.Contains(s.m.SquadOf(s.battingTeam()), incoming) {
		return notInSquad(incoming, s.battingTeam(), s.m.SquadOf(s.battingTeam()))
	}
	if incoming == remaining || incoming == out {
		return fmt.Errorf("%w: %q is already at the crease", ErrDuplicatePlayer, incoming)
	}
	if i := bat.battingIndex(incoming); i >= 0 {
		st := bat.Batting[i].Status
		if st != BattingNotOut && st != BattingRetiredHurt {
			return fmt.Errorf("%w: %q (%s)", ErrPlayerDismissed, incoming, st)
		}
	}
	return nil
}

// walkIn puts incoming on the card, letting a retired batsman resume.
func walkIn(bat *Innings, incoming string) {
	i := bat.ensureBatsman(incoming)
	if bat.Batting[i].Status == BattingRetiredHurt {
		bat.Batting[i].Status = BattingNotOut
	}
}

func (s *scorer) wicket(e WicketWithReplacement) error {
	d := e.Detail
	end := StrikerEnd
	switch d.Type {
	case DismissalRunOut:
		d, end = runOutDetail(s.sc, d)
		if d.Runs < 0 || d.Runs > maxRunOutRuns {
			return fmt.Errorf("%w: run out with %d completed runs", ErrInvalidEvent, d.Runs)
		}
	case DismissalCaught, DismissalStumped:
		if d.Fielder == "" {
			return fmt.Errorf("%w: %s", ErrFielderRequired, d.Type)
		}
	case DismissalBowled, DismissalLBW, DismissalHitWicket:
	default:
		return fmt.Errorf("%w: dismissal type %q", ErrInvalidEvent, d.Type)
	}
	if d.Fielder != "" {
		fielding := s.m.SquadOf(s.bowlingTeam())
		if !slices.Contains(fielding, d.Fielder) {
			return notInSquad(d.Fielder, s.bowlingTeam(), fielding)
		}
	}

	bat, bw, err := s.crease()
	if err != nil {
		return err
	}
	out, remaining := s.sc.Striker, s.sc.NonStriker
	if end == NonStrikerEnd {
		out, remaining = remaining, out
	}
	lastWicket := bat.Wickets+1 >= MaxWickets
	if !lastWicket || e.NewPlayer != "" {
		if err := s.checkReplacement(bat, e.NewPlayer, out, remaining); err != nil {
			return err
		}
	}

	bat.FallOfWickets = append(bat.FallOfWickets, FallOfWicket{
		Wicket: bat.Wickets + 1,
		Runs:   bat.Runs,
		Overs:  bat.Overs,
		Player: out,
	})
	bat.Wickets++
	bat.Batting[bat.battingIndex(out)].Status = dismissalText(d, bw.Player)

	striker := &bat.Batting[bat.battingIndex(s.sc.Striker)]
	striker.Balls++
	if d.Type == DismissalRunOut {
		striker.Runs += d.Runs
		bat.Runs += d.Runs
		countRun(bat, d.Runs)
		bw.Runs += d.Runs
		bw.OverRuns += d.Runs
	} else {
		bw.Wickets++
	}

	// The survivor keeps their end unless the batsmen crossed; the new
	// batsman takes whichever end is left.
	survivorOnStrike := remaining == s.sc.Striker
	if d.Type == DismissalRunOut && d.Crossed {
		survivorOnStrike = !survivorOnStrike
	}
	incoming := e.NewPlayer
	if lastWicket && incoming == "" {
		incoming = out
	} else {
		walkIn(bat, incoming)
	}
	if survivorOnStrike {
		s.sc.Striker, s.sc.NonStriker = remaining, incoming
	} else {
		s.sc.Striker, s.sc.NonStriker = incoming, remaining
	}
	s.sc.RunOut = RunOutState{Phase: RunOutIdle}

	s.bowlBall(bat, bw)
	s.checkInnings()
	return nil
}

func (s *scorer) retire(e RetiredWithReplacement) error {
	if s.sc.Striker == "" || s.sc.NonStriker == "" {
		return ErrMissingStriker
	}
	bat := s.batting()
	if bat == nil {
		return ErrMissingStriker
	}
	out, remaining := s.sc.Striker, s.sc.NonStriker
	if e.End == NonStrikerEnd {
		out, remaining = remaining, out
	}
	if err := s.checkReplacement(bat, e.NewPlayer, out, remaining); err != nil {
		return err
	}

	bat.Batting[bat.ensureBatsman(out)].Status = BattingRetiredHurt
	walkIn(bat, e.NewPlayer)
	if e.End == NonStrikerEnd {
		s.sc.NonStriker = e.NewPlayer
	} else {
		s.sc.Striker = e.NewPlayer
	}
	return nil
}

func (s *scorer) newBowler(e NewBowler) error {
	if e.Name == "" {
		return fmt.Errorf("%w: bowler name required", ErrInvalidEvent)
	}
	if s.m.TeamA == "" || s.m.TeamB == "" {
		return fmt.Errorf("%w: teams not set", ErrUnknownTeam)
	}
	squad := s.m.SquadOf(s.bowlingTeam())
	if !slices.Contains(squad, e.Name) {
		return notInSquad(e.Name, s.bowlingTeam(), squad)
	}
	if e.Name == s.sc.Bowler {
		return fmt.Errorf("%w: %s bowled the previous over", ErrConsecutiveOvers, e.Name)
	}
	if bowl := s.bowling(); bowl != nil {
		bowl.ensureBowler(e.Name)
	}
	s.sc.Bowler = e.Name
	return nil
}

// syncCurrent copies the session's batsmen and bowler onto the document.
func syncCurrent(m *Match, sc Context) {
	m.CurrentBowler = sc.Bowler
	if sc.Striker == "" || sc.NonStriker == "" {
		m.CurrentBatsmen = nil
		return
	}
	cur := []CurrentBatsman{{Name: sc.Striker, OnStrike: true}, {Name: sc.NonStriker}}
	if inn := m.InningsOf(m.Score.BattingTeam); inn != nil {
		for i := range cur {
			if j := inn.battingIndex(cur[i].Name); j >= 0 {
				cur[i].Runs = inn.Batting[j].Runs
				cur[i].Balls = inn.Batting[j].Balls
			}
		}
	}
	m.CurrentBatsmen = cur
}
