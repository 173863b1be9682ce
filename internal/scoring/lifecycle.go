package scoring

import (
	"fmt"
	"slices"
)

// DefaultTotalOvers applies when a document has no over limit.
const DefaultTotalOvers = 20

// normalize repairs documents written by older clients: missing innings,
// missing extras, unset status or batting side. The first card always
// belongs to the side that batted first.
func normalize(m *Match) {
	if m.Status == "" {
		m.Status = StatusUpcoming
	}
	if m.TotalOvers <= 0 {
		m.TotalOvers = DefaultTotalOvers
	}
	if m.TeamA == "" || m.TeamB == "" {
		return
	}
	if m.Score.BattingTeam != m.TeamA && m.Score.BattingTeam != m.TeamB {
		m.Score.BattingTeam = openingTeam(m)
	}

	first := m.Score.BattingTeam
	if m.IsSecondInnings() {
		first = m.BowlingTeam(first)
	}
	order := [2]string{first, m.BowlingTeam(first)}
	if len(m.Innings) != 2 || m.Innings[0].Team != order[0] || m.Innings[1].Team != order[1] {
		cards := make([]Innings, 2)
		for i, team := range order {
			if inn := m.InningsOf(team); inn != nil {
				cards[i] = inn.clone()
			} else {
				cards[i] = Innings{Team: team}
			}
		}
		m.Innings = cards
	}
	for i := range m.Innings {
		if m.Innings[i].Extras == nil {
			m.Innings[i].Extras = &Extras{}
		}
	}
}

// openingTeam is the side that bats first according to the toss.
func openingTeam(m *Match) string {
	if m.Toss == nil || (m.Toss.Winner != m.TeamA && m.Toss.Winner != m.TeamB) {
		return m.TeamA
	}
	if m.Toss.Decision == DecisionBowl {
		return m.BowlingTeam(m.Toss.Winner)
	}
	return m.Toss.Winner
}

// started reports whether any ball or selection has been recorded.
func started(m *Match) bool {
	if m.Status == StatusLive || m.Status == StatusCompleted || m.Score.Target != nil {
		return true
	}
	for i := range m.Innings {
		if !m.Innings[i].pristine() {
			return true
		}
	}
	return false
}

// syncScore mirrors the batting card onto the live score.
func syncScore(m *Match) {
	if inn := m.InningsOf(m.Score.BattingTeam); inn != nil {
		m.Score.Runs = inn.Runs
		m.Score.Wickets = inn.Wickets
		m.Score.Overs = inn.Overs
	}
}

func (s *scorer) initInnings(e InitInnings) error {
	if s.m.TeamA == "" || s.m.TeamB == "" {
		return fmt.Errorf("%w: teams not set", ErrUnknownTeam)
	}
	if e.Striker == "" || e.NonStriker == "" {
		return ErrMissingStriker
	}
	if e.Bowler == "" {
		return ErrMissingBowler
	}
	if e.Striker == e.NonStriker {
		return fmt.Errorf("%w: striker and non-striker are both %q", ErrDuplicatePlayer, e.Striker)
	}

	battingTeam, bowlingTeam := s.battingTeam(), s.bowlingTeam()
	batSquad, bowlSquad := s.m.SquadOf(battingTeam), s.m.SquadOf(bowlingTeam)
	if len(batSquad) != SquadSize || len(bowlSquad) != SquadSize {
		return ErrSquadIncomplete
	}
	for _, p := range []string{e.Striker, e.NonStriker} {
		if !slices.Contains(batSquad, p) {
			return notInSquad(p, battingTeam, batSquad)
		}
	}
	if !slices.Contains(bowlSquad, e.Bowler) {
		return notInSquad(e.Bowler, bowlingTeam, bowlSquad)
	}

	bat, bowl := s.batting(), s.bowling()
	if s.inningsDone(bat) {
		return ErrInningsOver
	}
	for _, p := range []string{e.Striker, e.NonStriker} {
		if i := bat.battingIndex(p); i >= 0 {
			st := bat.Batting[i].Status
			if st != BattingNotOut && st != BattingRetiredHurt {
				return fmt.Errorf("%w: %q (%s)", ErrPlayerDismissed, p, st)
			}
		}
	}

	walkIn(bat, e.Striker)
	walkIn(bat, e.NonStriker)
	bowl.ensureBowler(e.Bowler)
	s.m.Status = StatusLive
	s.sc = Context{
		Striker:    e.Striker,
		NonStriker: e.NonStriker,
		Bowler:     e.Bowler,
		RunOut:     RunOutState{Phase: RunOutIdle},
	}
	syncScore(s.m)
	return nil
}

// checkInnings closes the innings in progress when it is over.
func (s *scorer) checkInnings() {
	syncScore(s.m)
	bat := s.batting()
	if bat == nil || !s.inningsDone(bat) {
		return
	}
	s.signals = slices.DeleteFunc(s.signals, func(sig Signal) bool {
		return sig == SignalSelectNextBowler
	})

	if s.m.Score.Target == nil {
		target := bat.Runs + 1
		chasing := s.bowlingTeam()
		s.m.Score = Score{BattingTeam: chasing, Target: &target}
		syncScore(s.m)
		s.sc = Context{RunOut: RunOutState{Phase: RunOutIdle}}
		s.signal(SignalStartSecondInnings)
		return
	}

	complete(s.m)
	s.signal(SignalMatchCompleted)
}

// complete freezes the match and records its outcome.
func complete(m *Match) {
	m.Status = StatusCompleted
	m.ManOfTheMatch = ManOfTheMatch(*m)
	m.Result = ResultSummary(*m)
}

// ManOfTheMatch picks the best of the winners' batsmen and the losers'
// bowlers, scoring runs + 25 per wicket. Earlier entries win ties and
// batsmen come before bowlers. A tie on runs yields no award.
func ManOfTheMatch(m Match) string {
	if len(m.Innings) < 2 || m.Innings[0].Runs == m.Innings[1].Runs {
		return ""
	}
	winner, loser := m.Innings[0], m.Innings[1]
	if loser.Runs > winner.Runs {
		winner, loser = loser, winner
	}

	best, bestScore := "", -1
	consider := func(name string, score int) {
		if score > bestScore {
			best, bestScore = name, score
		}
	}
	for _, b := range winner.Batting {
		consider(b.Player, b.Runs)
	}
	for _, b := range loser.Bowling {
		consider(b.Player, b.Wickets*25)
	}
	return best
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// ResultSummary describes who won and by how much.
func ResultSummary(m Match) string {
	if m.Score.Target == nil {
		return ""
	}
	chaser := m.InningsOf(m.Score.BattingTeam)
	setter := m.InningsOf(m.BowlingTeam(m.Score.BattingTeam))
	if chaser == nil || setter == nil {
		return ""
	}
	switch {
	case setter.Runs > chaser.Runs:
		return fmt.Sprintf("%s won by %s", setter.Team, plural(setter.Runs-chaser.Runs, "run"))
	case chaser.Runs > setter.Runs:
		return fmt.Sprintf("%s won by %s", chaser.Team, plural(MaxWickets-chaser.Wickets, "wicket"))
	}
	return "Match tied"
}

func (s *scorer) setToss(e SetToss) error {
	if started(s.m) {
		return ErrSquadsLocked
	}
	if e.Winner != s.m.TeamA && e.Winner != s.m.TeamB {
		return fmt.Errorf("%w: toss winner %q", ErrUnknownTeam, e.Winner)
	}
	if e.Decision != DecisionBat && e.Decision != DecisionBowl {
		return fmt.Errorf("%w: toss decision %q", ErrInvalidEvent, e.Decision)
	}
	s.m.Toss = &Toss{Winner: e.Winner, Decision: e.Decision}
	s.m.Score.BattingTeam = openingTeam(s.m)
	s.sc = Context{RunOut: RunOutState{Phase: RunOutIdle}}
	return nil
}

func (s *scorer) setSquads(e SetSquads) error {
	if started(s.m) {
		return ErrSquadsLocked
	}
	if err := ValidateSquads(e.TeamA, e.TeamB); err != nil {
		return err
	}
	s.m.TeamASquad = slices.Clone(e.TeamA)
	s.m.TeamBSquad = slices.Clone(e.TeamB)
	return nil
}

// ValidateSquads checks both sides name exactly eleven distinct players and
// share none.
func ValidateSquads(a, b []string) error {
	seen := make(map[string]string, 2*SquadSize)
	for _, side := range []struct {
		label string
		squad []string
	}{{"team A", a}, {"team B", b}} {
		if len(side.squad) != SquadSize {
			return fmt.Errorf("%w: %s has %d", ErrSquadIncomplete, side.label, len(side.squad))
		}
		for _, p := range side.squad {
			if p == "" {
				return fmt.Errorf("%w: %s has a blank name", ErrInvalidEvent, side.label)
			}
			if prev, ok := seen[p]; ok {
				if prev == side.label {
					return fmt.Errorf("%w: %q twice in %s", ErrDuplicatePlayer, p, side.label)
				}
				return fmt.Errorf("%w: %q", ErrSquadOverlap, p)
			}
			seen[p] = side.label
		}
	}
	return nil
}

// ValidateLineup checks the fixed facts of a match document: two distinct
// teams, a positive over limit, and valid squads once any squad is given.
func ValidateLineup(m Match) error {
	if m.TeamA == "" || m.TeamB == "" {
		return fmt.Errorf("%w: both team names are required", ErrInvalidEvent)
	}
	if m.TeamA == m.TeamB {
		return ErrSameTeams
	}
	if m.TotalOvers <= 0 {
		return ErrInvalidOverCount
	}
	if len(m.TeamASquad) > 0 || len(m.TeamBSquad) > 0 {
		return ValidateSquads(m.TeamASquad, m.TeamBSquad)
	}
	return nil
}

// NewMatch returns an upcoming match with empty cards for both sides.
func NewMatch(m Match) Match {
	out := m.Clone()
	out.Status = StatusUpcoming
	out.Score = Score{}
	out.CurrentBatsmen = nil
	out.CurrentBowler = ""
	out.Innings = nil
	out.ManOfTheMatch = ""
	out.Result = ""
	out.History = nil
	normalize(&out)
	return out
}
