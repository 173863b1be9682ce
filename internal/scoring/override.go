package scoring

import (
	"fmt"
	"slices"
)

// override applies a scorer's correction. The innings card and the live
// score move together; bowler figures are left as recorded. Corrected
// counters that end the innings close it as a ball would, unless the
// status is being set explicitly.
func (s *scorer) override(e ManualOverride) error {
	if e.BattingTeam != nil && *e.BattingTeam != s.battingTeam() {
		team := *e.BattingTeam
		if team != s.m.TeamA && team != s.m.TeamB {
			return fmt.Errorf("%w: %q", ErrUnknownTeam, team)
		}
		s.m.Score.BattingTeam = team
		syncScore(s.m)
		s.sc = Context{RunOut: RunOutState{Phase: RunOutIdle}}
	}

	bat := s.batting()
	if bat == nil && (e.Runs != nil || e.Wickets != nil || e.Overs != nil || e.Striker != nil || e.NonStriker != nil || e.Bowler != nil) {
		return fmt.Errorf("%w: teams not set", ErrUnknownTeam)
	}

	if e.Runs != nil {
		if *e.Runs < 0 {
			return fmt.Errorf("%w: runs %d", ErrInvalidEvent, *e.Runs)
		}
		bat.Runs = *e.Runs
	}
	if e.Wickets != nil {
		bat.Wickets = min(max(*e.Wickets, 0), MaxWickets)
	}
	if e.Overs != nil {
		balls := min(max(e.Overs.Balls(), 0), s.m.TotalOvers*BallsPerOver)
		bat.Overs = OversFromBalls(balls)
	}

	striker, nonStriker := s.sc.Striker, s.sc.NonStriker
	if e.Striker != nil {
		striker = *e.Striker
	}
	if e.NonStriker != nil {
		nonStriker = *e.NonStriker
	}
	if e.Striker != nil || e.NonStriker != nil {
		squad := s.m.SquadOf(s.battingTeam())
		for _, p := range []string{striker, nonStriker} {
			if p != "" && !slices.Contains(squad, p) {
				return notInSquad(p, s.battingTeam(), squad)
			}
		}
		if striker != "" && striker == nonStriker {
			return fmt.Errorf("%w: striker and non-striker are both %q", ErrDuplicatePlayer, striker)
		}
		for _, p := range []string{striker, nonStriker} {
			if p != "" {
				walkIn(bat, p)
			}
		}
		s.sc.Striker, s.sc.NonStriker = striker, nonStriker
	}

	if e.Bowler != nil {
		if *e.Bowler != "" {
			squad := s.m.SquadOf(s.bowlingTeam())
			if !slices.Contains(squad, *e.Bowler) {
				return notInSquad(*e.Bowler, s.bowlingTeam(), squad)
			}
			s.bowling().ensureBowler(*e.Bowler)
		}
		s.sc.Bowler = *e.Bowler
	}

	syncScore(s.m)

	if e.Status == nil {
		if e.Runs != nil || e.Wickets != nil || e.Overs != nil {
			s.checkInnings()
		}
		return nil
	}
	switch *e.Status {
	case StatusUpcoming, StatusLive:
		s.m.Status = *e.Status
	case StatusCompleted:
		complete(s.m)
		s.signal(SignalMatchCompleted)
	default:
		return fmt.Errorf("%w: status %q", ErrInvalidEvent, *e.Status)
	}
	return nil
}
