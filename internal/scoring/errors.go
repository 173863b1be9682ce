package scoring

import (
	"errors"
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Validation errors: the input names players or values the match cannot hold.
var (
	ErrNotInSquad       = errors.New("player not in squad")
	ErrDuplicatePlayer  = errors.New("duplicate player selection")
	ErrSameTeams        = errors.New("team names must differ")
	ErrSquadIncomplete  = errors.New("squad must have exactly 11 players")
	ErrSquadOverlap     = errors.New("player listed in both squads")
	ErrInvalidEvent     = errors.New("invalid scoring event")
	ErrFielderRequired  = errors.New("fielder required for this dismissal")
	ErrPlayerDismissed  = errors.New("player already dismissed")
	ErrUnknownTeam      = errors.New("team is not playing this match")
	ErrSquadsLocked     = errors.New("squads and toss cannot change once play has started")
	ErrInvalidOverCount = errors.New("total overs must be positive")
)

// Rule violations: the event is well formed but the match state forbids it.
var (
	ErrMatchCompleted   = errors.New("match is completed; no further scoring allowed")
	ErrConsecutiveOvers = errors.New("same bowler cannot bowl consecutive overs")
	ErrMissingStriker   = errors.New("no active striker and non-striker")
	ErrMissingBowler    = errors.New("no active bowler")
	ErrInningsOver      = errors.New("innings is already complete")
	ErrNoPendingRunOut  = errors.New("no run out awaiting details")
	ErrRunOutPending    = errors.New("a run out is awaiting completion")
	ErrNothingToUndo    = errors.New("nothing to undo")
)

var validationErrs = []error{
	ErrNotInSquad, ErrDuplicatePlayer, ErrSameTeams, ErrSquadIncomplete,
	ErrSquadOverlap, ErrInvalidEvent, ErrFielderRequired, ErrPlayerDismissed,
	ErrUnknownTeam, ErrSquadsLocked, ErrInvalidOverCount,
}

var ruleErrs = []error{
	ErrMatchCompleted, ErrConsecutiveOvers, ErrMissingStriker, ErrMissingBowler,
	ErrInningsOver, ErrNoPendingRunOut, ErrRunOutPending, ErrNothingToUndo,
}

// IsValidation reports whether err rejects malformed input.
func IsValidation(err error) bool {
	for _, target := range validationErrs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsRuleViolation reports whether err rejects an event the match state forbids.
func IsRuleViolation(err error) bool {
	for _, target := range ruleErrs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// notInSquad builds ErrNotInSquad with the closest squad name as a hint.
func notInSquad(name, team string, squad []string) error {
	if len(squad) == 0 {
		return fmt.Errorf("%w: %q (no squad set for %s)", ErrNotInSquad, name, team)
	}
	if ranks := fuzzy.RankFindFold(name, squad); len(ranks) > 0 {
		best := ranks[0]
		for _, r := range ranks[1:] {
			if r.Distance < best.Distance {
				best = r
			}
		}
		return fmt.Errorf("%w: %q is not in the %s squad (did you mean %q?)", ErrNotInSquad, name, team, best.Target)
	}
	return fmt.Errorf("%w: %q is not in the %s squad", ErrNotInSquad, name, team)
}
