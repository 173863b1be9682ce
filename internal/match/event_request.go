package match

import (
	"fmt"

	"github.com/DhavalSuthar-24/crease/internal/scoring"
)

// EventRequest is the wire form of one scoring event: a "type" plus the
// flat payload fields that type reads. Fields other types use are ignored.
type EventRequest struct {
	Type string `json:"type" binding:"required,oneof=init_innings runs swap_strike extra run_out_striker run_out_non_striker run_out_fielder cancel_run_out wicket retire new_bowler manual_override set_toss set_squads"`

	Striker    *string `json:"striker,omitempty"`
	NonStriker *string `json:"non_striker,omitempty"`
	Bowler     *string `json:"bowler,omitempty"`

	// Runs is the scoring shot for "runs", completed runs for
	// "run_out_fielder" and "wicket", and the corrected total for
	// "manual_override".
	Runs    *int   `json:"runs,omitempty"`
	Crossed bool   `json:"crossed,omitempty"`
	Fielder string `json:"fielder,omitempty"`

	ExtraType scoring.ExtraType `json:"extra_type,omitempty" binding:"omitempty,oneof=wide noBall bye legBye"`
	Amount    int               `json:"amount,omitempty"`

	NewPlayer string                `json:"new_player,omitempty"`
	Dismissal scoring.DismissalType `json:"dismissal,omitempty"`
	End       string                `json:"end,omitempty" binding:"omitempty,oneof=striker non_striker"`

	Name string `json:"name,omitempty"`

	Wickets     *int                 `json:"wickets,omitempty"`
	Overs       *scoring.Overs       `json:"overs,omitempty"`
	BattingTeam *string              `json:"batting_team,omitempty"`
	Status      *scoring.MatchStatus `json:"status,omitempty" binding:"omitempty,oneof=upcoming live completed"`

	Winner   string               `json:"winner,omitempty"`
	Decision scoring.TossDecision `json:"decision,omitempty" binding:"omitempty,oneof=bat bowl"`

	TeamASquad []string `json:"team_a_squad,omitempty"`
	TeamBSquad []string `json:"team_b_squad,omitempty"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func missing(kind, field string) error {
	return fmt.Errorf("%w: %s requires %s", scoring.ErrInvalidEvent, kind, field)
}

// Event converts the request into its engine event.
func (r EventRequest) Event() (scoring.Event, error) {
	switch scoring.EventKind(r.Type) {
	case scoring.KindInitInnings:
		return scoring.InitInnings{Striker: deref(r.Striker), NonStriker: deref(r.NonStriker), Bowler: deref(r.Bowler)}, nil
	case scoring.KindRuns:
		if r.Runs == nil {
			return nil, missing(r.Type, "runs")
		}
		return scoring.Runs{N: *r.Runs}, nil
	case scoring.KindSwapStrike:
		return scoring.SwapStrike{}, nil
	case scoring.KindExtra:
		if r.ExtraType == "" {
			return nil, missing(r.Type, "extra_type")
		}
		amount := r.Amount
		if amount == 0 {
			amount = 1
		}
		return scoring.Extra{Type: r.ExtraType, Amount: amount}, nil
	case scoring.KindRunOutStriker:
		return scoring.RunOutStriker{}, nil
	case scoring.KindRunOutNonStriker:
		return scoring.RunOutNonStriker{}, nil
	case scoring.KindRunOutFielder:
		e := scoring.RunOutFielder{Fielder: r.Fielder, Crossed: r.Crossed}
		if r.Runs != nil {
			e.Runs = *r.Runs
		}
		return e, nil
	case scoring.KindCancelRunOut:
		return scoring.CancelRunOut{}, nil
	case scoring.KindWicket:
		if r.Dismissal == "" {
			return nil, missing(r.Type, "dismissal")
		}
		d := scoring.WicketDetail{Type: r.Dismissal, Fielder: r.Fielder, Crossed: r.Crossed}
		if r.Runs != nil {
			d.Runs = *r.Runs
		}
		return scoring.WicketWithReplacement{NewPlayer: r.NewPlayer, Detail: d}, nil
	case scoring.KindRetire:
		e := scoring.RetiredWithReplacement{NewPlayer: r.NewPlayer}
		if r.End == "non_striker" {
			e.End = scoring.NonStrikerEnd
		}
		return e, nil
	case scoring.KindNewBowler:
		return scoring.NewBowler{Name: r.Name}, nil
	case scoring.KindManualOverride:
		return scoring.ManualOverride{
			Runs:        r.Runs,
			Wickets:     r.Wickets,
			Overs:       r.Overs,
			Striker:     r.Striker,
			NonStriker:  r.NonStriker,
			Bowler:      r.Bowler,
			BattingTeam: r.BattingTeam,
			Status:      r.Status,
		}, nil
	case scoring.KindSetToss:
		return scoring.SetToss{Winner: r.Winner, Decision: r.Decision}, nil
	case scoring.KindSetSquads:
		return scoring.SetSquads{TeamA: r.TeamASquad, TeamB: r.TeamBSquad}, nil
	}
	return nil, fmt.Errorf("%w: unknown event type %q", scoring.ErrInvalidEvent, r.Type)
}
