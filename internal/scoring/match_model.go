package scoring

import (
	"slices"
	"time"
)

type MatchStatus string

const (
	StatusUpcoming  MatchStatus = "upcoming"
	StatusLive      MatchStatus = "live"
	StatusCompleted MatchStatus = "completed"
)

// DismissalType for cricket wickets
type DismissalType string

const (
	DismissalBowled    DismissalType = "bowled"
	DismissalCaught    DismissalType = "caught"
	DismissalLBW       DismissalType = "lbw"
	DismissalRunOut    DismissalType = "run out"
	DismissalStumped   DismissalType = "stumped"
	DismissalHitWicket DismissalType = "hit wicket"
)

// ExtraType for runs not scored off the bat
type ExtraType string

const (
	ExtraWide   ExtraType = "wide"
	ExtraNoBall ExtraType = "noBall"
	ExtraBye    ExtraType = "bye"
	ExtraLegBye ExtraType = "legBye"
)

type TossDecision string

const (
	DecisionBat  TossDecision = "bat"
	DecisionBowl TossDecision = "bowl"
)

const (
	BattingNotOut      = "not out"
	BattingRetiredHurt = "retired hurt"

	SquadSize  = 11
	MaxWickets = 10
)

// Toss records who won the toss and what they chose.
type Toss struct {
	Winner   string       `json:"winner" bson:"winner"`
	Decision TossDecision `json:"decision" bson:"decision"`
}

type Officials struct {
	Umpires []string `json:"umpires,omitempty" bson:"umpires,omitempty"`
	Referee string   `json:"referee,omitempty" bson:"referee,omitempty"`
}

// Score is the live snapshot of the innings in progress.
type Score struct {
	BattingTeam string `json:"batting_team" bson:"batting_team"`
	Runs        int    `json:"runs" bson:"runs"`
	Wickets     int    `json:"wickets" bson:"wickets"`
	Overs       Overs  `json:"overs" bson:"overs"`
	Target      *int   `json:"target" bson:"target"`
}

type CurrentBatsman struct {
	Name     string `json:"name" bson:"name"`
	OnStrike bool   `json:"on_strike" bson:"on_strike"`
	Runs     int    `json:"runs" bson:"runs"`
	Balls    int    `json:"balls" bson:"balls"`
}

type BattingEntry struct {
	Player     string  `json:"player" bson:"player"`
	Status     string  `json:"status" bson:"status"`
	Runs       int     `json:"runs" bson:"runs"`
	Balls      int     `json:"balls" bson:"balls"`
	Fours      int     `json:"fours" bson:"fours"`
	Sixes      int     `json:"sixes" bson:"sixes"`
	StrikeRate float64 `json:"strike_rate" bson:"strike_rate"`
}

// BowlingEntry holds one bowler's figures. OverRuns counts runs conceded in
// the bowler's over in progress and feeds the maiden count.
type BowlingEntry struct {
	Player   string  `json:"player" bson:"player"`
	Overs    Overs   `json:"overs" bson:"overs"`
	Maidens  int     `json:"maidens" bson:"maidens"`
	Runs     int     `json:"runs" bson:"runs"`
	Wickets  int     `json:"wickets" bson:"wickets"`
	Wides    int     `json:"wides" bson:"wides"`
	NoBalls  int     `json:"no_balls" bson:"no_balls"`
	Economy  float64 `json:"economy" bson:"economy"`
	OverRuns int     `json:"over_runs" bson:"over_runs"`
}

type Extras struct {
	Wides   int `json:"wides" bson:"wides"`
	NoBalls int `json:"no_balls" bson:"no_balls"`
	Byes    int `json:"byes" bson:"byes"`
	LegByes int `json:"leg_byes" bson:"leg_byes"`
	Total   int `json:"total" bson:"total"`
}

type FallOfWicket struct {
	Wicket int    `json:"wicket" bson:"wicket"`
	Runs   int    `json:"runs" bson:"runs"`
	Overs  Overs  `json:"overs" bson:"overs"`
	Player string `json:"player" bson:"player"`
}

// Innings is one team's card: its batting and the figures of its own bowlers
// when they bowled at the opposition.
type Innings struct {
	Team          string         `json:"team" bson:"team"`
	Runs          int            `json:"runs" bson:"runs"`
	Wickets       int            `json:"wickets" bson:"wickets"`
	Overs         Overs          `json:"overs" bson:"overs"`
	Batting       []BattingEntry `json:"batting" bson:"batting"`
	Bowling       []BowlingEntry `json:"bowling" bson:"bowling"`
	Extras        *Extras        `json:"extras" bson:"extras"`
	Dots          int            `json:"dots" bson:"dots"`
	Ones          int            `json:"ones" bson:"ones"`
	Twos          int            `json:"twos" bson:"twos"`
	Threes        int            `json:"threes" bson:"threes"`
	Fours         int            `json:"fours" bson:"fours"`
	Sixes         int            `json:"sixes" bson:"sixes"`
	FallOfWickets []FallOfWicket `json:"fall_of_wickets" bson:"fall_of_wickets"`
}

// Match is the whole scoring document. It is persisted and broadcast as one
// unit and replaced wholesale on every update.
type Match struct {
	ID         string      `json:"id" bson:"_id"`
	Title      string      `json:"title" bson:"title"`
	Series     string      `json:"series,omitempty" bson:"series,omitempty"`
	MatchType  string      `json:"match_type,omitempty" bson:"match_type,omitempty"`
	Date       time.Time   `json:"date" bson:"date"`
	Venue      string      `json:"venue,omitempty" bson:"venue,omitempty"`
	Officials  Officials   `json:"officials" bson:"officials"`
	Status     MatchStatus `json:"status" bson:"status"`
	TeamA      string      `json:"team_a" bson:"team_a"`
	TeamB      string      `json:"team_b" bson:"team_b"`
	TeamASquad []string    `json:"team_a_squad" bson:"team_a_squad"`
	TeamBSquad []string    `json:"team_b_squad" bson:"team_b_squad"`
	TotalOvers int         `json:"total_overs" bson:"total_overs"`
	Toss       *Toss       `json:"toss" bson:"toss"`
	Score      Score       `json:"score" bson:"score"`

	CurrentBatsmen []CurrentBatsman `json:"current_batsmen" bson:"current_batsmen"`
	CurrentBowler  string           `json:"current_bowler" bson:"current_bowler"`
	Innings        []Innings        `json:"innings" bson:"innings"`
	ManOfTheMatch  string           `json:"man_of_the_match" bson:"man_of_the_match"`
	Result         string           `json:"result,omitempty" bson:"result,omitempty"`
	LastUpdated    time.Time        `json:"last_updated" bson:"last_updated"`

	// History holds prior states, most recent last. Entries never carry
	// their own history.
	History []Match `json:"history,omitempty" bson:"history,omitempty"`
}

// Clone returns a deep copy that shares no slices or pointers with m.
func (m Match) Clone() Match {
	out := m
	out.Officials.Umpires = slices.Clone(m.Officials.Umpires)
	out.TeamASquad = slices.Clone(m.TeamASquad)
	out.TeamBSquad = slices.Clone(m.TeamBSquad)
	if m.Toss != nil {
		t := *m.Toss
		out.Toss = &t
	}
	if m.Score.Target != nil {
		t := *m.Score.Target
		out.Score.Target = &t
	}
	out.CurrentBatsmen = slices.Clone(m.CurrentBatsmen)
	if m.Innings != nil {
		out.Innings = make([]Innings, len(m.Innings))
		for i, inn := range m.Innings {
			out.Innings[i] = inn.clone()
		}
	}
	if m.History != nil {
		out.History = make([]Match, len(m.History))
		for i, h := range m.History {
			out.History[i] = h.Clone()
		}
	}
	return out
}

func (inn Innings) clone() Innings {
	out := inn
	out.Batting = slices.Clone(inn.Batting)
	out.Bowling = slices.Clone(inn.Bowling)
	out.FallOfWickets = slices.Clone(inn.FallOfWickets)
	if inn.Extras != nil {
		e := *inn.Extras
		out.Extras = &e
	}
	return out
}

// BowlingTeam returns the side fielding against the given batting team.
func (m *Match) BowlingTeam(batting string) string {
	if batting == m.TeamA {
		return m.TeamB
	}
	return m.TeamA
}

// SquadOf returns the squad registered for team.
func (m *Match) SquadOf(team string) []string {
	switch team {
	case m.TeamA:
		return m.TeamASquad
	case m.TeamB:
		return m.TeamBSquad
	}
	return nil
}

func (m *Match) inningsIndex(team string) int {
	for i := range m.Innings {
		if m.Innings[i].Team == team {
			return i
		}
	}
	return -1
}

// InningsOf returns the card for team, or nil when the match has none yet.
func (m *Match) InningsOf(team string) *Innings {
	if i := m.inningsIndex(team); i >= 0 {
		return &m.Innings[i]
	}
	return nil
}

// IsSecondInnings reports whether the chase is under way.
func (m *Match) IsSecondInnings() bool {
	return m.Score.Target != nil
}

func (inn *Innings) battingIndex(player string) int {
	for i := range inn.Batting {
		if inn.Batting[i].Player == player {
			return i
		}
	}
	return -1
}

func (inn *Innings) bowlingIndex(player string) int {
	for i := range inn.Bowling {
		if inn.Bowling[i].Player == player {
			return i
		}
	}
	return -1
}

// ensureBatsman returns the index of player's batting entry, appending a
// fresh "not out" entry when missing.
func (inn *Innings) ensureBatsman(player string) int {
	if i := inn.battingIndex(player); i >= 0 {
		return i
	}
	inn.Batting = append(inn.Batting, BattingEntry{Player: player, Status: BattingNotOut})
	return len(inn.Batting) - 1
}

func (inn *Innings) ensureBowler(player string) int {
	if i := inn.bowlingIndex(player); i >= 0 {
		return i
	}
	inn.Bowling = append(inn.Bowling, BowlingEntry{Player: player})
	return len(inn.Bowling) - 1
}

func (inn *Innings) pristine() bool {
	return inn.Runs == 0 && inn.Wickets == 0 && inn.Overs == 0 &&
		len(inn.Batting) == 0 && len(inn.Bowling) == 0 && len(inn.FallOfWickets) == 0
}
