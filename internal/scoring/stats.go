package scoring

import (
	"fmt"
	"math"
)

// Overs uses the scorer's notation: whole overs plus balls after the point,
// so 4.3 is four overs and three balls.
type Overs float64

const BallsPerOver = 6

// RateUnbounded is reported when no balls remain and the target is unmet.
const RateUnbounded = "∞"

// OversFromBalls converts a legal-ball count into over notation.
func OversFromBalls(balls int) Overs {
	if balls < 0 {
		balls = 0
	}
	return Overs(float64(balls/BallsPerOver) + float64(balls%BallsPerOver)/10)
}

// Whole returns the completed overs.
func (o Overs) Whole() int {
	return int(math.Floor(float64(o) + 1e-9))
}

// Ball returns the balls bowled in the over in progress.
func (o Overs) Ball() int {
	return int(math.Round((float64(o) - float64(o.Whole())) * 10))
}

// Balls returns the legal-ball count represented by o.
func (o Overs) Balls() int {
	return o.Whole()*BallsPerOver + o.Ball()
}

// Normalize rewrites out-of-range ball components, e.g. 4.7 becomes 5.1.
func (o Overs) Normalize() Overs {
	return OversFromBalls(o.Balls())
}

func (o Overs) String() string {
	return fmt.Sprintf("%d.%d", o.Whole(), o.Ball())
}

// round2 rounds half away from zero to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// StrikeRate is runs per hundred balls faced.
func StrikeRate(runs, balls int) float64 {
	if balls <= 0 {
		return 0
	}
	return round2(float64(runs) / float64(balls) * 100)
}

// Economy is runs conceded per six legal balls.
func Economy(runs int, overs Overs) float64 {
	balls := overs.Balls()
	if balls <= 0 {
		return 0
	}
	return round2(float64(runs) / float64(balls) * BallsPerOver)
}

// CurrentRunRate divides runs by the over notation as a decimal, so 4.3
// overs counts as 4.3 rather than 4.5.
func CurrentRunRate(runs int, overs Overs) string {
	if overs <= 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(runs)/float64(overs))
}

// RequiredRunRate is the runs per over still needed to reach target.
func RequiredRunRate(target, runs, ballsRemaining int) string {
	if ballsRemaining <= 0 {
		if runs >= target {
			return "0.00"
		}
		return RateUnbounded
	}
	need := target - runs
	if need < 0 {
		need = 0
	}
	return fmt.Sprintf("%.2f", float64(need)/float64(ballsRemaining)*BallsPerOver)
}

// BallsRemaining counts the legal balls left in a totalOvers innings.
func BallsRemaining(totalOvers int, bowled Overs) int {
	return totalOvers*BallsPerOver - bowled.Balls()
}

// recomputeDerived rebuilds every strike rate and economy from raw counters.
func recomputeDerived(m *Match) {
	for i := range m.Innings {
		inn := &m.Innings[i]
		for j := range inn.Batting {
			b := &inn.Batting[j]
			b.StrikeRate = StrikeRate(b.Runs, b.Balls)
		}
		for j := range inn.Bowling {
			b := &inn.Bowling[j]
			b.Economy = Economy(b.Runs, b.Overs)
		}
	}
}

// Summary is the viewer-facing digest of a match.
type Summary struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Status         MatchStatus `json:"status"`
	BattingTeam    string      `json:"batting_team"`
	ScoreLine      string      `json:"score_line"`
	CurrentRunRate string      `json:"current_run_rate"`
	Target         *int        `json:"target,omitempty"`
	BallsRemaining *int        `json:"balls_remaining,omitempty"`
	RequiredRate   string      `json:"required_run_rate,omitempty"`
	Result         string      `json:"result,omitempty"`
	ManOfTheMatch  string      `json:"man_of_the_match,omitempty"`
}

// Summarize derives the live digest shown to viewers.
func Summarize(m Match) Summary {
	s := Summary{
		ID:             m.ID,
		Title:          m.Title,
		Status:         m.Status,
		BattingTeam:    m.Score.BattingTeam,
		ScoreLine:      fmt.Sprintf("%d/%d (%s)", m.Score.Runs, m.Score.Wickets, m.Score.Overs),
		CurrentRunRate: CurrentRunRate(m.Score.Runs, m.Score.Overs),
		Result:         m.Result,
		ManOfTheMatch:  m.ManOfTheMatch,
	}
	if m.Score.Target != nil {
		t := *m.Score.Target
		s.Target = &t
		if m.Status != StatusCompleted {
			left := BallsRemaining(m.TotalOvers, m.Score.Overs)
			s.BallsRemaining = &left
			s.RequiredRate = RequiredRunRate(t, m.Score.Runs, left)
		}
	}
	return s
}
