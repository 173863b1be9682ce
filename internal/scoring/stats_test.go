package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOversNotation(t *testing.T) {
	tests := []struct {
		overs Overs
		balls int
		str   string
	}{
		{0, 0, "0.0"},
		{0.1, 1, "0.1"},
		{4.3, 27, "4.3"},
		{4.5, 29, "4.5"},
		{19.5, 119, "19.5"},
		{20, 120, "20.0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.balls, tt.overs.Balls(), "%v", float64(tt.overs))
		assert.Equal(t, tt.str, tt.overs.String())
		assert.Equal(t, tt.overs.String(), OversFromBalls(tt.balls).String())
	}

	assert.Equal(t, "5.1", Overs(4.7).Normalize().String())
	assert.Equal(t, "0.0", OversFromBalls(-3).String())
}

func TestStrikeRateAndEconomy(t *testing.T) {
	assert.Equal(t, 0.0, StrikeRate(10, 0))
	assert.Equal(t, 150.0, StrikeRate(6, 4))
	assert.Equal(t, 33.33, StrikeRate(1, 3))

	assert.Equal(t, 0.0, Economy(5, 0))
	assert.Equal(t, 8.0, Economy(8, 1.0))
	// 4.3 overs is 27 balls.
	assert.Equal(t, 6.67, Economy(30, 4.3))
}

func TestRunRates(t *testing.T) {
	assert.Equal(t, "0.00", CurrentRunRate(0, 0))
	assert.Equal(t, "10.00", CurrentRunRate(50, 5))
	assert.Equal(t, "10.00", CurrentRunRate(43, 4.3))

	assert.Equal(t, "6.00", RequiredRunRate(121, 61, 60))
	assert.Equal(t, "0.00", RequiredRunRate(100, 120, 12))
	assert.Equal(t, "0.00", RequiredRunRate(100, 100, 0))
	assert.Equal(t, RateUnbounded, RequiredRunRate(100, 99, 0))

	assert.Equal(t, 120, BallsRemaining(20, 0))
	assert.Equal(t, 3, BallsRemaining(20, 19.3))
}

func TestSummarize(t *testing.T) {
	m, sc := chase(t)
	m = mustApply(t, m, sc, ManualOverride{Runs: intPtr(61), Wickets: intPtr(2), Overs: oversPtr(10)}).Match

	s := Summarize(m)

	assert.Equal(t, "61/2 (10.0)", s.ScoreLine)
	assert.Equal(t, "6.10", s.CurrentRunRate)
	assert.Equal(t, "Tigers", s.BattingTeam)
	if assert.NotNil(t, s.Target) && assert.NotNil(t, s.BallsRemaining) {
		assert.Equal(t, 121, *s.Target)
		assert.Equal(t, 60, *s.BallsRemaining)
	}
	assert.Equal(t, "6.00", s.RequiredRate)

	first, _ := liveMatch(t)
	s = Summarize(first)
	assert.Nil(t, s.Target)
	assert.Empty(t, s.RequiredRate)
}
