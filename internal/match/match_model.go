package match

import (
	"errors"
	"time"

	"github.com/DhavalSuthar-24/crease/internal/models"
	"github.com/DhavalSuthar-24/crease/internal/scoring"
)

var ErrMatchNotFound = errors.New("match not found")

// MatchRecord is the relational row behind a match document. The queried
// fields are copied out of the document into their own indexed columns.
type MatchRecord struct {
	models.BaseModel
	Title    string                     `gorm:"size:200"`
	TeamA    string                     `gorm:"size:100;index"`
	TeamB    string                     `gorm:"size:100;index"`
	Status   scoring.MatchStatus        `gorm:"size:20;index"`
	Date     time.Time                  `gorm:"index"`
	Document models.JSON[scoring.Match] `gorm:"not null"`
}

func (MatchRecord) TableName() string {
	return "matches"
}

func newRecord(m scoring.Match) MatchRecord {
	return MatchRecord{
		BaseModel: models.BaseModel{ID: m.ID},
		Title:     m.Title,
		TeamA:     m.TeamA,
		TeamB:     m.TeamB,
		Status:    m.Status,
		Date:      m.Date,
		Document:  models.NewJSON(m),
	}
}

// ListFilter narrows a listing. Empty fields match everything.
type ListFilter struct {
	Status scoring.MatchStatus
	Team   string
}

// --- DTOs for requests ---

type OfficialsRequest struct {
	Umpires []string `json:"umpires,omitempty" binding:"omitempty,max=3,dive,required"`
	Referee string   `json:"referee,omitempty"`
}

// CreateMatchRequest defines the payload for scheduling a match.
type CreateMatchRequest struct {
	Title      string           `json:"title" binding:"required,min=3,max=200"`
	Series     string           `json:"series,omitempty" binding:"max=200"`
	MatchType  string           `json:"match_type,omitempty" binding:"omitempty,oneof=T10 T20 ODI Test Other"`
	Date       time.Time        `json:"date" binding:"required"`
	Venue      string           `json:"venue,omitempty" binding:"max=200"`
	Officials  OfficialsRequest `json:"officials"`
	TeamA      string           `json:"team_a" binding:"required,max=100"`
	TeamB      string           `json:"team_b" binding:"required,max=100,nefield=TeamA"`
	TeamASquad []string         `json:"team_a_squad,omitempty"`
	TeamBSquad []string         `json:"team_b_squad,omitempty"`
	TotalOvers int              `json:"total_overs" binding:"required,min=1,max=50"`
}

func (r CreateMatchRequest) toMatch(id string) scoring.Match {
	return scoring.NewMatch(scoring.Match{
		ID:         id,
		Title:      r.Title,
		Series:     r.Series,
		MatchType:  r.MatchType,
		Date:       r.Date,
		Venue:      r.Venue,
		Officials:  scoring.Officials{Umpires: r.Officials.Umpires, Referee: r.Officials.Referee},
		TeamA:      r.TeamA,
		TeamB:      r.TeamB,
		TeamASquad: r.TeamASquad,
		TeamBSquad: r.TeamBSquad,
		TotalOvers: r.TotalOvers,
	})
}

// publicView drops the undo buffer from documents served to viewers.
func publicView(m scoring.Match) scoring.Match {
	m.History = nil
	return m
}
